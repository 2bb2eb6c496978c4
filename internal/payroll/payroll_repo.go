package payroll

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"
	"go-payroll/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns whitelists the list sort keys accepted from clients.
var sortColumns = map[string]string{
	"createdAt": "payrolls.created_at",
	"updatedAt": "payrolls.updated_at",
	"netSalary": "payrolls.net_salary",
	"month":     "payrolls.period_key",
}

// SortColumn resolves a client sort key to its column.
func SortColumn(key string) (string, bool) {
	col, ok := sortColumns[key]
	return col, ok
}

// regeneratedColumns are overwritten when a period is generated again.
// Comments, paid_at and last_modified_by belong to manual edits and survive.
var regeneratedColumns = []string{
	"type", "period_start", "period_end",
	"att_working_days", "att_present_days", "att_paid_leave_days", "att_unpaid_leave",
	"att_holidays", "att_absent", "att_total_days_payable", "att_total_days_non_payable",
	"att_attendance_percentage",
	"earn_basic_salary", "earn_house_rent_allowance", "earn_dearness_allowance",
	"earn_perquisites", "earn_others", "earn_bonus", "earn_variable_pay", "earn_gross_salary",
	"ded_epf_employee", "ded_esi_employee", "ded_taxes", "ded_total_deductions",
	"ded_epf_employer", "ded_esi_employer",
	"net_salary", "status", "processed_at", "updated_at",
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, p *Payroll) error
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Payroll, int64, error)
	Update(ctx context.Context, p *Payroll) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.WithTx(r.db, tx)}
}

// Upsert inserts p or overwrites the computed columns of the existing record
// for the same employee and period, then reloads p from the stored row.
func (r *repository) Upsert(ctx context.Context, p *Payroll) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "period_key"}},
			DoUpdates: clause.AssignmentColumns(regeneratedColumns),
		}).
		Create(p).Error
	if err != nil {
		return mapRepositoryError(err)
	}

	var stored Payroll
	err = r.db.WithContext(ctx).
		Where("employee_id = ? AND period_key = ?", p.EmployeeID, p.PeriodKey).
		First(&stored).Error
	if err != nil {
		return mapRepositoryError(err)
	}
	*p = stored
	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "payrolls.id = ?", id).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &p, nil
}

// FindAll returns one page of payrolls matching filter and the total match
// count. filter must be normalized and its sort key whitelisted.
func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Payroll, int64, error) {
	matching := listScope(filter)

	var total int64
	if err := r.db.WithContext(ctx).Model(&Payroll{}).Scopes(matching).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := SortColumn(filter.Sort)
	if !ok {
		col = sortColumns["createdAt"]
	}

	var rows []Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(matching, scope.Paginate(filter.Page, filter.Limit)).
		Order(clause.OrderByColumn{Column: clause.Column{Name: col, Raw: true}, Desc: filter.Order != "asc"}).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func listScope(filter ListFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.EmployeeID != "" {
			db = db.Where("employee_id = ?", filter.EmployeeID)
		}
		if filter.Month != "" {
			db = db.Where("period_key = ?", filter.Month)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		return db
	}
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(p).Error
	return mapRepositoryError(err)
}
