package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/connection"
	"go-payroll/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Scopes(scope.Employee(employeeID)).
		Where("date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

// FindByEmployeeInRange loads the employee's records with their leave and
// leave type, oldest first.
func (r *repository) FindByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Preload("Leave.LeaveType").
		Scopes(scope.Employee(employeeID), scope.DateRange("date", start, end)).
		Order("date ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}
