package employee

import (
	"context"

	"go-payroll/internal/payperiod"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindEligible(ctx context.Context, periodType payperiod.Type) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByID loads the employee with their post.
func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("Post").
		First(&e, "employees.id = ?", id).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &e, nil
}

// FindEligible returns payable employees whose post's payroll type starts
// with the period type, ordered by employee number.
func (r *repository) FindEligible(ctx context.Context, periodType payperiod.Type) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Joins("Post").
		Where("employees.status IN ?", PayableStatuses).
		Where(`"Post".payroll_type LIKE ?`, string(periodType)+"%").
		Order("employees.employee_number ASC").
		Find(&rows).Error
	return rows, err
}
