package employee

import (
	"context"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	ListEligible(ctx context.Context, periodType payperiod.Type) ([]EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

// ListEligible previews who a payroll run of the given cadence would include.
func (s *service) ListEligible(ctx context.Context, periodType payperiod.Type) ([]EmployeeResponse, error) {
	if periodType != payperiod.Monthly && periodType != payperiod.Weekly {
		return nil, employeeerrors.ErrInvalidPayrollType
	}

	rows, err := s.repo.FindEligible(ctx, periodType)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list eligible employees failed",
			zap.String("payroll_type", string(periodType)),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		FullName:       e.FullName,
		Email:          e.Email,
		Status:         e.Status,
	}
	if e.PostID != nil {
		resp.PostID = e.PostID.String()
	}
	if e.Post != nil {
		resp.PayrollType = e.Post.PayrollType
	}
	if !e.DateOfJoining.IsZero() {
		resp.DateOfJoining = e.DateOfJoining.Format("2006-01-02")
	}
	return resp
}
