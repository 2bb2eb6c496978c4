package post

import (
	"context"
	"fmt"

	posterrors "go-payroll/internal/post/errors"

	"github.com/google/uuid"
)

type Service interface {
	GetCompensation(ctx context.Context, id string) (CompensationResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetCompensation returns the post's salary structure exactly as a payroll
// run would see it, so configuration errors surface before generation.
func (s *service) GetCompensation(ctx context.Context, id string) (CompensationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompensationResponse{}, posterrors.ErrInvalidPostID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompensationResponse{}, err
	}

	periodType, ok := p.PeriodType()
	if !ok {
		return CompensationResponse{}, posterrors.ErrUnknownPayrollType.WithCause(
			fmt.Errorf("payroll type %q", p.PayrollType),
		)
	}

	cfg, err := p.Compensation()
	if err != nil {
		return CompensationResponse{}, err
	}

	return CompensationResponse{
		PostID:        p.ID.String(),
		Title:         p.Title,
		PayrollType:   p.PayrollType,
		PeriodType:    string(periodType),
		PaidWeeklyOff: cfg.PaidWeeklyOff,
		Basic:         cfg.Basic,
		HRA:           cfg.HRA,
		DA:            cfg.DA,
		Perquisites:   cfg.Perquisites,
		Others:        cfg.Others,
		Bonus:         cfg.Bonus,
		VariablePay:   cfg.VariablePay,
		Taxes:         cfg.Taxes,
		Gross:         cfg.Gross,
		Total:         cfg.Total,
		IsPfPayable:   cfg.IsPfPayable,
		IsEsiPayable:  cfg.IsEsiPayable,
	}, nil
}
