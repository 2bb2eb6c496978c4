package post

import (
	"fmt"
	"strings"

	posterrors "go-payroll/internal/post/errors"
	"go-payroll/internal/shared/money"
)

// CompensationConfig is a post's declared monthly salary structure with
// optional components defaulted to zero.
type CompensationConfig struct {
	Basic         float64
	HRA           float64
	DA            float64
	Perquisites   float64
	Others        float64
	Bonus         float64
	VariablePay   float64
	Taxes         float64
	Gross         float64
	Total         float64
	IsPfPayable   bool
	IsEsiPayable  bool
	PaidWeeklyOff bool
}

// Compensation validates the post's salary columns. Basic, gross and total
// are mandatory; any non-finite figure is rejected.
func (p Post) Compensation() (CompensationConfig, error) {
	var missing []string
	if p.Basic == nil {
		missing = append(missing, "basic")
	}
	if p.Gross == nil {
		missing = append(missing, "gross")
	}
	if p.Total == nil {
		missing = append(missing, "total")
	}
	if len(missing) > 0 {
		return CompensationConfig{}, posterrors.ErrIncompleteCompensation.WithCause(
			fmt.Errorf("post %s: missing %s", p.ID, strings.Join(missing, ", ")),
		)
	}

	cfg := CompensationConfig{
		Basic:         *p.Basic,
		HRA:           orZero(p.HRA),
		DA:            orZero(p.DA),
		Perquisites:   orZero(p.Perquisites),
		Others:        orZero(p.Others),
		Bonus:         orZero(p.Bonus),
		VariablePay:   orZero(p.VariablePay),
		Taxes:         orZero(p.Taxes),
		Gross:         *p.Gross,
		Total:         *p.Total,
		IsPfPayable:   p.IsPfPayable,
		IsEsiPayable:  p.IsEsiPayable,
		PaidWeeklyOff: p.PaidWeeklyOff(),
	}

	if !money.AllFinite(cfg.Basic, cfg.HRA, cfg.DA, cfg.Perquisites, cfg.Others,
		cfg.Bonus, cfg.VariablePay, cfg.Taxes, cfg.Gross, cfg.Total) {
		return CompensationConfig{}, posterrors.ErrInvalidCompensation.WithCause(
			fmt.Errorf("post %s: non-finite salary figure", p.ID),
		)
	}
	return cfg, nil
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
