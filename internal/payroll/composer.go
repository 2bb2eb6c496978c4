package payroll

import (
	"fmt"
	"math"

	"go-payroll/internal/attendance"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/post"
	"go-payroll/internal/shared/money"
)

const (
	// DaysPerMonth is the conventional month monthly figures are prorated over.
	DaysPerMonth = 30

	PFWageCeiling   = 15000
	PFEmployeeRate  = 0.12
	PFEmployerRate  = 0.13
	ESIEmployeeRate = 0.0075
	ESIEmployerRate = 0.0325
)

// SalaryComponents is the monetary result for one employee and period.
type SalaryComponents struct {
	Basic           float64
	HRA             float64
	DA              float64
	Perquisites     float64
	Others          float64
	Bonus           float64
	VariablePay     float64
	Gross           float64
	PFEmployee      float64
	PFEmployer      float64
	ESIEmployee     float64
	ESIEmployer     float64
	Taxes           float64
	TotalDeductions float64
	NetSalary       float64
}

// ComposeSalary prorates the post's monthly figures by payable days and
// derives statutory contributions and net pay. Bonus and variable pay are
// paid in full. Gross here excludes others, bonus and variable pay; net adds
// them back.
func ComposeSalary(cfg post.CompensationConfig, m attendance.Metrics) (SalaryComponents, error) {
	days := m.TotalDaysPayable
	if !money.IsFinite(days) {
		return SalaryComponents{}, payrollerrors.ErrNonFiniteAmount.WithCause(fmt.Errorf("total days payable is %v", days))
	}

	c := SalaryComponents{
		Basic:       prorate(cfg.Basic, days),
		HRA:         prorate(cfg.HRA, days),
		DA:          prorate(cfg.DA, days),
		Perquisites: prorate(cfg.Perquisites, days),
		Others:      prorate(cfg.Others, days),
		Bonus:       money.Round2(cfg.Bonus),
		VariablePay: money.Round2(cfg.VariablePay),
		Taxes:       money.Round2(cfg.Taxes),
	}

	c.Gross = money.Round2(c.Basic + c.DA + c.HRA + c.Perquisites)

	if cfg.IsPfPayable {
		basis := math.Min(c.Basic, PFWageCeiling)
		c.PFEmployee = money.Round2(basis * PFEmployeeRate)
		c.PFEmployer = money.Round2(basis * PFEmployerRate)
	}
	if cfg.IsEsiPayable {
		c.ESIEmployee = money.Round2(c.Gross * ESIEmployeeRate)
		c.ESIEmployer = money.Round2(c.Gross * ESIEmployerRate)
	}

	c.TotalDeductions = money.Round2(c.PFEmployee + c.ESIEmployee + c.Taxes)
	c.NetSalary = money.Round2(c.Gross + c.Bonus + c.VariablePay + c.Others - c.TotalDeductions)

	if !c.finite() {
		return SalaryComponents{}, payrollerrors.ErrNonFiniteAmount
	}
	return c, nil
}

func prorate(amount, days float64) float64 {
	return money.Round2(amount * days * (1.0 / DaysPerMonth))
}

func (c SalaryComponents) finite() bool {
	return money.AllFinite(c.Basic, c.HRA, c.DA, c.Perquisites, c.Others, c.Bonus,
		c.VariablePay, c.Gross, c.PFEmployee, c.PFEmployer, c.ESIEmployee,
		c.ESIEmployer, c.Taxes, c.TotalDeductions, c.NetSalary)
}

// Snapshots splits the components into the stored earnings and deductions.
func (c SalaryComponents) Snapshots() (Earnings, Deductions) {
	return Earnings{
			Basic:       c.Basic,
			HRA:         c.HRA,
			DA:          c.DA,
			Perquisites: c.Perquisites,
			Others:      c.Others,
			Bonus:       c.Bonus,
			VariablePay: c.VariablePay,
			Gross:       c.Gross,
		}, Deductions{
			EpfEmployee:     c.PFEmployee,
			EsiEmployee:     c.ESIEmployee,
			Taxes:           c.Taxes,
			TotalDeductions: c.TotalDeductions,
			EpfEmployer:     c.PFEmployer,
			EsiEmployer:     c.ESIEmployer,
		}
}
