package payroll

import (
	"time"

	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/money"
)

// Patch is a sparse manual correction. A nil field is left untouched; a
// non-nil zero is applied as zero.
type Patch struct {
	Basic       *float64
	HRA         *float64
	DA          *float64
	Perquisites *float64
	Others      *float64
	Bonus       *float64
	VariablePay *float64

	EpfEmployee *float64
	EsiEmployee *float64
	Taxes       *float64

	NetSalary *float64
	Status    *string
	Comments  *string
}

func (p Patch) touchesEarnings() bool {
	return p.Basic != nil || p.HRA != nil || p.DA != nil || p.Perquisites != nil ||
		p.Others != nil || p.Bonus != nil || p.VariablePay != nil
}

func (p Patch) touchesDeductions() bool {
	return p.EpfEmployee != nil || p.EsiEmployee != nil || p.Taxes != nil
}

func (p Patch) validate() error {
	for _, v := range []*float64{
		p.Basic, p.HRA, p.DA, p.Perquisites, p.Others, p.Bonus, p.VariablePay,
		p.EpfEmployee, p.EsiEmployee, p.Taxes, p.NetSalary,
	} {
		if v != nil && !money.IsFinite(*v) {
			return payrollerrors.ErrInvalidMoneyValue
		}
	}
	if p.Status != nil && !IsValidStatus(*p.Status) {
		return payrollerrors.ErrInvalidStatus
	}
	return nil
}

// ApplyPatch merges p over a copy of stored and returns the result. Gross is
// recomputed only when an earnings field is patched and, unlike generation,
// includes others, bonus and variable pay. Total deductions are recomputed
// only when a deduction field is patched. Net is gross minus deductions
// whenever either changed, unless the patch sets it explicitly. Moving to
// paid stamps PaidAt with now.
func ApplyPatch(stored Payroll, p Patch, now time.Time) (Payroll, error) {
	if err := p.validate(); err != nil {
		return Payroll{}, err
	}

	out := stored

	if p.touchesEarnings() {
		e := &out.Earnings
		set(&e.Basic, p.Basic)
		set(&e.HRA, p.HRA)
		set(&e.DA, p.DA)
		set(&e.Perquisites, p.Perquisites)
		set(&e.Others, p.Others)
		set(&e.Bonus, p.Bonus)
		set(&e.VariablePay, p.VariablePay)
		e.Gross = money.Round2(e.Basic + e.HRA + e.DA + e.Perquisites + e.Others + e.Bonus + e.VariablePay)
	}

	if p.touchesDeductions() {
		d := &out.Deductions
		set(&d.EpfEmployee, p.EpfEmployee)
		set(&d.EsiEmployee, p.EsiEmployee)
		set(&d.Taxes, p.Taxes)
		d.TotalDeductions = money.Round2(d.EpfEmployee + d.EsiEmployee + d.Taxes)
	}

	switch {
	case p.NetSalary != nil:
		out.NetSalary = money.Round2(*p.NetSalary)
	case p.touchesEarnings() || p.touchesDeductions():
		out.NetSalary = money.Round2(out.Earnings.Gross - out.Deductions.TotalDeductions)
	}

	if p.Status != nil {
		if *p.Status == StatusPaid && stored.Status != StatusPaid {
			paidAt := now
			out.PaidAt = &paidAt
		}
		out.Status = *p.Status
	}
	if p.Comments != nil {
		comments := *p.Comments
		out.Comments = &comments
	}

	return out, nil
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = money.Round2(*v)
	}
}
