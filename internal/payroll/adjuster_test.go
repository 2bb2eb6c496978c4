package payroll_test

import (
	"math"
	"testing"
	"time"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func storedPayroll() payroll.Payroll {
	return payroll.Payroll{
		ID:        uuid.New(),
		PeriodKey: "2025-01",
		Status:    payroll.StatusProcessed,
		Earnings: payroll.Earnings{
			Basic:       10000,
			HRA:         4000,
			DA:          1000,
			Perquisites: 500,
			Others:      300,
			Bonus:       0,
			VariablePay: 200,
			Gross:       15500,
		},
		Deductions: payroll.Deductions{
			EpfEmployee:     1200,
			EsiEmployee:     116.25,
			Taxes:           200,
			TotalDeductions: 1516.25,
		},
		NetSalary: 14483.75,
	}
}

func TestApplyPatch_BonusOnly(t *testing.T) {
	stored := storedPayroll()

	got, err := payroll.ApplyPatch(stored, payroll.Patch{Bonus: ptr(5000.0)}, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, 5000.0, got.Earnings.Bonus)
	// 10000 + 4000 + 1000 + 500 + 300 + 5000 + 200
	assert.Equal(t, 21000.0, got.Earnings.Gross)
	assert.Equal(t, 1516.25, got.Deductions.TotalDeductions)
	assert.Equal(t, 19483.75, got.NetSalary)

	// stored is untouched
	assert.Equal(t, 15500.0, stored.Earnings.Gross)
}

func TestApplyPatch_DeductionsOnly(t *testing.T) {
	stored := storedPayroll()

	got, err := payroll.ApplyPatch(stored, payroll.Patch{Taxes: ptr(0.0)}, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, 15500.0, got.Earnings.Gross)
	assert.Equal(t, 1316.25, got.Deductions.TotalDeductions)
	assert.Equal(t, 14183.75, got.NetSalary)
}

func TestApplyPatch_ExplicitNetWins(t *testing.T) {
	got, err := payroll.ApplyPatch(storedPayroll(), payroll.Patch{
		Bonus:     ptr(5000.0),
		NetSalary: ptr(12345.678),
	}, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, 21000.0, got.Earnings.Gross)
	assert.Equal(t, 12345.68, got.NetSalary)
}

func TestApplyPatch_RoundsPatchedValues(t *testing.T) {
	got, err := payroll.ApplyPatch(storedPayroll(), payroll.Patch{HRA: ptr(1.005)}, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, 1.01, got.Earnings.HRA)
}

func TestApplyPatch_StatusAndComments(t *testing.T) {
	now := time.Date(2025, 2, 5, 10, 0, 0, 0, time.UTC)
	stored := storedPayroll()

	got, err := payroll.ApplyPatch(stored, payroll.Patch{
		Status:   ptr(payroll.StatusPaid),
		Comments: ptr("paid by bank transfer"),
	}, now)

	assert.NoError(t, err)
	assert.Equal(t, payroll.StatusPaid, got.Status)
	assert.Equal(t, &now, got.PaidAt)
	assert.Equal(t, "paid by bank transfer", *got.Comments)
	// nothing monetary changed
	assert.Equal(t, stored.NetSalary, got.NetSalary)
	assert.Equal(t, stored.Earnings, got.Earnings)
}

func TestApplyPatch_Invalid(t *testing.T) {
	_, err := payroll.ApplyPatch(storedPayroll(), payroll.Patch{Status: ptr("approved")}, time.Now())
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatus)

	_, err = payroll.ApplyPatch(storedPayroll(), payroll.Patch{Bonus: ptr(math.NaN())}, time.Now())
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMoneyValue)
}
