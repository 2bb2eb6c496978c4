package payroll_test

import (
	"math"
	"testing"

	"go-payroll/internal/attendance"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/post"

	"github.com/stretchr/testify/assert"
)

func TestComposeSalary_PFOnFullMonth(t *testing.T) {
	cfg := post.CompensationConfig{Basic: 9000, Gross: 9000, Total: 9000, IsPfPayable: true}

	c, err := payroll.ComposeSalary(cfg, attendance.Metrics{TotalDaysPayable: 30})

	assert.NoError(t, err)
	assert.Equal(t, 9000.00, c.Basic)
	assert.Equal(t, 1080.00, c.PFEmployee)
	assert.Equal(t, 1170.00, c.PFEmployer)
	assert.Equal(t, 9000.00, c.Gross)
	assert.Equal(t, 1080.00, c.TotalDeductions)
	assert.Equal(t, 7920.00, c.NetSalary)
}

func TestComposeSalary_PFWageCeiling(t *testing.T) {
	cfg := post.CompensationConfig{Basic: 40000, Gross: 40000, Total: 40000, IsPfPayable: true}

	c, err := payroll.ComposeSalary(cfg, attendance.Metrics{TotalDaysPayable: 30})

	assert.NoError(t, err)
	assert.Equal(t, 40000.00, c.Basic)
	assert.Equal(t, 1800.00, c.PFEmployee)
	assert.Equal(t, 1950.00, c.PFEmployer)
}

func TestComposeSalary_FullBreakdown(t *testing.T) {
	cfg := post.CompensationConfig{
		Basic:        20000,
		HRA:          8000,
		DA:           2000,
		Perquisites:  1000,
		Others:       600,
		Bonus:        1500,
		VariablePay:  500,
		Taxes:        200,
		Gross:        31000,
		Total:        33600,
		IsPfPayable:  true,
		IsEsiPayable: true,
	}

	c, err := payroll.ComposeSalary(cfg, attendance.Metrics{TotalDaysPayable: 15})

	assert.NoError(t, err)
	assert.Equal(t, payroll.SalaryComponents{
		Basic:           10000,
		HRA:             4000,
		DA:              1000,
		Perquisites:     500,
		Others:          300,
		Bonus:           1500,
		VariablePay:     500,
		Gross:           15500,
		PFEmployee:      1200,
		PFEmployer:      1300,
		ESIEmployee:     116.25,
		ESIEmployer:     503.75,
		Taxes:           200,
		TotalDeductions: 1516.25,
		NetSalary:       16283.75,
	}, c)
}

func TestComposeSalary_NoContributions(t *testing.T) {
	cfg := post.CompensationConfig{Basic: 12000, HRA: 3000, Gross: 15000, Total: 15000}

	c, err := payroll.ComposeSalary(cfg, attendance.Metrics{TotalDaysPayable: 0})

	assert.NoError(t, err)
	assert.Equal(t, float64(0), c.Basic)
	assert.Equal(t, float64(0), c.PFEmployee)
	assert.Equal(t, float64(0), c.ESIEmployee)
	assert.Equal(t, float64(0), c.NetSalary)
}

func TestComposeSalary_NonFinite(t *testing.T) {
	cfg := post.CompensationConfig{Basic: math.Inf(1), Gross: 1, Total: 1}

	_, err := payroll.ComposeSalary(cfg, attendance.Metrics{TotalDaysPayable: 0})
	assert.ErrorIs(t, err, payrollerrors.ErrNonFiniteAmount)

	_, err = payroll.ComposeSalary(post.CompensationConfig{Basic: 1}, attendance.Metrics{TotalDaysPayable: math.NaN()})
	assert.ErrorIs(t, err, payrollerrors.ErrNonFiniteAmount)
}

func TestSalaryComponents_Snapshots(t *testing.T) {
	c := payroll.SalaryComponents{Basic: 1, Gross: 2, PFEmployee: 3, PFEmployer: 4, Taxes: 5, TotalDeductions: 8}
	earnings, deductions := c.Snapshots()

	assert.Equal(t, payroll.Earnings{Basic: 1, Gross: 2}, earnings)
	assert.Equal(t, payroll.Deductions{EpfEmployee: 3, EpfEmployer: 4, Taxes: 5, TotalDeductions: 8}, deductions)
}
