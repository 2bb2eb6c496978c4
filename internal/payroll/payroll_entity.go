package payroll

import (
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "draft"
	StatusProcessed = "processed"
	StatusPaid      = "paid"
)

// Earnings is the stored earnings snapshot. Gross follows whichever formula
// produced the record: generation or manual adjustment.
type Earnings struct {
	Basic       float64 `gorm:"column:basic_salary" json:"basic_salary"`
	HRA         float64 `gorm:"column:house_rent_allowance" json:"house_rent_allowance"`
	DA          float64 `gorm:"column:dearness_allowance" json:"dearness_allowance"`
	Perquisites float64 `gorm:"column:perquisites" json:"perquisites"`
	Others      float64 `gorm:"column:others" json:"others"`
	Bonus       float64 `gorm:"column:bonus" json:"bonus"`
	VariablePay float64 `gorm:"column:variable_pay" json:"variable_pay"`
	Gross       float64 `gorm:"column:gross_salary" json:"gross_salary"`
}

// Deductions is the stored deductions snapshot. Employer contributions are
// kept for reference and are not part of TotalDeductions.
type Deductions struct {
	EpfEmployee     float64 `gorm:"column:epf_employee" json:"epf_employee"`
	EsiEmployee     float64 `gorm:"column:esi_employee" json:"esi_employee"`
	Taxes           float64 `gorm:"column:taxes" json:"taxes"`
	TotalDeductions float64 `gorm:"column:total_deductions" json:"total_deductions"`
	EpfEmployer     float64 `gorm:"column:epf_employer" json:"epf_employer"`
	EsiEmployer     float64 `gorm:"column:esi_employer" json:"esi_employer"`
}

// Payroll is one employee's pay for one period, unique on
// (employee_id, period_key).
type Payroll struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period"`
	Employee    *employee.Employee `gorm:"foreignKey:EmployeeID;references:ID"`
	PeriodKey   string             `gorm:"column:period_key;type:varchar(7);not null;uniqueIndex:uq_payroll_employee_period"`
	Type        string             `gorm:"column:type;type:varchar(10);not null"`
	PeriodStart time.Time          `gorm:"type:date;not null"`
	PeriodEnd   time.Time          `gorm:"type:date;not null"`

	Attendance attendance.Metrics `gorm:"embedded;embeddedPrefix:att_"`
	Earnings   Earnings           `gorm:"embedded;embeddedPrefix:earn_"`
	Deductions Deductions         `gorm:"embedded;embeddedPrefix:ded_"`
	NetSalary  float64            `gorm:"column:net_salary;not null;default:0"`

	Status         string     `gorm:"type:varchar(20);not null;default:'draft';index"`
	Comments       *string    `gorm:"type:text"`
	ProcessedAt    *time.Time `gorm:"index"`
	PaidAt         *time.Time `gorm:"index"`
	LastModifiedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Payroll) TableName() string {
	return "payrolls"
}

// IsValidStatus reports whether s is a known payroll status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusProcessed, StatusPaid:
		return true
	default:
		return false
	}
}
