package post

import (
	"strings"
	"time"

	"go-payroll/internal/payperiod"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PayrollWeeklyWithSunday     = "Weekly_With_Sunday_Holiday"
	PayrollWeeklyWithoutSunday  = "Weekly_Without_Sunday_Holiday"
	PayrollMonthlyWithSunday    = "Monthly_With_Sunday_Holiday"
	PayrollMonthlyWithoutSunday = "Monthly_Without_Sunday_Holiday"

	paidSundayMarker = "With_Sunday_Holiday"
)

// Post is a job post. Its salary columns are the declared monthly figures
// payroll is prorated from; nil means not configured.
type Post struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title        string         `gorm:"size:255;not null"`
	DepartmentID *uuid.UUID     `gorm:"type:uuid"`
	PayrollType  string         `gorm:"column:payroll_type;size:40;not null"`
	IsPfPayable  bool           `gorm:"column:is_pf_payable;not null;default:false"`
	IsEsiPayable bool           `gorm:"column:is_esi_payable;not null;default:false"`
	Basic        *float64       `gorm:"column:basic"`
	HRA          *float64       `gorm:"column:house_rent_allowance"`
	DA           *float64       `gorm:"column:dearness_allowance"`
	Perquisites  *float64       `gorm:"column:perquisites"`
	Others       *float64       `gorm:"column:others"`
	Bonus        *float64       `gorm:"column:bonus"`
	VariablePay  *float64       `gorm:"column:variable_pay"`
	Taxes        *float64       `gorm:"column:taxes"`
	Gross        *float64       `gorm:"column:gross"`
	Total        *float64       `gorm:"column:total"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Post) TableName() string {
	return "posts"
}

// PeriodType derives the pay period cadence from the payroll type prefix.
// ok is false when the payroll type is neither monthly nor weekly.
func (p Post) PeriodType() (payperiod.Type, bool) {
	switch {
	case strings.HasPrefix(p.PayrollType, string(payperiod.Monthly)):
		return payperiod.Monthly, true
	case strings.HasPrefix(p.PayrollType, string(payperiod.Weekly)):
		return payperiod.Weekly, true
	default:
		return "", false
	}
}

// PaidWeeklyOff reports whether Sundays are paid holidays for this post.
func (p Post) PaidWeeklyOff() bool {
	return strings.Contains(p.PayrollType, paidSundayMarker)
}
