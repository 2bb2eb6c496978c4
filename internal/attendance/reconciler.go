package attendance

import (
	"time"

	"go-payroll/internal/payperiod"
	"go-payroll/internal/shared/money"
)

// WeeklyOff is the designated weekly off day.
const WeeklyOff = time.Sunday

// Record is one day's attendance as seen by Reconcile.
type Record struct {
	Date       time.Time
	PunchedIn  bool
	IsLeave    bool
	LeavePaid  bool
	Percentage float64 // 0-100
}

// Metrics summarises a period's attendance. The column tags let it be
// embedded in the payroll record as a snapshot.
type Metrics struct {
	WorkingDays          float64 `json:"working_days" gorm:"column:working_days"`
	PresentDays          float64 `json:"present_days" gorm:"column:present_days"`
	PaidLeaveDays        float64 `json:"paid_leave_days" gorm:"column:paid_leave_days"`
	UnpaidLeave          float64 `json:"unpaid_leave" gorm:"column:unpaid_leave"`
	Holidays             float64 `json:"holidays" gorm:"column:holidays"`
	Absent               float64 `json:"absent" gorm:"column:absent"`
	TotalDaysPayable     float64 `json:"total_days_payable" gorm:"column:total_days_payable"`
	TotalDaysNonPayable  float64 `json:"total_days_non_payable" gorm:"column:total_days_non_payable"`
	AttendancePercentage float64 `json:"attendance_percentage" gorm:"column:attendance_percentage"`
}

type ReconcileInput struct {
	Period   payperiod.Period
	Records  []Record
	Holidays []time.Time // active holidays only
	// PaidWeeklyOff makes every WeeklyOff day a holiday.
	PaidWeeklyOff bool
}

// Reconcile walks every calendar day of the period once. A day is a holiday
// if it is an active holiday or a paid weekly-off; otherwise it is a working
// day classified from its attendance record. When several records share a
// day the last one wins.
func Reconcile(in ReconcileInput) Metrics {
	holidays := make(map[string]struct{}, len(in.Holidays))
	for _, h := range in.Holidays {
		holidays[payperiod.DayKey(h)] = struct{}{}
	}
	byDay := make(map[string]Record, len(in.Records))
	for _, r := range in.Records {
		byDay[payperiod.DayKey(r.Date)] = r
	}

	var m Metrics
	for _, day := range in.Period.Dates() {
		key := payperiod.DayKey(day)

		if _, ok := holidays[key]; ok {
			m.Holidays++
			continue
		}
		if in.PaidWeeklyOff && day.Weekday() == WeeklyOff {
			m.Holidays++
			continue
		}

		m.WorkingDays++

		rec, ok := byDay[key]
		switch {
		case !ok:
			m.Absent++
		case rec.IsLeave && rec.LeavePaid:
			m.PaidLeaveDays++
		case rec.IsLeave:
			m.UnpaidLeave++
		case rec.PunchedIn:
			m.PresentDays += rec.Percentage / 100
		}
	}

	m.TotalDaysPayable = m.PresentDays + m.PaidLeaveDays + m.Holidays
	m.TotalDaysNonPayable = m.UnpaidLeave + m.Absent
	if m.WorkingDays > 0 {
		m.AttendancePercentage = m.PresentDays / m.WorkingDays * 100
	}

	return m.rounded()
}

func (m Metrics) rounded() Metrics {
	return Metrics{
		WorkingDays:          money.Round2(m.WorkingDays),
		PresentDays:          money.Round2(m.PresentDays),
		PaidLeaveDays:        money.Round2(m.PaidLeaveDays),
		UnpaidLeave:          money.Round2(m.UnpaidLeave),
		Holidays:             money.Round2(m.Holidays),
		Absent:               money.Round2(m.Absent),
		TotalDaysPayable:     money.Round2(m.TotalDaysPayable),
		TotalDaysNonPayable:  money.Round2(m.TotalDaysNonPayable),
		AttendancePercentage: money.Round2(m.AttendancePercentage),
	}
}
