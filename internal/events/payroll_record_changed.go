package events

import "time"

const PayrollRecordChangedTopic = "hr.payroll.record.changed.v1"

const (
	PayrollGenerated = "payroll_generated"
	PayrollAdjusted  = "payroll_adjusted"
)

// PayrollRecordChangedEvent is emitted after a payroll record is written,
// either by generation or by a manual adjustment.
type PayrollRecordChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	PeriodKey  string    `json:"period_key"`
	Status     string    `json:"status"`
	ChangedBy  string    `json:"changed_by,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
