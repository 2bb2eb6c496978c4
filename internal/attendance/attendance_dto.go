package attendance

type ListQuery struct {
	EmployeeID string `form:"employee_id"`
	Month      string `form:"month"`
	Week       string `form:"week"`
}

type AttendanceResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	Date                 string  `json:"date"`
	PunchIn              *string `json:"punch_in,omitempty"`
	PunchOut             *string `json:"punch_out,omitempty"`
	IsLeave              bool    `json:"is_leave"`
	LeaveID              *string `json:"leave_id,omitempty"`
	Month                string  `json:"month"`
	Week                 string  `json:"week"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// PeriodSummaryResponse lists an employee's records for one pay period.
type PeriodSummaryResponse struct {
	PeriodKey string               `json:"period_key"`
	Records   []AttendanceResponse `json:"records"`
}
