package payroll

import "go-payroll/internal/shared/response"

type GenerateMonthlyRequest struct {
	Month string `json:"month" binding:"required"`
}

type GenerateWeeklyRequest struct {
	Week string `json:"week" binding:"required"`
}

// ProcessSingleRequest carries exactly one of Month or Week, matching the
// cadence of the employee's post.
type ProcessSingleRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      string `json:"month"`
	Week       string `json:"week"`
}

type ListFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Month      string `form:"month"`
	Status     string `form:"status" binding:"omitempty,oneof=draft processed paid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Sort       string `form:"sort"`
	Order      string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// Normalize fills the listing defaults: newest first, page 1, ten per page.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Sort == "" {
		f.Sort = "createdAt"
	}
	if f.Order == "" {
		f.Order = "desc"
	}
	return f
}

type EarningsPatch struct {
	BasicSalary *float64 `json:"basic_salary"`
	HRA         *float64 `json:"house_rent_allowance"`
	DA          *float64 `json:"dearness_allowance"`
	Perquisites *float64 `json:"perquisites"`
	Others      *float64 `json:"others"`
	Bonus       *float64 `json:"bonus"`
	VariablePay *float64 `json:"variable_pay"`
}

type DeductionsPatch struct {
	EpfEmployee *float64 `json:"epf_employee"`
	EsiEmployee *float64 `json:"esi_employee"`
	Taxes       *float64 `json:"taxes"`
}

// UpdatePayrollRequest is a sparse correction; absent fields are left as
// stored.
type UpdatePayrollRequest struct {
	Earnings   *EarningsPatch   `json:"earnings"`
	Deductions *DeductionsPatch `json:"deductions"`
	NetSalary  *float64         `json:"net_salary"`
	Status     *string          `json:"status" binding:"omitempty,oneof=draft processed paid"`
	Comments   *string          `json:"comments" binding:"omitempty,max=1000"`
}

// Patch flattens the request into the adjuster's patch.
func (r UpdatePayrollRequest) Patch() Patch {
	p := Patch{
		NetSalary: r.NetSalary,
		Status:    r.Status,
		Comments:  r.Comments,
	}
	if e := r.Earnings; e != nil {
		p.Basic = e.BasicSalary
		p.HRA = e.HRA
		p.DA = e.DA
		p.Perquisites = e.Perquisites
		p.Others = e.Others
		p.Bonus = e.Bonus
		p.VariablePay = e.VariablePay
	}
	if d := r.Deductions; d != nil {
		p.EpfEmployee = d.EpfEmployee
		p.EsiEmployee = d.EsiEmployee
		p.Taxes = d.Taxes
	}
	return p
}

type EmployeeSummary struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
}

type AttendanceResponse struct {
	WorkingDays          float64 `json:"working_days"`
	PresentDays          float64 `json:"present_days"`
	PaidLeaveDays        float64 `json:"paid_leave_days"`
	UnpaidLeave          float64 `json:"unpaid_leave"`
	Holidays             float64 `json:"holidays"`
	Absent               float64 `json:"absent"`
	TotalDaysPayable     float64 `json:"total_days_payable"`
	TotalDaysNonPayable  float64 `json:"total_days_non_payable"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type PayrollResponse struct {
	ID             string             `json:"id"`
	EmployeeID     string             `json:"employee_id"`
	Employee       *EmployeeSummary   `json:"employee,omitempty"`
	PeriodKey      string             `json:"period_key"`
	Type           string             `json:"type"`
	PeriodStart    string             `json:"period_start"`
	PeriodEnd      string             `json:"period_end"`
	Attendance     AttendanceResponse `json:"attendance"`
	Earnings       Earnings           `json:"earnings"`
	Deductions     Deductions         `json:"deductions"`
	NetSalary      float64            `json:"net_salary"`
	Status         string             `json:"status"`
	Comments       *string            `json:"comments,omitempty"`
	ProcessedAt    *string            `json:"processed_at,omitempty"`
	PaidAt         *string            `json:"paid_at,omitempty"`
	LastModifiedBy *string            `json:"last_modified_by,omitempty"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

type ListResponse struct {
	Items []PayrollResponse       `json:"items"`
	Meta  response.PaginationMeta `json:"meta"`
}

type FailedRecord struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

// BatchResult summarises a generation run. Failed employees never abort the
// run; they are listed here instead.
type BatchResult struct {
	PeriodKey     string         `json:"period_key"`
	Processed     int            `json:"processed"`
	Failed        int            `json:"failed"`
	FailedRecords []FailedRecord `json:"failed_records"`
}
