package employee

type EligibleQuery struct {
	PayrollType string `form:"payroll_type" binding:"required,oneof=Monthly Weekly"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Status         string `json:"status"`
	PostID         string `json:"post_id,omitempty"`
	PayrollType    string `json:"payroll_type,omitempty"`
	DateOfJoining  string `json:"date_of_joining,omitempty"`
}
