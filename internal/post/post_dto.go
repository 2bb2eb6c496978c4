package post

// CompensationResponse is a post's validated salary structure together with
// the pay cadence it implies.
type CompensationResponse struct {
	PostID        string  `json:"post_id"`
	Title         string  `json:"title"`
	PayrollType   string  `json:"payroll_type"`
	PeriodType    string  `json:"period_type"`
	PaidWeeklyOff bool    `json:"paid_weekly_off"`
	Basic         float64 `json:"basic"`
	HRA           float64 `json:"house_rent_allowance"`
	DA            float64 `json:"dearness_allowance"`
	Perquisites   float64 `json:"perquisites"`
	Others        float64 `json:"others"`
	Bonus         float64 `json:"bonus"`
	VariablePay   float64 `json:"variable_pay"`
	Taxes         float64 `json:"taxes"`
	Gross         float64 `json:"gross"`
	Total         float64 `json:"total"`
	IsPfPayable   bool    `json:"is_pf_payable"`
	IsEsiPayable  bool    `json:"is_esi_payable"`
}
