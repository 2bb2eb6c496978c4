package domain

// EnforceRequest asks whether Subject (a user ID) may perform Action on
// Resource.
type EnforceRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
