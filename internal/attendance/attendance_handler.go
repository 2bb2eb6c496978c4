package attendance

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) PunchIn(c *gin.Context) {
	resp, err := h.service.PunchIn(c.Request.Context(), c.GetString("employee_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) PunchOut(c *gin.Context) {
	resp, err := h.service.PunchOut(c.Request.Context(), c.GetString("employee_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// List returns one employee's records for a month or week. Without an
// employee_id query the caller's own records are listed.
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeServiceError(c, apperror.ErrInvalidInput.WithCause(err))
		return
	}
	if q.EmployeeID == "" {
		q.EmployeeID = c.GetString("employee_id")
	}

	resp, err := h.service.ListByPeriod(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
