package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/attendance"
	attendanceerrors "go-payroll/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	punchInFn  func(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error)
	punchOutFn func(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error)
	listFn     func(ctx context.Context, q attendance.ListQuery) (attendance.PeriodSummaryResponse, error)
}

func (f *fakeService) PunchIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	return f.punchInFn(ctx, employeeID)
}
func (f *fakeService) PunchOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	return f.punchOutFn(ctx, employeeID)
}
func (f *fakeService) ListByPeriod(ctx context.Context, q attendance.ListQuery) (attendance.PeriodSummaryResponse, error) {
	return f.listFn(ctx, q)
}

func TestHandler_PunchInAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.New().String()

	svc := &fakeService{
		punchInFn: func(ctx context.Context, eid string) (attendance.AttendanceResponse, error) {
			assert.Equal(t, employeeID, eid)
			return attendance.AttendanceResponse{ID: uuid.New().String(), EmployeeID: eid}, nil
		},
		listFn: func(ctx context.Context, q attendance.ListQuery) (attendance.PeriodSummaryResponse, error) {
			assert.Equal(t, employeeID, q.EmployeeID)
			assert.Equal(t, "2025-01", q.Month)
			return attendance.PeriodSummaryResponse{PeriodKey: q.Month}, nil
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", employeeID)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/punch-in", nil)
	h.PunchIn(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("employee_id", employeeID)
	c2.Request = httptest.NewRequest(http.MethodGet, "/attendances?month=2025-01", nil)
	h.List(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), `"period_key":"2025-01"`)
}

func TestHandler_PunchOut_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		punchOutFn: func(ctx context.Context, eid string) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrPunchInNotFound
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/punch-out", nil)
	h.PunchOut(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
