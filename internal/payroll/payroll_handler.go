package payroll

import (
	"encoding/json"
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

// NewHandler builds the payroll handler. rdb backs the idempotent replay of
// generation requests and may be nil.
func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("user_id")
	if actorID == "" {
		actorID = c.GetString("employee_id")
	}
	return actorID
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("payroll request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.writeServiceError(c, apperror.MapValidationError(err))
}

func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	if lk := c.GetString("idempotency_lock_key"); lk != "" {
		h.rdb.Del(c.Request.Context(), lk)
	}
}

func (h *Handler) storeIdempotentResponse(c *gin.Context, resp any) {
	if h.rdb == nil {
		return
	}
	ck := c.GetString("idempotency_cache_key")
	if ck == "" {
		return
	}
	if payload, err := json.Marshal(resp); err == nil {
		_ = h.rdb.Set(c.Request.Context(), ck, payload, idempotencyTTL).Err()
	}
}

func (h *Handler) GenerateMonthly(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var req GenerateMonthlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.GenerateMonthly(c.Request.Context(), req.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.storeIdempotentResponse(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GenerateWeekly(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var req GenerateWeeklyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.GenerateWeekly(c.Request.Context(), req.Week)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.storeIdempotentResponse(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ProcessSingle(c *gin.Context) {
	var req ProcessSingleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.ProcessSingle(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp.Items, &resp.Meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), getActorID(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
