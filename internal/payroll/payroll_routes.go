package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
	rdb *redis.Client,
) {
	limit := middleware.RateLimitByUser(1, 3)
	generate := func(h gin.HandlerFunc) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{limit, middleware.RBACAuthorize(rbacService, "payroll", "generate")}
		if rdb != nil {
			chain = append(chain, middleware.Idempotency(rdb))
		}
		return append(chain, h)
	}

	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	payrolls.Use(middleware.ContextLogger(logger))
	{
		payrolls.POST("/generate/monthly", generate(handler.GenerateMonthly)...)
		payrolls.POST("/generate/weekly", generate(handler.GenerateWeekly)...)
		payrolls.POST("/process", middleware.RBACAuthorize(rbacService, "payroll", "generate"), handler.ProcessSingle)

		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAll)
		payrolls.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetById)
		payrolls.PATCH("/:id", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.Update)
	}
}
