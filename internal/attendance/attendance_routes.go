package attendance

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.List)
		attendances.POST("/punch-in", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.PunchIn)
		attendances.POST("/punch-out", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.PunchOut)
	}
}
