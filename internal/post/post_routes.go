package post

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	posts := r.Group("/posts")
	posts.Use(middleware.AuthMiddleware())
	{
		posts.GET("/:id/compensation", middleware.RBACAuthorize(rbacService, "post", "read"), h.GetCompensation)
	}
}
