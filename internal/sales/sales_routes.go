package sales

import (
	"go-ems/internal/middleware"
	"go-ems/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	group := r.Group("/sales")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ExtractUserID())
	{
		group.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "sales", "read"),
			h.GetAll,
		)
		group.GET("/total",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "sales", "read"),
			h.Total,
		)
		group.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "sales", "create"),
			h.Create,
		)
	}
}
