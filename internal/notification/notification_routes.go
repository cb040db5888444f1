package notification

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	group := r.Group("/notifications")
	{
		// jalur internal: service lain boleh mengirim dengan API key;
		// sesi user biasa harus ber-role admin
		group.POST("", middleware.InternalKeyOrAuth(), middleware.InternalOrAdminOnly(), h.Dispatch)

		authed := group.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("", middleware.RateLimitByUser(5, 20), h.GetAll)
			authed.GET("/unread-count", middleware.RateLimitByUser(5, 20), h.UnreadCount)
			authed.POST("/:id/read", middleware.RateLimitByUser(3, 10), h.MarkRead)
		}
	}
}
