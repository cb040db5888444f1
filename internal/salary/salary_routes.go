package salary

import (
	"go-ems/internal/middleware"
	"go-ems/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware())
	salaries.Use(middleware.ExtractUserID())
	salaries.Use(middleware.ContextLogger(logger))
	{
		salaries.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.GetAll,
		)

		salaries.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.GetById,
		)

		salaries.GET("/:id/history",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.GetHistory,
		)

		if redisClient != nil {
			salaries.POST("",
				middleware.RateLimitByUser(0.5, 2),
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "salary", "create"),
				handler.Create,
			)
		} else {
			salaries.POST("",
				middleware.RateLimitByUser(0.5, 2),
				middleware.RBACAuthorize(rbacService, "salary", "create"),
				handler.Create,
			)
		}

		salaries.POST("/generate",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salary", "create"),
			handler.Generate,
		)

		salaries.POST("/:id/correct",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "salary", "correct"),
			handler.Correct,
		)

		salaries.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "salary", "delete"),
			handler.Delete,
		)
	}
}
