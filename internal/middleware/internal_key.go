package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const InternalKeyHeader = "X-Internal-Api-Key"

// InternalAPIKey gates endpoints that are called service-to-service
// (relay, worker) with a shared secret instead of a user session.
func InternalAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(InternalKeyHeader)
		expected := os.Getenv("INTERNAL_API_KEY")

		if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid internal api key", nil)
			c.Abort()
			return
		}

		c.Set("internal_caller", true)
		c.Next()
	}
}

// InternalOrAdminOnly dipasang setelah InternalKeyOrAuth: caller internal
// lolos, sesi user harus ber-role admin.
func InternalOrAdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetBool("internal_caller") {
			c.Next()
			return
		}

		switch c.GetString("role") {
		case "SUPER_ADMIN", "ADMIN", "HR", "MANAGER":
			c.Next()
		default:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin role required", nil)
			c.Abort()
		}
	}
}

// InternalKeyOrAuth accepts either the shared internal key or a normal
// authenticated session. Notification creation is invoked from both the
// relay/worker side and the admin UI, so both paths must work.
func InternalKeyOrAuth() gin.HandlerFunc {
	auth := AuthMiddleware()

	return func(c *gin.Context) {
		key := c.GetHeader(InternalKeyHeader)
		expected := os.Getenv("INTERNAL_API_KEY")

		if key != "" && expected != "" && subtle.ConstantTimeCompare([]byte(key), []byte(expected)) == 1 {
			c.Set("internal_caller", true)
			c.Next()
			return
		}

		auth(c)
	}
}
