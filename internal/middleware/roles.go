package middleware

import (
	"net/http"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequireRole creates a Gin middleware that rejects callers whose role does
// not meet the required role (admin > manager > employee). It must run after
// AuthMiddleware.
func RequireRole(required domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		role, ok := GetUserRoleFromContext(c)
		if !ok {
			logger.Error("User role missing from context; is AuthMiddleware applied?")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		if !required.AllowsActionBy(role) {
			logger.Warn("User role insufficient for endpoint", "role", string(role), "required", string(required))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		c.Next()
	}
}
