package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thanarat-p/eventbook/internal/service"
	"github.com/thanarat-p/eventbook/pkg/response"
)

// ContextUserID is the gin context key the authenticated user ID is stored under
const ContextUserID = "userID"

// Auth returns middleware that requires a valid bearer token and stores
// the authenticated user ID in the request context.
func Auth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The token is the second space-separated part of the header;
		// a header without one is treated the same as no header at all.
		token := ""
		if parts := strings.Split(c.GetHeader("Authorization"), " "); len(parts) > 1 {
			token = parts[1]
		}
		if token == "" {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.Forbidden(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user ID stored by Auth
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
