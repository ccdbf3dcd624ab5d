package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cinebook/cinebook-api/pkg/helpers"
	"github.com/cinebook/cinebook-api/pkg/response"
)

const CtxAdminIDKey = "adminID"

// AdminAuth validates the Authorization bearer token issued at admin
// login and injects the admin ID into the Gin context.
func AdminAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == "" || token == header {
			response.Message(c, http.StatusUnauthorized, "Token not found")
			c.Abort()
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.Message(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}
		c.Set(CtxAdminIDKey, claims.AdminID)
		c.Next()
	}
}
