package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cryptopay-admin-backend/internal/features/admin/auth"
)

// RequireAdmin gates a route group behind a live admin session token taken
// from the Authorization header.
func RequireAdmin(sessions *auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if !sessions.Valid(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: admin session required"})
			return
		}

		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
