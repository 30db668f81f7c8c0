package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionResolver maps a bearer token to the user it belongs to.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (uint, error)
}

// Auth validates the Authorization header against the session store and puts
// the resolved user id on the context.
func Auth(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("session_token", parts[1])
		c.Next()
	}
}

// UserID reads the user id placed on the context by Auth.
func UserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// SessionToken reads the raw token placed on the context by Auth.
func SessionToken(c *gin.Context) string {
	return c.GetString("session_token")
}
