package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nirmalvora/padosee-server/internal/auth"
	"github.com/nirmalvora/padosee-server/internal/reqctx"
)

const errInvalidToken = "Invalid token..."

// UserIDKey is the gin context key holding the authenticated user's ID.
const UserIDKey = "userID"

type tokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

// Auth validates a Bearer session token and records the caller's user ID
// in both the gin context and the request context.
func Auth(tokens tokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": 0, "message": errInvalidToken})
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": 0, "message": errInvalidToken})
			return
		}

		c.Set(UserIDKey, claims.User.ID)
		c.Request = c.Request.WithContext(reqctx.WithUserID(c.Request.Context(), claims.User.ID))
		c.Next()
	}
}
