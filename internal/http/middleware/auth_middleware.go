package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// AuthMiddleware creates session authentication middleware. The session
// token travels in a cookie; a missing or invalid cookie ends the request
// with 401 before any handler runs.
func AuthMiddleware(tokenSvc domain.TokenService, cookieName string) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "Not logged in"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "Not logged in"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	})
}

// UserID extracts the authenticated user from the request context. The
// boolean is false when the middleware did not run.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
