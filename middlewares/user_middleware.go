package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserScope resolves which user's event store a request operates on.
// This is store keying only; authentication is out of scope and handled
// by the gateway in front of this service.
func UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header is required"})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}
