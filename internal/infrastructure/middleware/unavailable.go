package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Unavailable short-circuits every API route while the backend is
// misconfigured. Detection happens once at startup; the reason is reported on
// each call instead of crashing the process.
func Unavailable(reason string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"code":    "UNAVAILABLE",
			"message": reason,
		})
	}
}
