package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsAllowHeaders = "Origin, Content-Type, Accept, Authorization, X_AUTHORIZATION, X-Authorization, X-Request-ID"
)

// CORS allows browser clients served from origin. Preflight requests end here.
func CORS(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}

	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", origin)
		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		header.Set("Access-Control-Max-Age", "86400")
		if origin != "*" {
			header.Set("Access-Control-Allow-Credentials", "true")
			header.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
