package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records HTTP metrics
type RequestObserver interface {
	RequestStarted() func()
	ObserveRequest(method, route string, status int, d time.Duration, queries int64)
}

// Metrics reports every request to observer. Routes are labelled by their
// pattern, not the raw path.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := observer.RequestStarted()
		start := time.Now()

		c.Next()

		done()
		observer.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start), QueryCount(c))
	}
}
