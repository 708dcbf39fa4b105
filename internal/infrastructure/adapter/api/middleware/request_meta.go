package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

const requestStartKey = "smores.request_start"

// RequestMeta starts the stopwatch and the SQL query counter of a request
func RequestMeta(timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestStartKey, timeProvider.Now())

		ctx, _ := database.WithQueryCounter(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Stopwatch returns the time elapsed since RequestMeta ran
func Stopwatch(c *gin.Context, timeProvider coreport.TimeProvider) time.Duration {
	start, ok := c.Get(requestStartKey)
	if !ok {
		return 0
	}
	return timeProvider.Since(start.(time.Time))
}

// QueryCount returns the SQL statements run so far for the request
func QueryCount(c *gin.Context) int64 {
	return database.QueryCounterFrom(c.Request.Context()).Count()
}
