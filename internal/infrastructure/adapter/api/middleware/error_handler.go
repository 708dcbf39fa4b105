package middleware

import (
	"net/http"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and renders the last error attached to
// the context as an error envelope
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader("X-Request-ID"),
					"user_agent": c.Request.UserAgent(),
				})

				apiErr := errs.FromError(errs.ErrInternalServer)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(apiErr))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		apiErr := errs.FromError(c.Errors.Last().Err)

		fields := apiErr.LogFields()
		fields["path"] = c.Request.URL.Path
		fields["method"] = c.Request.Method
		if apiErr.Status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields)
		} else {
			logger.Debug("Request rejected", fields)
		}

		c.AbortWithStatusJSON(apiErr.Status, dto.NewErrorResponse(apiErr))
	}
}

// Abort attaches err to the context and stops the handler chain
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
