package handler

import (
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Renderer writes envelopes. In debug mode the meta block also reports the
// request duration and the number of SQL statements run.
type Renderer struct {
	debug        bool
	timeProvider coreport.TimeProvider
}

// NewRenderer creates a renderer
func NewRenderer(debug bool, timeProvider coreport.TimeProvider) *Renderer {
	return &Renderer{debug: debug, timeProvider: timeProvider}
}

// Envelope writes env with status
func (r *Renderer) Envelope(c *gin.Context, status int, env dto.Envelope) {
	if r.debug {
		if meta, ok := env.Meta(); ok {
			elapsed := middleware.Stopwatch(c, r.timeProvider).Milliseconds()
			queries := middleware.QueryCount(c)
			meta.StopwatchMS = &elapsed
			meta.DBQueryCount = &queries
			env.SetMeta(meta)
		}
	}
	c.JSON(status, env)
}
