package handler

import (
	"context"
	"database/sql"
	"net/http"

	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// HealthChecker reports on the database connection
type HealthChecker interface {
	Ping(ctx context.Context) error
	Stats() sql.DBStats
}

// HealthHandler reports service liveness
type HealthHandler struct {
	checker HealthChecker
	logger  coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{checker: checker, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	stats := h.checker.Stats()
	pool := gin.H{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"max_open":         stats.MaxOpenConnections,
		"wait_count":       stats.WaitCount,
		"wait_duration_ms": stats.WaitDuration.Milliseconds(),
	}

	if err := h.checker.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unavailable",
			"database": gin.H{"status": "down", "pool": pool},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": gin.H{"status": "up", "pool": pool},
	})
}
