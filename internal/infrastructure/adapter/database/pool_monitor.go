package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
)

// PoolObserver receives connection pool statistics
type PoolObserver interface {
	ObservePool(stats sql.DBStats)
}

// PoolMonitor periodically samples the connection pool
type PoolMonitor struct {
	stats    func() sql.DBStats
	observer PoolObserver
	logger   coreport.Logger

	mutex    sync.RWMutex
	last     sql.DBStats
	stopOnce sync.Once
	stopChan chan struct{}
}

// NewPoolMonitor creates a monitor reading statistics from stats
func NewPoolMonitor(stats func() sql.DBStats, observer PoolObserver, logger coreport.Logger) *PoolMonitor {
	return &PoolMonitor{
		stats:    stats,
		observer: observer,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start samples once, then every interval until Stop
func (m *PoolMonitor) Start(interval time.Duration) {
	m.Collect()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Collect()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop ends the sampling goroutine
func (m *PoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// Last returns the most recent sample
func (m *PoolMonitor) Last() sql.DBStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.last
}

// Collect takes one sample, publishes it and warns when the pool is nearly exhausted
func (m *PoolMonitor) Collect() {
	stats := m.stats()

	m.mutex.Lock()
	m.last = stats
	m.mutex.Unlock()

	if m.observer != nil {
		m.observer.ObservePool(stats)
	}

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
