package database

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/smores-api/mocks/port/core"
)

type recordingObserver struct {
	mu      sync.Mutex
	samples []sql.DBStats
}

func (o *recordingObserver) ObservePool(stats sql.DBStats) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.samples = append(o.samples, stats)
}

func (o *recordingObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.samples)
}

func TestPoolMonitorCollect(t *testing.T) {
	stats := sql.DBStats{MaxOpenConnections: 10, OpenConnections: 4, InUse: 2}
	observer := &recordingObserver{}
	monitor := NewPoolMonitor(func() sql.DBStats { return stats }, observer, logger.NewNoopLogger())

	monitor.Collect()

	assert.Equal(t, 1, observer.count())
	assert.Equal(t, stats, monitor.Last())
}

func TestPoolMonitorWarnsWhenNearlyExhausted(t *testing.T) {
	core := coremocks.NewMockLogger(t)
	core.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()

	stats := sql.DBStats{MaxOpenConnections: 10, InUse: 9}
	NewPoolMonitor(func() sql.DBStats { return stats }, nil, core).Collect()
}

func TestPoolMonitorStartStop(t *testing.T) {
	observer := &recordingObserver{}
	monitor := NewPoolMonitor(func() sql.DBStats { return sql.DBStats{} }, observer, logger.NewNoopLogger())

	monitor.Start(time.Millisecond)
	assert.Eventually(t, func() bool { return observer.count() >= 2 }, time.Second, time.Millisecond)

	monitor.Stop()
	monitor.Stop()
}
