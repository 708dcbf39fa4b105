package time

import (
	"time"

	"github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time in UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// FixedTimeProvider always returns the same instant. Used by the CLI seed and tests.
type FixedTimeProvider struct {
	At time.Time
}

// Now returns the fixed instant
func (p FixedTimeProvider) Now() time.Time {
	return p.At
}

// Since returns the duration between the fixed instant and t
func (p FixedTimeProvider) Since(t time.Time) time.Duration {
	return p.At.Sub(t)
}
