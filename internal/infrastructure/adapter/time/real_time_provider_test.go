package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	now := p.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, p.Since(now.Add(-time.Second)), time.Second)
}

func TestFixedTimeProvider(t *testing.T) {
	at := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	p := FixedTimeProvider{At: at}

	assert.Equal(t, at, p.Now())
	assert.Equal(t, time.Hour, p.Since(at.Add(-time.Hour)))
}
