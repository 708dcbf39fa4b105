package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{MaxRetries: attempts, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestRetryOnTransientError(t *testing.T) {
	t.Run("retries transient errors until success", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
			calls++
			if calls < 3 {
				return errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
			}
			return nil
		}, logger.NewNoopLogger())

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		calls := 0
		permanent := errors.New("password authentication failed")
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			return permanent
		}, logger.NewNoopLogger())

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(2), func() error {
			calls++
			return errors.New("deadlock detected")
		}, logger.NewNoopLogger())

		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		cfg := RetryConfig{MaxRetries: 3, RetryInterval: time.Hour, MaxInterval: time.Hour}

		err := RetryOnTransientError(ctx, cfg, func() error {
			return errors.New("i/o timeout")
		}, logger.NewNoopLogger())

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(6, cfg))

	cfg.JitterFactor = 0.5
	backoff := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, backoff, 100*time.Millisecond)
	assert.LessOrEqual(t, backoff, 150*time.Millisecond)
}
