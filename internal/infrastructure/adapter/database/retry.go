package database

import (
	"context"
	"math/rand/v2"
	"time"

	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/repository"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

var classifier = repository.NewErrorClassifier()

// RetryOnTransientError runs operation until it succeeds, fails with a
// non-transient error, runs out of attempts or ctx is done
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	logger coreport.Logger,
) error {
	var err error
	attempts := max(config.MaxRetries, 1)

	for attempt := 0; attempt < attempts; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}
		if !classifier.IsTransient(err) {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts": attempt + 1,
				"error":    ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": attempts,
		"error":    err.Error(),
	})
	return err
}

// calculateBackoffWithJitter doubles the interval per attempt up to MaxInterval
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if config.MaxInterval > 0 && (backoff > config.MaxInterval || backoff <= 0) {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}
	return backoff
}
