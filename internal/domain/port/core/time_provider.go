package core

import "time"

// TimeProvider abstracts the clock so expiry and card checks are testable
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// SecretGenerator produces opaque random values for session tokens and password salts
type SecretGenerator interface {
	Token() string
	Salt() string
}
