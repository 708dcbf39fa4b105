package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
)

// UserRepository defines the methods authentication needs on users
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindActiveByLogin retrieves an active user whose email or user name
	// matches login, ignoring case
	//
	// Possible errors:
	// - ErrNotFound: If no active user matches
	// - ErrDatabaseConnection: If database connection fails
	FindActiveByLogin(ctx context.Context, login string) (*entity.User, error)

	// UpdatePassword replaces the stored hash, typically to upgrade a legacy hash
	//
	// Possible errors:
	// - ErrNotFound: If user doesn't exist
	UpdatePassword(ctx context.Context, id uint64, hash, salt string) error
}

// TokenRepository stores login sessions
type TokenRepository interface {
	// Create stores a new session token
	Create(ctx context.Context, token *entity.AuthToken) error

	// Get retrieves a session by token value
	//
	// Possible errors:
	// - ErrNotFound: If the token is unknown
	Get(ctx context.Context, token string) (*entity.AuthToken, error)

	// Delete removes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes every session that expired before now and returns how many
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
