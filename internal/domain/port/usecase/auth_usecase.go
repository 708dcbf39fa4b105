package usecase

import (
	"context"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
)

// AuthUseCase defines login session operations
type AuthUseCase interface {
	// Login checks credentials and opens a session
	Login(ctx context.Context, login, password string) (*entity.Profile, error)

	// Logout closes the session. Unknown tokens are ignored.
	Logout(ctx context.Context, token string) error

	// Authenticate resolves a token to the profile of its user
	Authenticate(ctx context.Context, token string) (*entity.Profile, error)

	// Impersonate builds a profile for a user without a session, used when
	// security is switched off
	Impersonate(ctx context.Context, userID uint64) (*entity.Profile, error)

	// PurgeExpired removes expired sessions
	PurgeExpired(ctx context.Context) (int64, error)
}
