package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/persistence"
)

// DefaultTokenTTL is the session lifetime used when none is configured
const DefaultTokenTTL = 24 * time.Hour

// Service implements usecase.AuthUseCase
type Service struct {
	users        persistence.UserRepository
	tokens       persistence.TokenRepository
	hasher       *PasswordHasher
	secrets      coreport.SecretGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	tokenTTL     time.Duration
}

// NewService creates the authentication service
func NewService(
	users persistence.UserRepository,
	tokens persistence.TokenRepository,
	hasher *PasswordHasher,
	secrets coreport.SecretGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	tokenTTL time.Duration,
) *Service {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		users:        users,
		tokens:       tokens,
		hasher:       hasher,
		secrets:      secrets,
		timeProvider: timeProvider,
		logger:       logger,
		tokenTTL:     tokenTTL,
	}
}

// Login checks credentials and opens a session
func (s *Service) Login(ctx context.Context, login, password string) (*entity.Profile, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := s.users.FindActiveByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown user", map[string]any{"login": login})
			return nil, errs.ErrInvalidCredentials
		}
		if errors.Is(err, errs.ErrAmbiguousLogin) {
			s.logger.Warn("Login attempt matches several users", map[string]any{"login": login})
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, legacy := s.hasher.Verify(user, password)
	if !ok {
		s.logger.Warn("Login attempt with wrong password", map[string]any{"user_id": user.ID})
		return nil, errs.ErrInvalidCredentials
	}

	if legacy {
		s.upgradeHash(ctx, user, password)
	}

	now := s.timeProvider.Now()
	token := &entity.AuthToken{
		Token:     s.secrets.Token(),
		UserID:    user.ID,
		UserType:  user.UserType,
		ExpiresAt: now.Add(s.tokenTTL),
		CreatedAt: now,
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		s.logger.Error("Failed to store session", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id":   user.ID,
		"user_type": string(user.UserType),
	})

	return entity.NewProfile(user, token), nil
}

// upgradeHash replaces a legacy sha512 hash with bcrypt. Failure only costs
// another upgrade attempt at the next login.
func (s *Service) upgradeHash(ctx context.Context, user *entity.User, password string) {
	hash, err := s.hasher.Hash(password)
	if err == nil {
		err = s.users.UpdatePassword(ctx, user.ID, hash, s.secrets.Salt())
	}
	if err != nil {
		s.logger.Warn("Failed to upgrade legacy password hash", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}
}

// Logout closes the session
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return errs.ErrMissingToken
	}
	if err := s.tokens.Delete(ctx, token); err != nil {
		return err
	}
	s.logger.Debug("Session closed", nil)
	return nil
}

// Authenticate resolves a token to the profile of its user
func (s *Service) Authenticate(ctx context.Context, token string) (*entity.Profile, error) {
	if token == "" {
		return nil, errs.ErrMissingToken
	}

	session, err := s.tokens.Get(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrInvalidToken
		}
		return nil, err
	}

	if session.IsExpired(s.timeProvider.Now()) {
		if err := s.tokens.Delete(ctx, token); err != nil {
			s.logger.Warn("Failed to delete expired session", map[string]any{
				"user_id": session.UserID,
				"error":   err.Error(),
			})
		}
		return nil, errs.ErrTokenExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive() {
		return nil, errs.ErrInvalidToken
	}

	return entity.NewProfile(user, session), nil
}

// Impersonate builds a profile for userID without a session
func (s *Service) Impersonate(ctx context.Context, userID uint64) (*entity.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return entity.NewProfile(user, nil), nil
}

// PurgeExpired removes expired sessions
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	removed, err := s.tokens.DeleteExpired(ctx, s.timeProvider.Now())
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Info("Expired sessions purged", map[string]any{"count": removed})
	}
	return removed, nil
}
