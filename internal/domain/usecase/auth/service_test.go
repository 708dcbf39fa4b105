package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/smores-api/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/smores-api/mocks/port/persistence"
)

type fixture struct {
	users   *persistencemocks.MockUserRepository
	tokens  *persistencemocks.MockTokenRepository
	secrets *coremocks.MockSecretGenerator
	clock   *coremocks.MockTimeProvider
	logger  *coremocks.MockLogger
	service *Service
}

var fixedTime = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		users:   persistencemocks.NewMockUserRepository(t),
		tokens:  persistencemocks.NewMockTokenRepository(t),
		secrets: coremocks.NewMockSecretGenerator(t),
		clock:   coremocks.NewMockTimeProvider(t),
		logger:  coremocks.NewMockLogger(t),
	}
	f.clock.EXPECT().Now().Return(fixedTime).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.service = NewService(f.users, f.tokens, NewPasswordHasher(bcrypt.MinCost), f.secrets, f.clock, f.logger, 2*time.Hour)
	return f
}

func bcryptUser(t *testing.T, password string) *entity.User {
	hash, err := NewPasswordHasher(bcrypt.MinCost).Hash(password)
	require.NoError(t, err)
	return &entity.User{
		ID:           7,
		FirstName:    "Camp",
		LastName:     "Director",
		Email:        "director@smores.camp",
		PasswordHash: hash,
		Status:       entity.UserStatusActive,
		UserType:     entity.UserTypeEmployee,
	}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("should open a session for valid credentials", func(t *testing.T) {
		f := newFixture(t)
		user := bcryptUser(t, "marshmallow")

		f.users.EXPECT().FindActiveByLogin(ctx, "director@smores.camp").Return(user, nil).Once()
		f.secrets.EXPECT().Token().Return("tok-123").Once()
		f.tokens.EXPECT().Create(ctx, mock.MatchedBy(func(token *entity.AuthToken) bool {
			return token.Token == "tok-123" &&
				token.UserID == 7 &&
				token.ExpiresAt.Equal(fixedTime.Add(2*time.Hour))
		})).Return(nil).Once()

		profile, err := f.service.Login(ctx, " director@smores.camp ", "marshmallow")

		require.NoError(t, err)
		assert.Equal(t, "tok-123", profile.Token)
		assert.Equal(t, uint64(7), profile.UserID)
		assert.Equal(t, entity.UserTypeEmployee, profile.UserType)
		assert.Equal(t, fixedTime.Add(2*time.Hour), profile.ExpiresOn)
	})

	t.Run("should upgrade a legacy hash after login", func(t *testing.T) {
		f := newFixture(t)
		user := &entity.User{ID: 8, Salt: "abc", PasswordHash: LegacyHash("abc", "graham"), Status: entity.UserStatusActive, UserType: entity.UserTypeOwner}

		f.users.EXPECT().FindActiveByLogin(ctx, "owner").Return(user, nil).Once()
		f.secrets.EXPECT().Salt().Return("new-salt").Once()
		f.users.EXPECT().UpdatePassword(ctx, uint64(8), mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("graham")) == nil
		}), "new-salt").Return(nil).Once()
		f.secrets.EXPECT().Token().Return("tok-8").Once()
		f.tokens.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

		profile, err := f.service.Login(ctx, "owner", "graham")

		require.NoError(t, err)
		assert.Equal(t, "tok-8", profile.Token)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindActiveByLogin(ctx, "director@smores.camp").Return(bcryptUser(t, "marshmallow"), nil).Once()

		profile, err := f.service.Login(ctx, "director@smores.camp", "chocolate")

		assert.Nil(t, profile)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("should hide unknown users behind invalid credentials", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindActiveByLogin(ctx, "ghost").Return(nil, errs.ErrNotFound).Once()

		_, err := f.service.Login(ctx, "ghost", "boo")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("should refuse a login shared by several users", func(t *testing.T) {
		f := newFixture(t)
		ambiguous := fmt.Errorf("find user by login: %w", errs.ErrAmbiguousLogin)
		f.users.EXPECT().FindActiveByLogin(ctx, "sam").Return(nil, ambiguous).Once()

		_, err := f.service.Login(ctx, "sam", "s3cret")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		f.tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should reject empty input without a lookup", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Login(ctx, "  ", "x")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

		_, err = f.service.Login(ctx, "someone", "")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("should surface storage failures", func(t *testing.T) {
		f := newFixture(t)
		dbErr := errors.New("connection reset")
		f.users.EXPECT().FindActiveByLogin(ctx, "a").Return(nil, dbErr).Once()

		_, err := f.service.Login(ctx, "a", "b")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve a live session", func(t *testing.T) {
		f := newFixture(t)
		session := &entity.AuthToken{Token: "tok", UserID: 7, ExpiresAt: fixedTime.Add(time.Minute)}

		f.tokens.EXPECT().Get(ctx, "tok").Return(session, nil).Once()
		f.users.EXPECT().GetByID(ctx, uint64(7)).Return(bcryptUser(t, "x"), nil).Once()

		profile, err := f.service.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, "tok", profile.Token)
		assert.Equal(t, "director@smores.camp", profile.Email)
	})

	t.Run("should delete and reject an expired session", func(t *testing.T) {
		f := newFixture(t)
		session := &entity.AuthToken{Token: "old", UserID: 7, ExpiresAt: fixedTime}

		f.tokens.EXPECT().Get(ctx, "old").Return(session, nil).Once()
		f.tokens.EXPECT().Delete(ctx, "old").Return(nil).Once()

		_, err := f.service.Authenticate(ctx, "old")

		assert.ErrorIs(t, err, errs.ErrTokenExpired)
		assert.Equal(t, int64(errs.CodeExpiredToken), errs.ErrorCode(err))
	})

	t.Run("should reject unknown tokens", func(t *testing.T) {
		f := newFixture(t)
		f.tokens.EXPECT().Get(ctx, "nope").Return(nil, errs.ErrNotFound).Once()

		_, err := f.service.Authenticate(ctx, "nope")

		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("should reject inactive users", func(t *testing.T) {
		f := newFixture(t)
		user := bcryptUser(t, "x")
		user.Status = entity.UserStatusInactive

		f.tokens.EXPECT().Get(ctx, "tok").Return(&entity.AuthToken{Token: "tok", UserID: 7, ExpiresAt: fixedTime.Add(time.Hour)}, nil).Once()
		f.users.EXPECT().GetByID(ctx, uint64(7)).Return(user, nil).Once()

		_, err := f.service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("should require a token", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Authenticate(ctx, "")

		assert.ErrorIs(t, err, errs.ErrMissingToken)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.tokens.EXPECT().Delete(ctx, "tok").Return(nil).Once()
	require.NoError(t, f.service.Logout(ctx, "tok"))

	assert.ErrorIs(t, f.service.Logout(ctx, ""), errs.ErrMissingToken)
}

func TestService_Impersonate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.users.EXPECT().GetByID(ctx, uint64(7)).Return(bcryptUser(t, "x"), nil).Once()

	profile, err := f.service.Impersonate(ctx, 7)

	require.NoError(t, err)
	assert.Empty(t, profile.Token)
	assert.Equal(t, uint64(7), profile.UserID)
}

func TestService_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.tokens.EXPECT().DeleteExpired(ctx, fixedTime).Return(int64(3), nil).Once()

	removed, err := f.service.PurgeExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
