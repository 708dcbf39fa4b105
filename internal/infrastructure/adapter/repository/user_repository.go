package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func userToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		UserName:     m.UserName,
		PasswordHash: m.Password,
		Salt:         m.Salt,
		Status:       m.Status,
		UserType:     entity.UserType(m.UserType),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, MapError(err, fmt.Sprintf("get user %d", id))
	}
	return userToEntity(&m), nil
}

// FindActiveByLogin retrieves the one active user whose email or user name
// matches login, ignoring case. A login matching several users is refused.
func (r *UserRepository) FindActiveByLogin(ctx context.Context, login string) (*entity.User, error) {
	login = strings.ToLower(strings.TrimSpace(login))

	var matches []model.User
	err := r.db.WithContext(ctx).
		Where("(LOWER(email) = ? OR LOWER(user_name) = ?) AND status = ?", login, login, entity.UserStatusActive).
		Order("id").
		Limit(2).
		Find(&matches).Error
	if err != nil {
		return nil, MapError(err, "find user by login")
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("find user by login: %w", errs.ErrNotFound)
	case 1:
		return userToEntity(&matches[0]), nil
	default:
		r.logger.Warn("Login matches more than one active user", map[string]any{
			"user_ids": []uint64{matches[0].ID, matches[1].ID},
		})
		return nil, fmt.Errorf("find user by login: %w", errs.ErrAmbiguousLogin)
	}
}

// UpdatePassword replaces the stored password hash and salt
func (r *UserRepository) UpdatePassword(ctx context.Context, id uint64, hash, salt string) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password":   hash,
			"salt":       salt,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return MapError(result.Error, "update password")
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, errs.ErrNotFound)
	}

	r.logger.Info("User password hash updated", map[string]any{
		"user_id": id,
	})
	return nil
}

// TokenRepository implements persistence.TokenRepository using GORM
type TokenRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTokenRepository creates a new TokenRepository instance
func NewTokenRepository(db *gorm.DB, logger coreport.Logger) *TokenRepository {
	return &TokenRepository{db: db, logger: logger}
}

// Create stores a new session token
func (r *TokenRepository) Create(ctx context.Context, token *entity.AuthToken) error {
	m := model.AuthToken{
		Token:     token.Token,
		UserID:    token.UserID,
		UserType:  string(token.UserType),
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return MapError(err, "create token")
	}
	return nil
}

// Get retrieves a session by token value
func (r *TokenRepository) Get(ctx context.Context, token string) (*entity.AuthToken, error) {
	var m model.AuthToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&m).Error; err != nil {
		return nil, MapError(err, "get token")
	}
	return &entity.AuthToken{
		Token:     m.Token,
		UserID:    m.UserID,
		UserType:  entity.UserType(m.UserType),
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}, nil
}

// Delete removes a session
func (r *TokenRepository) Delete(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.AuthToken{}).Error; err != nil {
		return MapError(err, "delete token")
	}
	return nil
}

// DeleteExpired removes every session that expired at or before now
func (r *TokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.AuthToken{})
	if result.Error != nil {
		return 0, MapError(result.Error, "purge tokens")
	}
	if result.RowsAffected > 0 {
		r.logger.Info("Expired tokens purged", map[string]any{
			"count": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
