package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/repository"
)

type txKey struct{}

// UnitOfWork hands out repositories bound to the transaction carried by a context
type UnitOfWork struct {
	db           *gorm.DB
	catalog      *search.Catalog
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, catalog *search.Catalog, logger coreport.Logger, timeProvider coreport.TimeProvider) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		catalog:      catalog,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return ctx, fmt.Errorf("transaction already in progress")
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", repository.MapError(tx.Error, "begin"))
	}

	u.logger.Debug("Began database transaction", nil)
	return context.WithValue(ctx, txKey{}, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", repository.MapError(err, "commit"))
	}
	u.logger.Debug("Committed database transaction", nil)
	return nil
}

// Rollback rolls back the current transaction. Rolling back a finished
// transaction is only logged.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.logger.Debug("Rolled back database transaction", nil)
	return nil
}

// GetResourceRepository returns a resource repository in the current transaction
func (u *UnitOfWork) GetResourceRepository(ctx context.Context) persistence.ResourceRepository {
	return repository.NewResourceRepository(u.dbFromContext(ctx), u.catalog, u.timeProvider, u.logger)
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.dbFromContext(ctx), u.timeProvider, u.logger)
}

// GetAccountRepository returns an account repository in the current transaction
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.dbFromContext(ctx), u.timeProvider, u.logger)
}

// GetCustomFieldRepository returns a custom field repository in the current transaction
func (u *UnitOfWork) GetCustomFieldRepository(ctx context.Context) persistence.CustomFieldRepository {
	return repository.NewCustomFieldRepository(u.dbFromContext(ctx))
}

// GetCardRepository returns a card repository in the current transaction
func (u *UnitOfWork) GetCardRepository(ctx context.Context) persistence.CardRepository {
	return repository.NewCardRepository(u.dbFromContext(ctx), u.logger)
}

// GetCheckRepository returns a check repository in the current transaction
func (u *UnitOfWork) GetCheckRepository(ctx context.Context) persistence.CheckRepository {
	return repository.NewCheckRepository(u.dbFromContext(ctx), u.timeProvider)
}

// GetPaymentRepository returns a payment repository in the current transaction
func (u *UnitOfWork) GetPaymentRepository(ctx context.Context) persistence.PaymentRepository {
	return repository.NewPaymentRepository(u.dbFromContext(ctx), u.timeProvider, u.logger)
}

// dbFromContext returns the transaction carried by ctx or the pool
func (u *UnitOfWork) dbFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
