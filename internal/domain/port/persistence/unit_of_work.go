package persistence

import (
	"context"
	"errors"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetResourceRepository returns a resource repository bound to the current transaction
	GetResourceRepository(ctx context.Context) ResourceRepository

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetCustomFieldRepository returns a custom field repository bound to the current transaction
	GetCustomFieldRepository(ctx context.Context) CustomFieldRepository

	// GetCardRepository returns a card repository bound to the current transaction
	GetCardRepository(ctx context.Context) CardRepository

	// GetCheckRepository returns a check repository bound to the current transaction
	GetCheckRepository(ctx context.Context) CheckRepository

	// GetPaymentRepository returns a payment repository bound to the current transaction
	GetPaymentRepository(ctx context.Context) PaymentRepository
}

// RunInTransaction runs fn inside a transaction taken from uow. The
// transaction is committed when fn succeeds and rolled back otherwise.
func RunInTransaction(ctx context.Context, uow UnitOfWork, fn func(txCtx context.Context) error) error {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback(txCtx)
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := uow.Rollback(txCtx); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return uow.Commit(txCtx)
}
