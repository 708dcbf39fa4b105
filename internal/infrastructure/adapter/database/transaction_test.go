package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smores-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/time"
)

func newTestUnitOfWork(t *testing.T) (*UnitOfWork, sqlmock.Sqlmock) {
	db, mock := dbtest.NewMockDB(t)
	clock := timeprovider.FixedTimeProvider{}
	return NewUnitOfWork(db, search.NewCatalog(), logger.NewNoopLogger(), clock), mock
}

func TestUnitOfWorkCommit(t *testing.T) {
	uow, mock := newTestUnitOfWork(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cards"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := persistence.RunInTransaction(context.Background(), uow, func(txCtx context.Context) error {
		return uow.GetCardRepository(txCtx).Delete(txCtx, 3)
	})
	require.NoError(t, err)
}

func TestUnitOfWorkRollback(t *testing.T) {
	uow, mock := newTestUnitOfWork(t)
	failure := errors.New("gateway down")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := persistence.RunInTransaction(context.Background(), uow, func(txCtx context.Context) error {
		return failure
	})
	assert.ErrorIs(t, err, failure)
}

func TestUnitOfWorkRollbackAfterCommit(t *testing.T) {
	uow, mock := newTestUnitOfWork(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, uow.Commit(txCtx))

	assert.NoError(t, uow.Rollback(txCtx))
}

func TestUnitOfWorkWithoutTransaction(t *testing.T) {
	uow, _ := newTestUnitOfWork(t)

	assert.Error(t, uow.Commit(context.Background()))
	assert.Error(t, uow.Rollback(context.Background()))
}

func TestUnitOfWorkNestedBegin(t *testing.T) {
	uow, mock := newTestUnitOfWork(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)

	_, err = uow.Begin(txCtx)
	assert.Error(t, err)
	require.NoError(t, uow.Rollback(txCtx))
}

func TestUnitOfWorkRepositories(t *testing.T) {
	uow, _ := newTestUnitOfWork(t)
	ctx := context.Background()

	assert.NotNil(t, uow.GetResourceRepository(ctx))
	assert.NotNil(t, uow.GetUserRepository(ctx))
	assert.NotNil(t, uow.GetAccountRepository(ctx))
	assert.NotNil(t, uow.GetCustomFieldRepository(ctx))
	assert.NotNil(t, uow.GetCardRepository(ctx))
	assert.NotNil(t, uow.GetCheckRepository(ctx))
	assert.NotNil(t, uow.GetPaymentRepository(ctx))
}
