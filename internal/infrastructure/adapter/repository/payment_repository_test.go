package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/time"
)

func TestCentsConversion(t *testing.T) {
	assert.Equal(t, 12.34, centsToDollars(1234))
	assert.Equal(t, int64(1234), dollarsToCents(12.34))
	assert.Equal(t, int64(-500), dollarsToCents(-5))
	assert.Equal(t, int64(1), dollarsToCents(0.005))
}

func TestPaymentRepositoryCreate(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewPaymentRepository(db, timeprovider.FixedTimeProvider{At: testNow}, logger.NewNoopLogger())

	mock.ExpectQuery(`INSERT INTO "payments" .* RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(21)))

	payment := &entity.Payment{AccountID: 4, Amount: 12550, Mode: entity.PaymentModeCash}
	require.NoError(t, repo.Create(context.Background(), payment))
	assert.Equal(t, uint64(21), payment.ID)
	assert.True(t, payment.CreatedAt.Equal(testNow))
}

func TestPaymentRepositoryGetByID(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewPaymentRepository(db, timeprovider.FixedTimeProvider{At: testNow}, logger.NewNoopLogger())

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE "payments"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "amount", "mode", "external_id", "refunded"}).
			AddRow(int64(21), int64(4), "125.50", "credit", "ch_1", false))

	payment, err := repo.GetByID(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, int64(12550), payment.Amount)
	assert.Equal(t, entity.PaymentModeCredit, payment.Mode)
	assert.Nil(t, payment.CardID)
}

func TestPaymentRepositoryMarkRefunded(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewPaymentRepository(db, timeprovider.FixedTimeProvider{At: testNow}, logger.NewNoopLogger())

	mock.ExpectExec(`UPDATE "payments" SET "refunded"=\$1,"updated_at"=\$2 WHERE id = \$3 AND refunded = \$4`).
		WithArgs(true, testNow, 21, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkRefunded(context.Background(), 21))

	mock.ExpectExec(`UPDATE "payments"`).WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.MarkRefunded(context.Background(), 21)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCardRepository(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewCardRepository(db, logger.NewNoopLogger())

	mock.ExpectQuery(`INSERT INTO "cards" .* RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "active"}).AddRow(int64(5), true))

	card := &entity.Card{AccountID: 4, ExternalID: "card_1", NameOnCard: "Ann Lee", LastFour: "4242", Active: true, CreatedAt: testNow}
	require.NoError(t, repo.Create(context.Background(), card))
	assert.Equal(t, uint64(5), card.ID)

	mock.ExpectExec(`DELETE FROM "cards" WHERE "cards"."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 5), errs.ErrNotFound)
}

func TestCheckRepositoryCreate(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewCheckRepository(db, timeprovider.FixedTimeProvider{At: testNow})

	mock.ExpectQuery(`INSERT INTO "checks" .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))

	check := &entity.Check{AccountID: 4, Number: "1001", Date: testNow, AccountNumber: "123", RoutingNumber: "123456789", NameOnCheck: "Ann Lee", Amount: 5000}
	require.NoError(t, repo.Create(context.Background(), check))
	assert.Equal(t, uint64(8), check.ID)
}
