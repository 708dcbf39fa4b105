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

func TestAccountRepositoryGetByID(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewAccountRepository(db, timeprovider.FixedTimeProvider{At: testNow}, logger.NewNoopLogger())

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE "accounts"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "external_id", "active"}).
			AddRow(int64(4), "Lee", "cus_123456", true))

	account, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "cus_123456", account.ExternalID)
	assert.True(t, account.HasCustomer())
}

func TestAccountRepositorySetExternalID(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewAccountRepository(db, timeprovider.FixedTimeProvider{At: testNow}, logger.NewNoopLogger())

	mock.ExpectExec(`UPDATE "accounts" SET "external_id"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("cus_999999", testNow, 4).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetExternalID(context.Background(), 4, "cus_999999")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAccountRepositoryMembers(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewAccountRepository(db, timeprovider.FixedTimeProvider{At: testNow}, logger.NewNoopLogger())

	mock.ExpectQuery(`SELECT user_id FROM owners WHERE account_id = \$1 UNION SELECT user_id FROM attendees WHERE account_id = \$2`).
		WithArgs(4, 4).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(11)).AddRow(int64(12)))

	ids, err := repo.MemberUserIDs(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []uint64{11, 12}, ids)

	mock.ExpectExec(`DELETE FROM "owners" WHERE user_id IN \(\$1,\$2\)`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "attendees" WHERE user_id IN \(\$1,\$2\)`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "employees" WHERE user_id IN \(\$1,\$2\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "users" WHERE id IN \(\$1,\$2\)`).WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteUsers(context.Background(), ids))
	require.NoError(t, repo.DeleteUsers(context.Background(), nil))
}

func TestAccountRepositoryHasPayments(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewAccountRepository(db, timeprovider.FixedTimeProvider{At: testNow}, logger.NewNoopLogger())

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM payments WHERE account_id = \$1\)`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	paid, err := repo.HasPayments(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, paid)
}

func TestCustomFieldRepository(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewCustomFieldRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "custom_fields" WHERE table_name = \$1 AND active = \$2 ORDER BY id`).
		WithArgs("accounts", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "table_name", "field_type", "required", "active"}).
			AddRow(int64(1), "allergies", "accounts", "text", false, true))

	fields, err := repo.ActiveFields(context.Background(), "accounts")
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "accounts", fields[0].TableName)

	mock.ExpectQuery(`INSERT INTO "custom_account_fields" .* ON CONFLICT \("account_id","custom_field_id"\) DO UPDATE SET "value"="excluded"."value" RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	value := &entity.CustomFieldValue{AccountID: 4, CustomFieldID: 1, Value: "peanuts"}
	require.NoError(t, repo.UpsertValue(context.Background(), value))
	assert.Equal(t, uint64(7), value.ID)
}

func TestSettingRepository(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewSettingRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "settings" WHERE name = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "value"}).AddRow(int64(1), entity.SettingStripeAPIKey, "sk_test_1"))

	value, err := repo.GetValue(context.Background(), entity.SettingStripeAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "sk_test_1", value)

	mock.ExpectQuery(`INSERT INTO "settings" .* ON CONFLICT \("name"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	require.NoError(t, repo.Ensure(context.Background(), &entity.Setting{Name: entity.SettingStripeAPIKey}))
}
