package migration

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/time"
)

var testNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func TestGetCurrentVersion(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	m := NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.FixedTimeProvider{At: testNow})

	mock.ExpectQuery(`SELECT \* FROM "migration_versions" ORDER BY applied_at desc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "version", "applied_at", "details"}))
	version, err := m.GetCurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Empty(t, version)

	mock.ExpectQuery(`SELECT \* FROM "migration_versions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "version", "applied_at", "details"}).
			AddRow(1, CurrentSchemaVersion, testNow, "Full schema migration"))
	version, err = m.GetCurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)
}

func TestGetCurrentVersionCanceled(t *testing.T) {
	db, _ := dbtest.NewMockDB(t)
	m := NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.FixedTimeProvider{At: testNow})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.GetCurrentVersion(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBaseMigrationsAddsMissingForeignKeys(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	m := NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.FixedTimeProvider{At: testNow})

	exists := func(fk foreignKey, found bool) {
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM pg_constraint WHERE conname = \$1\)`).
			WithArgs(fk.name()).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(found))
	}

	exists(foreignKeys[0], false)
	mock.ExpectExec(regexp.QuoteMeta(
		`ALTER TABLE "employees" ADD CONSTRAINT "fk_employees_user_id" FOREIGN KEY ("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
	)).WillReturnResult(sqlmock.NewResult(0, 0))
	for _, fk := range foreignKeys[1:] {
		exists(fk, true)
	}

	require.NoError(t, m.runBaseMigrations(context.Background()))
}

func TestPaymentAccountKeyRestrictsDelete(t *testing.T) {
	for _, fk := range foreignKeys {
		if fk.table == "payments" && fk.column == "account_id" {
			assert.Equal(t, "RESTRICT", fk.onDelete, "deleting an account must not drop its payments")
			return
		}
	}
	t.Fatal("payments.account_id has no foreign key")
}

func TestRunVersionedMigrationsUnknownVersion(t *testing.T) {
	db, _ := dbtest.NewMockDB(t)
	m := NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.FixedTimeProvider{At: testNow})

	err := m.runVersionedMigrations(context.Background(), "0.1.0")
	assert.ErrorContains(t, err, `no migration path from schema version "0.1.0"`)
}

func TestIndexManager(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	mgr := NewIndexManager(db, logger.NewNoopLogger())

	for range indexes {
		mock.ExpectExec(`CREATE (UNIQUE )?INDEX IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	require.NoError(t, mgr.CreateIndexes(context.Background()))

	mock.ExpectExec(`ALTER TABLE payments SET`).WillReturnError(errors.New("permission denied"))
	mock.ExpectExec(`ALTER TABLE payments ALTER COLUMN`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`ALTER TABLE auth_tokens SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.NoError(t, mgr.ApplyPerformanceTweaks(context.Background()))
}

func TestLoginColumnsAreUnique(t *testing.T) {
	unique := map[string]string{}
	for _, idx := range indexes {
		unique[idx.name] = idx.sql
	}

	assert.Contains(t, unique["idx_users_email_unique"], "CREATE UNIQUE INDEX")
	assert.Contains(t, unique["idx_users_email_unique"], "(LOWER(email))")
	assert.Contains(t, unique["idx_users_user_name_unique"], "CREATE UNIQUE INDEX")
	assert.Contains(t, unique["idx_users_user_name_unique"], "(LOWER(user_name))")
}

func TestIndexManagerStopsOnError(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	mgr := NewIndexManager(db, logger.NewNoopLogger())

	mock.ExpectExec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_unique`).WillReturnError(errors.New("relation \"users\" does not exist"))
	assert.Error(t, mgr.CreateIndexes(context.Background()))
}
