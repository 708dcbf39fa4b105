package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
)

// index is one named CREATE INDEX statement
type index struct {
	name string
	sql  string
}

var indexes = []index{
	// login matches either column, so each must identify one user
	{"idx_users_email_unique", `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_unique ON users (LOWER(email)) WHERE email IS NOT NULL AND email <> ''`},
	{"idx_users_user_name_unique", `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_user_name_unique ON users (LOWER(user_name)) WHERE user_name IS NOT NULL AND user_name <> ''`},
	{"idx_users_active_type", `CREATE INDEX IF NOT EXISTS idx_users_active_type ON users (user_type) WHERE status = 'Active'`},
	{"idx_accounts_lower_name", `CREATE INDEX IF NOT EXISTS idx_accounts_lower_name ON accounts (LOWER(name))`},
	{"idx_events_start_date", `CREATE INDEX IF NOT EXISTS idx_events_start_date ON events (start_date, end_date)`},
	{"idx_payments_account_created", `CREATE INDEX IF NOT EXISTS idx_payments_account_created ON payments (account_id, created_at)`},
	{"idx_payments_unrefunded", `CREATE INDEX IF NOT EXISTS idx_payments_unrefunded ON payments (account_id) WHERE refunded = false`},
	{"idx_payments_created_at_brin", `CREATE INDEX IF NOT EXISTS idx_payments_created_at_brin ON payments USING BRIN (created_at) WITH (pages_per_range = 32)`},
	{"idx_cards_account_active", `CREATE INDEX IF NOT EXISTS idx_cards_account_active ON cards (account_id) WHERE active = true`},
}

// IndexManager creates the indexes search and login queries rely on
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates every index that does not exist yet
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating PostgreSQL indexes", map[string]any{"count": len(indexes)})

	db := m.db.WithContext(ctx)
	for _, idx := range indexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}

// ApplyPerformanceTweaks tunes storage of the append heavy ledger. Failures
// only warn.
func (m *IndexManager) ApplyPerformanceTweaks(ctx context.Context) error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)
	tweaks := []string{
		`ALTER TABLE payments SET (fillfactor = 90)`,
		`ALTER TABLE payments ALTER COLUMN account_id SET STATISTICS 1000`,
		`ALTER TABLE auth_tokens SET (autovacuum_vacuum_scale_factor = 0.05)`,
	}
	for _, stmt := range tweaks {
		if err := db.Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
	return nil
}
