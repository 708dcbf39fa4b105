package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// foreignKey is a constraint AutoMigrate cannot express without association fields
type foreignKey struct {
	table     string
	column    string
	refTable  string
	refColumn string
	onDelete  string
}

func (fk foreignKey) name() string {
	return fmt.Sprintf("fk_%s_%s", fk.table, fk.column)
}

var foreignKeys = []foreignKey{
	{"employees", "user_id", "users", "id", "CASCADE"},
	{"owners", "user_id", "users", "id", "CASCADE"},
	{"owners", "account_id", "accounts", "id", "CASCADE"},
	{"attendees", "user_id", "users", "id", "CASCADE"},
	{"attendees", "account_id", "accounts", "id", "CASCADE"},
	{"auth_tokens", "user_id", "users", "id", "CASCADE"},
	{"custom_account_fields", "account_id", "accounts", "id", "CASCADE"},
	{"custom_account_fields", "custom_field_id", "custom_fields", "id", "CASCADE"},
	{"cabins", "location_id", "locations", "id", "SET NULL"},
	{"events", "location_id", "locations", "id", "SET NULL"},
	{"events", "program_id", "programs", "id", "SET NULL"},
	{"events", "session_id", "sessions", "id", "SET NULL"},
	{"event_cabins", "event_id", "events", "id", "CASCADE"},
	{"event_cabins", "cabin_id", "cabins", "id", "CASCADE"},
	{"cards", "account_id", "accounts", "id", "CASCADE"},
	{"checks", "account_id", "accounts", "id", "CASCADE"},
	{"payments", "account_id", "accounts", "id", "RESTRICT"},
	{"payments", "card_id", "cards", "id", "SET NULL"},
	{"payments", "check_id", "checks", "id", "SET NULL"},
	{"payments", "refund_of_id", "payments", "id", "SET NULL"},
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	indexMgr     *IndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		indexMgr:     NewIndexManager(db, logger),
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	db := m.db.WithContext(ctx)
	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{"error": err.Error()})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{"error": err.Error()})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"auto-migrate models", m.autoMigrateModels},
		{"versioned migrations", func(ctx context.Context) error { return m.runVersionedMigrations(ctx, currentVersion) }},
		{"indexes", m.indexMgr.CreateIndexes},
		{"performance tweaks", m.indexMgr.ApplyPerformanceTweaks},
	}
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"step":            step.name,
				"error":           err.Error(),
				"current_version": currentVersion,
			})
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the latest applied version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}
	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// autoMigrateModels creates or alters every table
func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)
	return m.db.WithContext(ctx).AutoMigrate(model.All()...)
}

// runVersionedMigrations runs migrations specific to version transitions
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		return m.runBaseMigrations(ctx)
	case "1.0.0":
		return NewRestrictPaymentAccounts(m.db, m.logger).Run(ctx)
	default:
		return fmt.Errorf("no migration path from schema version %q", currentVersion)
	}
}

// runBaseMigrations adds the foreign keys of a fresh database
func (m *MigrationManager) runBaseMigrations(ctx context.Context) error {
	m.logger.Info("Running base migrations", map[string]any{"foreign_keys": len(foreignKeys)})

	db := m.db.WithContext(ctx)
	for _, fk := range foreignKeys {
		var exists bool
		if err := db.Raw(
			"SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)", fk.name(),
		).Scan(&exists).Error; err != nil {
			return err
		}
		if exists {
			continue
		}

		stmt := fmt.Sprintf(
			`ALTER TABLE %q ADD CONSTRAINT %q FOREIGN KEY (%q) REFERENCES %q (%q) ON DELETE %s`,
			fk.table, fk.name(), fk.column, fk.refTable, fk.refColumn, fk.onDelete,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add %s: %w", fk.name(), err)
		}
	}
	return nil
}
