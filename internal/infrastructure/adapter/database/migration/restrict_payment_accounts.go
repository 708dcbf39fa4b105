package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
)

// RestrictPaymentAccounts moves schemas created at 1.0.0, where deleting an
// account cascaded to its payments, onto a RESTRICT foreign key
type RestrictPaymentAccounts struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewRestrictPaymentAccounts creates a new migration instance
func NewRestrictPaymentAccounts(db *gorm.DB, logger coreport.Logger) *RestrictPaymentAccounts {
	return &RestrictPaymentAccounts{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *RestrictPaymentAccounts) Run(ctx context.Context) error {
	fk := foreignKey{"payments", "account_id", "accounts", "id", "RESTRICT"}
	db := m.db.WithContext(ctx)

	var action string
	err := db.Raw(`SELECT confdeltype FROM pg_constraint WHERE conname = ?`, fk.name()).Scan(&action).Error
	if err != nil {
		m.logger.Error("Failed to read payment account constraint", map[string]any{"error": err.Error()})
		return err
	}
	// r: restrict
	if action == "r" {
		return nil
	}

	m.logger.Info("Restricting account deletes on payments", map[string]any{
		"constraint": fk.name(),
		"was":        action,
	})

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, fk.table, fk.name())).Error; err != nil {
			return fmt.Errorf("drop %s: %w", fk.name(), err)
		}
		stmt := fmt.Sprintf(
			`ALTER TABLE %q ADD CONSTRAINT %q FOREIGN KEY (%q) REFERENCES %q (%q) ON DELETE %s`,
			fk.table, fk.name(), fk.column, fk.refTable, fk.refColumn, fk.onDelete,
		)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add %s: %w", fk.name(), err)
		}
		return nil
	})
}
