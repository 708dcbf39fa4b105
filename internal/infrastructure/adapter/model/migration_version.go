package model

import (
	"time"
)

// MigrationVersion records a schema version applied by the migration manager
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;index"`
	AppliedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Details   string    `gorm:"type:text"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
