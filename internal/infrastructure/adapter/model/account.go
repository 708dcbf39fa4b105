package model

import (
	"time"
)

// Account is a billing household
type Account struct {
	ID         uint64    `gorm:"primaryKey"`
	Name       string    `gorm:"type:varchar(100);not null"`
	ExternalID string    `gorm:"type:varchar(100)"`
	Active     bool      `gorm:"not null;default:true"`
	Address    string    `gorm:"type:varchar(255)"`
	City       string    `gorm:"type:varchar(100)"`
	State      string    `gorm:"type:varchar(50)"`
	Zip        string    `gorm:"type:varchar(20)"`
	Phone      string    `gorm:"type:varchar(30)"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// Owner is a user who pays for an account
type Owner struct {
	UserID         uint64 `gorm:"primaryKey;autoIncrement:false"`
	AccountID      uint64 `gorm:"not null;index"`
	PrimaryContact bool   `gorm:"not null;default:false"`
	Relationship   string `gorm:"type:varchar(50)"`
	MobilePhone    string `gorm:"type:varchar(30)"`
}

// TableName specifies the table name for Owner
func (Owner) TableName() string {
	return "owners"
}

// Attendee is a camper belonging to an account
type Attendee struct {
	UserID      uint64     `gorm:"primaryKey;autoIncrement:false"`
	AccountID   uint64     `gorm:"not null;index"`
	Active      bool       `gorm:"not null;default:true"`
	SchoolGrade *int       `gorm:"type:smallint"`
	DateOfBirth *time.Time `gorm:"type:date"`
	Gender      string     `gorm:"type:varchar(10)"`
}

// TableName specifies the table name for Attendee
func (Attendee) TableName() string {
	return "attendees"
}

// Setting is an administrator editable key/value pair
type Setting struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Value       string `gorm:"type:text"`
	Description string `gorm:"type:text"`
}

// TableName specifies the table name for Setting
func (Setting) TableName() string {
	return "settings"
}

// CustomField declares an extra attribute of a table
type CustomField struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null"`
	DisplayName string `gorm:"type:varchar(100)"`
	ForTable    string `gorm:"column:table_name;type:varchar(100);not null;index"`
	FieldType   string `gorm:"type:varchar(20);not null;default:text"`
	Required    bool   `gorm:"not null;default:false"`
	Active      bool   `gorm:"not null;default:true"`
}

// TableName specifies the table name for CustomField
func (CustomField) TableName() string {
	return "custom_fields"
}

// CustomAccountField is the value of one custom field for one account
type CustomAccountField struct {
	ID            uint64 `gorm:"primaryKey"`
	AccountID     uint64 `gorm:"not null;uniqueIndex:idx_custom_account_fields_account_field"`
	CustomFieldID uint64 `gorm:"not null;uniqueIndex:idx_custom_account_fields_account_field"`
	Value         string `gorm:"type:text"`
}

// TableName specifies the table name for CustomAccountField
func (CustomAccountField) TableName() string {
	return "custom_account_fields"
}
