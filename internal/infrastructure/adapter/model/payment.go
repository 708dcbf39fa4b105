package model

import (
	"time"
)

// Card holds what is kept locally about a gateway card
type Card struct {
	ID              uint64    `gorm:"primaryKey"`
	AccountID       uint64    `gorm:"not null;index"`
	ExternalID      string    `gorm:"type:varchar(100)"`
	NameOnCard      string    `gorm:"type:varchar(45);not null"`
	LastFour        string    `gorm:"type:varchar(4);not null"`
	Vendor          string    `gorm:"type:varchar(30)"`
	ExpirationMonth int       `gorm:"type:smallint;not null"`
	ExpirationYear  int       `gorm:"type:smallint;not null"`
	Address         string    `gorm:"type:varchar(255)"`
	Zip             string    `gorm:"type:varchar(20)"`
	Active          bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}

// Check is a received paper check
type Check struct {
	ID            uint64    `gorm:"primaryKey"`
	AccountID     uint64    `gorm:"not null;index"`
	Number        string    `gorm:"type:varchar(30);not null"`
	Date          time.Time `gorm:"type:date;not null"`
	AccountNumber string    `gorm:"type:varchar(30);not null"`
	RoutingNumber string    `gorm:"type:varchar(9);not null"`
	NameOnCheck   string    `gorm:"type:varchar(100);not null"`
	Amount        float64   `gorm:"type:numeric(10,2);not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Check
func (Check) TableName() string {
	return "checks"
}

// Payment is one ledger line. Amount is stored in dollars.
type Payment struct {
	ID         uint64    `gorm:"primaryKey"`
	AccountID  uint64    `gorm:"not null;index"`
	CardID     *uint64   `gorm:"index"`
	CheckID    *uint64   `gorm:"index"`
	RefundOfID *uint64   `gorm:"index"`
	Amount     float64   `gorm:"type:numeric(10,2);not null"`
	Mode       string    `gorm:"type:varchar(10);not null"`
	ExternalID string    `gorm:"type:varchar(100)"`
	Refunded   bool      `gorm:"not null;default:false"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// All lists every model managed by migrations, parents first
func All() []any {
	return []any{
		&User{},
		&Employee{},
		&AuthToken{},
		&Account{},
		&Owner{},
		&Attendee{},
		&Setting{},
		&CustomField{},
		&CustomAccountField{},
		&Location{},
		&Cabin{},
		&Program{},
		&Session{},
		&Event{},
		&EventCabin{},
		&Card{},
		&Check{},
		&Payment{},
	}
}
