package model

import (
	"time"
)

// Event is a scheduled camp offering
type Event struct {
	ID          uint64    `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Fee         float64   `gorm:"type:numeric(10,2);not null;default:0"`
	Capacity    int       `gorm:"not null;default:0"`
	LocationID  *uint64   `gorm:"index"`
	ProgramID   *uint64   `gorm:"index"`
	SessionID   *uint64   `gorm:"index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// EventCabin links an event to the cabins it uses
type EventCabin struct {
	EventID uint64 `gorm:"primaryKey;autoIncrement:false"`
	CabinID uint64 `gorm:"primaryKey;autoIncrement:false;index"`
}

// TableName specifies the table name for EventCabin
func (EventCabin) TableName() string {
	return "event_cabins"
}

// Cabin is a lodging unit at a location
type Cabin struct {
	ID         uint64  `gorm:"primaryKey"`
	Name       string  `gorm:"type:varchar(100);not null"`
	Capacity   int     `gorm:"not null;default:0"`
	LocationID *uint64 `gorm:"index"`
}

// TableName specifies the table name for Cabin
func (Cabin) TableName() string {
	return "cabins"
}

// Location is a camp site
type Location struct {
	ID      uint64 `gorm:"primaryKey"`
	Name    string `gorm:"type:varchar(100);not null"`
	Address string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(50)"`
	Zip     string `gorm:"type:varchar(20)"`
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "locations"
}

// Program groups events by activity
type Program struct {
	ID          uint64  `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Description string  `gorm:"type:text"`
	Cost        float64 `gorm:"type:numeric(10,2);not null;default:0"`
}

// TableName specifies the table name for Program
func (Program) TableName() string {
	return "programs"
}

// Session is a date range events are scheduled in
type Session struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "sessions"
}
