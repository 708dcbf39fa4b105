package model

import (
	"time"
)

// User is the identity row shared by employees, owners and attendees
type User struct {
	ID        uint64    `gorm:"primaryKey"`
	FirstName string    `gorm:"type:varchar(45);not null"`
	LastName  string    `gorm:"type:varchar(45);not null"`
	Email     string    `gorm:"type:varchar(255);index"`
	UserName  string    `gorm:"type:varchar(255);index"`
	Password  string    `gorm:"type:varchar(255)"`
	Salt      string    `gorm:"type:varchar(255)"`
	Status    string    `gorm:"type:varchar(20);not null;default:Active"`
	UserType  string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Employee is the staff profile of a user
type Employee struct {
	UserID   uint64 `gorm:"primaryKey;autoIncrement:false"`
	Active   bool   `gorm:"not null;default:true"`
	JobTitle string `gorm:"type:varchar(100)"`
	Phone    string `gorm:"type:varchar(30)"`
}

// TableName specifies the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// AuthToken is a login session
type AuthToken struct {
	Token     string    `gorm:"primaryKey;type:varchar(64)"`
	UserID    uint64    `gorm:"not null;index"`
	UserType  string    `gorm:"type:varchar(20);not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AuthToken
func (AuthToken) TableName() string {
	return "auth_tokens"
}
