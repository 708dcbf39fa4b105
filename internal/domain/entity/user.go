package entity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

// UserType tells which profile table a user belongs to
type UserType string

const (
	UserTypeEmployee UserType = "Employee"
	UserTypeOwner    UserType = "Owner"
	UserTypeAttendee UserType = "Attendee"
)

// User statuses
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

// User is the shared identity row behind employees, owners and attendees
type User struct {
	ID           uint64
	FirstName    string
	LastName     string
	Email        string
	UserName     string
	PasswordHash string
	Salt         string
	Status       string
	UserType     UserType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser validates and builds a login-capable user
func NewUser(firstName, lastName, email string, userType UserType, now time.Time) (*User, error) {
	user := &User{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Status:    UserStatusActive,
		UserType:  userType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user.UserName = user.Email

	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the fields every stored user must carry
func (u *User) Validate() error {
	fields := make(map[string]string)

	if u.FirstName == "" {
		fields["first_name"] = "First name is required"
	}
	if u.LastName == "" {
		fields["last_name"] = "Last name is required"
	}
	if u.Email != "" {
		if _, err := mail.ParseAddress(u.Email); err != nil {
			fields["email"] = "Email address is not valid"
		}
	}
	switch u.UserType {
	case UserTypeEmployee, UserTypeOwner, UserTypeAttendee:
	default:
		fields["user_type"] = fmt.Sprintf("Unknown user type %q", u.UserType)
	}

	if len(fields) > 0 {
		return errs.NewValidationError("Could not save user", errs.CodeInvalidRequest, fields)
	}
	return nil
}

// IsActive reports whether the user may log in
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// FullName returns "First Last"
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
