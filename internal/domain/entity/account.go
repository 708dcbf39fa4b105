package entity

import (
	"strings"
	"time"
)

// Account is the billing household that owners and attendees belong to
type Account struct {
	ID         uint64
	Name       string
	ExternalID string // payment gateway customer id
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasCustomer reports whether the account was already registered with the gateway
func (a *Account) HasCustomer() bool {
	return strings.TrimSpace(a.ExternalID) != ""
}
