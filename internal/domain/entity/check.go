package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

// Check is a paper check received from an account
type Check struct {
	ID            uint64
	AccountID     uint64
	Number        string
	Date          time.Time
	AccountNumber string
	RoutingNumber string
	NameOnCheck   string
	Amount        int64
}

// Validate checks the fields needed to deposit a check
func (c *Check) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Number) == "" {
		fields["number"] = "Check number is required"
	}
	if strings.TrimSpace(c.AccountNumber) == "" {
		fields["account_number"] = "Account number is required"
	}
	if !isDigits(c.RoutingNumber) || len(c.RoutingNumber) != 9 {
		fields["routing_number"] = "Routing number must be 9 digits"
	}
	if strings.TrimSpace(c.NameOnCheck) == "" {
		fields["name_on_check"] = "Name on check is required"
	}
	if c.Amount <= 0 {
		fields["amount"] = "Amount must be greater than zero"
	}

	if len(fields) > 0 {
		return errs.NewValidationError("Could not save check", errs.CodeInvalidRequest, fields)
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
