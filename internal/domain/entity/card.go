package entity

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

// Card is a stored payment card. Only the gateway id and the last four digits are kept.
type Card struct {
	ID              uint64
	AccountID       uint64
	ExternalID      string
	NameOnCard      string
	LastFour        string
	Vendor          string
	ExpirationMonth int
	ExpirationYear  int
	Address         string
	Zip             string
	Active          bool
	CreatedAt       time.Time
}

// CardDetails is the full card data submitted by a client. It is forwarded to
// the gateway and never persisted.
type CardDetails struct {
	NameOnCard      string
	Number          string
	CVC             string
	ExpirationMonth int
	ExpirationYear  int
	Address         string
	Zip             string
	ExternalID      string
}

const cardSaveTitle = "Could not save card information"

func cardFieldError(field, message string) error {
	return errs.NewValidationError(cardSaveTitle, errs.CodeCardValidation, map[string]string{field: message})
}

// Validate applies the rules a card must pass before it is sent to the gateway
func (d *CardDetails) Validate(now time.Time) error {
	name := strings.TrimSpace(d.NameOnCard)
	if n := utf8.RuneCountInString(name); n < 2 || n > 45 {
		return cardFieldError("name_on_card", "The name on the card should be between 2 and 45 characters in length")
	}

	if d.ExpirationYear < now.Year() {
		return cardFieldError("expiration_year", "Expiration Year must be greater than or equal to current year")
	}

	if d.ExpirationMonth <= 0 {
		return cardFieldError("expiration_month", "Expiration Month must be included")
	}
	if d.ExpirationMonth > 12 {
		return cardFieldError("expiration_month", "Expiration Month must be between 1 and 12")
	}

	if d.ExpirationYear == now.Year() && d.ExpirationMonth <= int(now.Month()) {
		return cardFieldError("expiration_month", "Expiration Month must be greater than current month")
	}

	if len(d.Digits()) < 7 {
		return cardFieldError("number", "Please check your card number")
	}

	if strings.TrimSpace(d.ExternalID) != "" {
		return errs.NewHTTPError(http.StatusNotFound, cardSaveTitle, errs.CodeCardValidation).
			WithDev("This card record already has an external_id")
	}

	return nil
}

// Digits returns the card number without spaces or dashes
func (d *CardDetails) Digits() string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, d.Number)
}

// LastFour returns the last four digits of the number
func (d *CardDetails) LastFour() string {
	digits := d.Digits()
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// Vendor guesses the card brand from its prefix
func (d *CardDetails) Vendor() string {
	digits := d.Digits()
	switch {
	case strings.HasPrefix(digits, "4"):
		return "Visa"
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return "American Express"
	case strings.HasPrefix(digits, "6011"), strings.HasPrefix(digits, "65"):
		return "Discover"
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return "MasterCard"
	case len(digits) >= 4 && digits[:4] >= "2221" && digits[:4] <= "2720":
		return "MasterCard"
	default:
		return "Unknown"
	}
}

// ToCard builds the stored card row for a gateway id
func (d *CardDetails) ToCard(accountID uint64, externalID string, now time.Time) *Card {
	return &Card{
		AccountID:       accountID,
		ExternalID:      externalID,
		NameOnCard:      strings.TrimSpace(d.NameOnCard),
		LastFour:        d.LastFour(),
		Vendor:          d.Vendor(),
		ExpirationMonth: d.ExpirationMonth,
		ExpirationYear:  d.ExpirationYear,
		Address:         d.Address,
		Zip:             d.Zip,
		Active:          true,
		CreatedAt:       now,
	}
}
