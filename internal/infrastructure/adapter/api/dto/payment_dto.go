package dto

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
)

// CardRequest is a card submitted by a client
type CardRequest struct {
	AccountID       uint64 `json:"account_id"`
	NameOnCard      string `json:"name_on_card"`
	Number          string `json:"number"`
	CVC             string `json:"cvc"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	Address         string `json:"address"`
	Zip             string `json:"zip"`
	ExternalID      string `json:"external_id"`
}

// Details converts the request into card details
func (r CardRequest) Details() entity.CardDetails {
	return entity.CardDetails{
		NameOnCard:      r.NameOnCard,
		Number:          r.Number,
		CVC:             r.CVC,
		ExpirationMonth: r.ExpirationMonth,
		ExpirationYear:  r.ExpirationYear,
		Address:         r.Address,
		Zip:             r.Zip,
		ExternalID:      r.ExternalID,
	}
}

// ToInput converts the request into the card use case input
func (r CardRequest) ToInput() usecase.CreateCardInput {
	return usecase.CreateCardInput{AccountID: r.AccountID, Details: r.Details()}
}

// CheckRequest is a paper check submitted with a payment
type CheckRequest struct {
	Number        string `json:"number"`
	Date          string `json:"date"`
	AccountNumber string `json:"account_number"`
	RoutingNumber string `json:"routing_number"`
	NameOnCheck   string `json:"name_on_check"`
}

// PaymentRequest is a payment submitted by a client. Amount may be a JSON
// number or a decimal string.
type PaymentRequest struct {
	AccountID uint64        `json:"account_id"`
	Amount    json.Number   `json:"amount"`
	Mode      string        `json:"mode"`
	CardID    *uint64       `json:"card_id"`
	Card      *CardRequest  `json:"card"`
	Check     *CheckRequest `json:"check"`
}

// ToInput converts the request into the payment use case input
func (r PaymentRequest) ToInput() usecase.CreatePaymentInput {
	input := usecase.CreatePaymentInput{
		AccountID: r.AccountID,
		Amount:    r.Amount.String(),
		Mode:      r.Mode,
		CardID:    r.CardID,
	}
	if r.Card != nil {
		details := r.Card.Details()
		input.Card = &details
	}
	if r.Check != nil {
		check := &entity.Check{
			AccountID:     r.AccountID,
			Number:        r.Check.Number,
			AccountNumber: r.Check.AccountNumber,
			RoutingNumber: r.Check.RoutingNumber,
			NameOnCheck:   r.Check.NameOnCheck,
		}
		if date, err := time.Parse(time.DateOnly, r.Check.Date); err == nil {
			check.Date = date
		}
		input.Check = check
	}
	return input
}

// CardRecord renders a stored card the way resource rows are rendered
func CardRecord(c *entity.Card) search.Record {
	return search.Record{
		"id":               c.ID,
		"account_id":       c.AccountID,
		"external_id":      c.ExternalID,
		"name_on_card":     c.NameOnCard,
		"last_four":        c.LastFour,
		"vendor":           c.Vendor,
		"expiration_month": c.ExpirationMonth,
		"expiration_year":  c.ExpirationYear,
		"address":          c.Address,
		"zip":              c.Zip,
		"active":           c.Active,
		"created_at":       c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// PaymentRecord renders a payment with its amount in dollars
func PaymentRecord(p *entity.Payment) search.Record {
	return search.Record{
		"id":           p.ID,
		"account_id":   p.AccountID,
		"card_id":      p.CardID,
		"check_id":     p.CheckID,
		"refund_of_id": p.RefundOfID,
		"amount":       entity.FormatCents(p.Amount),
		"mode":         string(p.Mode),
		"external_id":  p.ExternalID,
		"refunded":     p.Refunded,
		"created_at":   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ParseID reads a positive row id from a path parameter
func ParseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	return id, err == nil && id > 0
}
