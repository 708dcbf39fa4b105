package gateway

import (
	"context"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
)

// Customer is a gateway customer record
type Customer struct {
	ID          string
	Description string
	Email       string
}

// StoredCard is a card saved on a gateway customer
type StoredCard struct {
	ID       string
	Brand    string
	LastFour string
	ExpMonth int
	ExpYear  int
}

// ChargeRequest describes a charge. Either CustomerID with CardID, or Card
// for a one-time charge, must be set.
type ChargeRequest struct {
	AmountCents int64
	Description string
	CustomerID  string
	CardID      string
	Card        *entity.CardDetails
}

// Charge is a captured gateway charge
type Charge struct {
	ID          string
	AmountCents int64
	Status      string
}

// Refund is a gateway refund of a charge
type Refund struct {
	ID          string
	ChargeID    string
	AmountCents int64
}

// PaymentProcessor forwards money operations to an external gateway
type PaymentProcessor interface {
	// CreateCustomer returns the account's existing customer when it still
	// exists on the gateway, otherwise registers a new one
	CreateCustomer(ctx context.Context, account *entity.Account) (*Customer, error)

	// FindCustomer retrieves a customer. Results are cached unless force is set.
	//
	// Possible errors:
	// - APIError 404 (CodeCustomerMissing): If the id is malformed or unknown
	FindCustomer(ctx context.Context, id string, force bool) (*Customer, error)

	// DeleteCustomer removes a customer and its cards
	DeleteCustomer(ctx context.Context, id string) error

	// CreateCard validates and saves a card on a customer
	//
	// Possible errors:
	// - APIError 400 (CodeCardValidation): If the card fails local validation
	// - APIError 400 (CodeCardDeclined): If the gateway rejects the card
	CreateCard(ctx context.Context, customerID string, card *entity.CardDetails) (*StoredCard, error)

	// FindCard retrieves a saved card. Results are cached unless force is set.
	FindCard(ctx context.Context, customerID, cardID string, force bool) (*StoredCard, error)

	// DeleteCard removes a saved card
	DeleteCard(ctx context.Context, customerID, cardID string) error

	// ChargeCard captures a charge in USD
	//
	// Possible errors:
	// - APIError 400 (CodeChargeBelowMinimum): If the amount is under $1
	// - APIError 400 (CodeCardDeclined): If the gateway declines the card
	ChargeCard(ctx context.Context, req ChargeRequest) (*Charge, error)

	// RefundCharge refunds a charge in full
	RefundCharge(ctx context.Context, chargeID string) (*Refund, error)
}

// ProcessorProvider resolves the processor configured at call time, so a key
// changed in settings takes effect without a restart
type ProcessorProvider interface {
	Processor(ctx context.Context) PaymentProcessor
}
