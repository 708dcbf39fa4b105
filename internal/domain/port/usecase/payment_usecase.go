package usecase

import (
	"context"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
)

// CreateCardInput is a card submitted for an account
type CreateCardInput struct {
	AccountID uint64
	Details   entity.CardDetails
}

// CardUseCase defines stored card operations
type CardUseCase interface {
	// Create registers the card with the gateway and stores its safe fields
	Create(ctx context.Context, input CreateCardInput) (*entity.Card, error)

	// Delete removes the card from the gateway and the database
	Delete(ctx context.Context, id uint64) error
}

// CreatePaymentInput is a payment submitted for an account. Amount is a
// decimal dollar string such as "25.00".
type CreatePaymentInput struct {
	AccountID uint64
	Amount    string
	Mode      string
	CardID    *uint64
	Card      *entity.CardDetails
	Check     *entity.Check
}

// PaymentUseCase defines payment ledger operations
type PaymentUseCase interface {
	// Create charges, deposits or records a payment depending on its mode
	Create(ctx context.Context, input CreatePaymentInput) (*entity.Payment, error)

	// Refund refunds a card payment in full and records the negative entry
	Refund(ctx context.Context, id uint64) (*entity.Payment, error)
}
