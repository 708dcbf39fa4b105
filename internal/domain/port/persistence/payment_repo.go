package persistence

import (
	"context"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
)

// CardRepository stores the non-sensitive part of payment cards
type CardRepository interface {
	// Create inserts the card and sets its ID
	Create(ctx context.Context, card *entity.Card) error

	// GetByID retrieves a card
	//
	// Possible errors:
	// - ErrNotFound: If the card doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Card, error)

	// Delete removes a card
	//
	// Possible errors:
	// - ErrNotFound: If the card doesn't exist
	Delete(ctx context.Context, id uint64) error
}

// CheckRepository stores received paper checks
type CheckRepository interface {
	// Create inserts the check and sets its ID
	Create(ctx context.Context, check *entity.Check) error
}

// PaymentRepository stores the payment ledger
type PaymentRepository interface {
	// Create inserts the payment and sets its ID
	Create(ctx context.Context, payment *entity.Payment) error

	// GetByID retrieves a payment
	//
	// Possible errors:
	// - ErrNotFound: If the payment doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Payment, error)

	// MarkRefunded flags a payment as refunded. It fails with ErrNotFound when the
	// payment does not exist or was already flagged.
	MarkRefunded(ctx context.Context, id uint64) error
}
