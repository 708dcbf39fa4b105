package repository

import (
	"context"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/model"
)

// centsToDollars converts ledger cents into the numeric column value
func centsToDollars(cents int64) float64 {
	return float64(cents) / 100
}

// dollarsToCents converts a numeric column value into cents
func dollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// CardRepository implements persistence.CardRepository using GORM
type CardRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCardRepository creates a new CardRepository instance
func NewCardRepository(db *gorm.DB, logger coreport.Logger) *CardRepository {
	return &CardRepository{db: db, logger: logger}
}

// Create inserts the card and sets its ID
func (r *CardRepository) Create(ctx context.Context, card *entity.Card) error {
	m := model.Card{
		AccountID:       card.AccountID,
		ExternalID:      card.ExternalID,
		NameOnCard:      card.NameOnCard,
		LastFour:        card.LastFour,
		Vendor:          card.Vendor,
		ExpirationMonth: card.ExpirationMonth,
		ExpirationYear:  card.ExpirationYear,
		Address:         card.Address,
		Zip:             card.Zip,
		Active:          card.Active,
		CreatedAt:       card.CreatedAt,
		UpdatedAt:       card.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return MapError(err, "create card")
	}
	card.ID = m.ID

	r.logger.Info("Card stored", map[string]any{
		"card_id":    m.ID,
		"account_id": m.AccountID,
		"vendor":     m.Vendor,
	})
	return nil
}

// GetByID retrieves a card
func (r *CardRepository) GetByID(ctx context.Context, id uint64) (*entity.Card, error) {
	var m model.Card
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, MapError(err, fmt.Sprintf("get card %d", id))
	}
	return &entity.Card{
		ID:              m.ID,
		AccountID:       m.AccountID,
		ExternalID:      m.ExternalID,
		NameOnCard:      m.NameOnCard,
		LastFour:        m.LastFour,
		Vendor:          m.Vendor,
		ExpirationMonth: m.ExpirationMonth,
		ExpirationYear:  m.ExpirationYear,
		Address:         m.Address,
		Zip:             m.Zip,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt,
	}, nil
}

// Delete removes a card
func (r *CardRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Card{}, id)
	if result.Error != nil {
		return MapError(result.Error, "delete card")
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("card %d: %w", id, errs.ErrNotFound)
	}
	return nil
}

// CheckRepository implements persistence.CheckRepository using GORM
type CheckRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
}

// NewCheckRepository creates a new CheckRepository instance
func NewCheckRepository(db *gorm.DB, timeProvider coreport.TimeProvider) *CheckRepository {
	return &CheckRepository{db: db, timeProvider: timeProvider}
}

// Create inserts the check and sets its ID
func (r *CheckRepository) Create(ctx context.Context, check *entity.Check) error {
	m := model.Check{
		AccountID:     check.AccountID,
		Number:        check.Number,
		Date:          check.Date,
		AccountNumber: check.AccountNumber,
		RoutingNumber: check.RoutingNumber,
		NameOnCheck:   check.NameOnCheck,
		Amount:        centsToDollars(check.Amount),
		CreatedAt:     r.timeProvider.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return MapError(err, "create check")
	}
	check.ID = m.ID
	return nil
}

// PaymentRepository implements persistence.PaymentRepository using GORM
type PaymentRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create inserts the payment and sets its ID
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	createdAt := payment.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.timeProvider.Now()
	}

	m := model.Payment{
		AccountID:  payment.AccountID,
		CardID:     payment.CardID,
		CheckID:    payment.CheckID,
		RefundOfID: payment.RefundOfID,
		Amount:     centsToDollars(payment.Amount),
		Mode:       string(payment.Mode),
		ExternalID: payment.ExternalID,
		Refunded:   payment.Refunded,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return MapError(err, "create payment")
	}
	payment.ID = m.ID
	payment.CreatedAt = createdAt

	r.logger.Info("Payment recorded", map[string]any{
		"payment_id": m.ID,
		"account_id": m.AccountID,
		"mode":       m.Mode,
		"amount":     entity.FormatCents(payment.Amount),
	})
	return nil
}

// GetByID retrieves a payment
func (r *PaymentRepository) GetByID(ctx context.Context, id uint64) (*entity.Payment, error) {
	var m model.Payment
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, MapError(err, fmt.Sprintf("get payment %d", id))
	}
	return &entity.Payment{
		ID:         m.ID,
		AccountID:  m.AccountID,
		CardID:     m.CardID,
		CheckID:    m.CheckID,
		RefundOfID: m.RefundOfID,
		Amount:     dollarsToCents(m.Amount),
		Mode:       entity.PaymentMode(m.Mode),
		ExternalID: m.ExternalID,
		Refunded:   m.Refunded,
		CreatedAt:  m.CreatedAt,
	}, nil
}

// MarkRefunded flags a payment as refunded exactly once
func (r *PaymentRepository) MarkRefunded(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ? AND refunded = ?", id, false).
		Updates(map[string]any{
			"refunded":   true,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return MapError(result.Error, "mark payment refunded")
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("refundable payment %d: %w", id, errs.ErrNotFound)
	}
	return nil
}
