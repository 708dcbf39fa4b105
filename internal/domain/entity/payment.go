package entity

import (
	"net/http"
	"time"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

// PaymentMode says how money moved
type PaymentMode string

const (
	PaymentModeCredit PaymentMode = "credit"
	PaymentModeCheck  PaymentMode = "check"
	PaymentModeCash   PaymentMode = "cash"
	PaymentModeRefund PaymentMode = "refund"
)

// MinimumChargeCents is the smallest amount the gateway will be asked to charge
const MinimumChargeCents int64 = 100

// Payment is a ledger row against an account. Amount is in cents; refunds are negative.
type Payment struct {
	ID         uint64
	AccountID  uint64
	CardID     *uint64
	CheckID    *uint64
	RefundOfID *uint64
	Amount     int64
	Mode       PaymentMode
	ExternalID string
	Refunded   bool
	CreatedAt  time.Time
}

// ParsePaymentMode validates a client supplied mode
func ParsePaymentMode(mode string) (PaymentMode, error) {
	switch PaymentMode(mode) {
	case PaymentModeCredit, PaymentModeCheck, PaymentModeCash:
		return PaymentMode(mode), nil
	case "":
		return PaymentModeCredit, nil
	default:
		return "", errs.NewValidationError("Could not save payment", errs.CodeInvalidPaymentMode, map[string]string{
			"mode": "Mode must be one of credit, check or cash",
		})
	}
}

// CheckChargeAmount enforces the gateway minimum
func CheckChargeAmount(cents int64) error {
	if cents < MinimumChargeCents {
		return errs.NewValidationError("Charge amount must exceed $1.", errs.CodeChargeBelowMinimum, map[string]string{
			"amount": "Charge amount must exceed $1.",
		})
	}
	return nil
}

// CanRefund reports whether a refund may be issued against this payment
func (p *Payment) CanRefund() error {
	switch {
	case p.Mode != PaymentModeCredit:
		return errs.NewHTTPError(http.StatusConflict, "Only card payments can be refunded", errs.CodeRefundNotAllowed)
	case p.Refunded:
		return errs.NewHTTPError(http.StatusConflict, "Payment was already refunded", errs.CodeRefundNotAllowed)
	case p.ExternalID == "":
		return errs.NewHTTPError(http.StatusConflict, "Payment has no gateway charge to refund", errs.CodeRefundNotAllowed)
	default:
		return nil
	}
}

// NewRefund builds the negative ledger row recorded after a gateway refund
func (p *Payment) NewRefund(refundID string, now time.Time) *Payment {
	originalID := p.ID
	return &Payment{
		AccountID:  p.AccountID,
		CardID:     p.CardID,
		RefundOfID: &originalID,
		Amount:     -p.Amount,
		Mode:       PaymentModeRefund,
		ExternalID: refundID,
		CreatedAt:  now,
	}
}
