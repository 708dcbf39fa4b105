package payment

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/gateway"
)

// DisabledProcessor answers every call with 503 when no gateway key is configured
type DisabledProcessor struct{}

var _ gateway.PaymentProcessor = DisabledProcessor{}

func disabled() error {
	return errs.NewHTTPError(http.StatusServiceUnavailable, "Payment processing is not configured", errs.CodePaymentsDisabled).
		WithDev("Set the \"" + entity.SettingStripeAPIKey + "\" setting to enable card payments").
		WithCause(errs.ErrPaymentsDisabled)
}

func (DisabledProcessor) CreateCustomer(context.Context, *entity.Account) (*gateway.Customer, error) {
	return nil, disabled()
}

func (DisabledProcessor) FindCustomer(context.Context, string, bool) (*gateway.Customer, error) {
	return nil, disabled()
}

func (DisabledProcessor) DeleteCustomer(context.Context, string) error {
	return disabled()
}

func (DisabledProcessor) CreateCard(context.Context, string, *entity.CardDetails) (*gateway.StoredCard, error) {
	return nil, disabled()
}

func (DisabledProcessor) FindCard(context.Context, string, string, bool) (*gateway.StoredCard, error) {
	return nil, disabled()
}

func (DisabledProcessor) DeleteCard(context.Context, string, string) error {
	return disabled()
}

func (DisabledProcessor) ChargeCard(context.Context, gateway.ChargeRequest) (*gateway.Charge, error) {
	return nil, disabled()
}

func (DisabledProcessor) RefundCharge(context.Context, string) (*gateway.Refund, error) {
	return nil, disabled()
}
