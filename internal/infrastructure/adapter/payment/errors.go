package payment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v76"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

const (
	titleSaveFailed     = "Could not save Payment Information for account"
	titleCustomerLookup = "Could not find the payment customer for account"
	titleCardLookup     = "Could not find the stored card"
	titleCardSave       = "Could not save card details"
)

// objectMissing builds the 404 for a customer or card the gateway does not
// know. The cause always wraps errs.ErrGatewayObjectMissing.
func objectMissing(title string, code int64, dev string, cause error) *errs.APIError {
	wrapped := errs.ErrGatewayObjectMissing
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", errs.ErrGatewayObjectMissing, cause)
	}
	return errs.NewHTTPError(http.StatusNotFound, title, code).WithDev(dev).WithCause(wrapped)
}

// customerMissing is returned when a customer id is malformed, unknown or deleted
func customerMissing(title, dev string, cause error) *errs.APIError {
	return objectMissing(title, errs.CodeCustomerMissing, dev, cause)
}

// cardMissing is returned when a card id is malformed or unknown
func cardMissing(dev string, cause error) *errs.APIError {
	return objectMissing(titleCardLookup, errs.CodeGatewayFailure, dev, cause)
}

// gatewayError buckets a gateway failure: card errors become validation
// errors, everything else a 404 with the gateway details in the dev message
func gatewayError(err error) error {
	if err == nil {
		return nil
	}

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return errs.NewHTTPError(http.StatusNotFound, titleSaveFailed, errs.CodeGatewayFailure).
			WithDev(err.Error()).
			WithCause(err)
	}

	dev := fmt.Sprintf("Status: %d\nType: %s\nParam: %s\nMessage: %s",
		stripeErr.HTTPStatusCode, stripeErr.Type, stripeErr.Param, stripeErr.Msg)

	if stripeErr.Type == stripe.ErrorTypeCard {
		return errs.NewValidationError("Error: "+stripeErr.Msg, errs.CodeCardDeclined, nil).
			WithField("field", stripeErr.Msg).
			WithDev(dev).
			WithCause(err)
	}

	return errs.NewHTTPError(http.StatusNotFound, titleSaveFailed, errs.CodeGatewayFailure).
		WithDev(dev).
		WithCause(err)
}

// isMissing reports whether the gateway says the object does not exist.
// Only a 404 or resource_missing qualifies.
func isMissing(err error) bool {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripe.ErrorCodeResourceMissing
	}
	return errs.IsGatewayObjectMissing(err)
}
