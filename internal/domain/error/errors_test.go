package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrNotFound.Error() != "resource not found" {
		t.Errorf("ErrNotFound has unexpected message: %s", ErrNotFound.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int64
	}{
		{"NotFound", ErrNotFound, 4040},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"InvalidQuery", ErrInvalidQuery, 4101},
		{"UnknownField", ErrUnknownField, 4102},
		{"InvalidToken", ErrInvalidToken, 4011},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"PaymentsDisabled", ErrPaymentsDisabled, 5031},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidCredentials), 4013},
		{"APIError", NewHTTPError(http.StatusNotFound, "gone", CodeCustomerMissing), CodeCustomerMissing},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"NotFound", fmt.Errorf("account 4: %w", ErrNotFound), http.StatusNotFound},
		{"MissingToken", ErrMissingToken, http.StatusUnauthorized},
		{"Expired", ErrTokenExpired, http.StatusUnauthorized},
		{"Duplicate", ErrDuplicateRecord, http.StatusConflict},
		{"RateLimited", ErrRateLimited, http.StatusTooManyRequests},
		{"Disabled", ErrPaymentsDisabled, http.StatusServiceUnavailable},
		{"Validation", NewValidationError("bad", CodeCardValidation, nil), http.StatusBadRequest},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
			}
		})
	}
}

func TestAPIError(t *testing.T) {
	cause := errors.New("stripe unreachable")
	apiErr := NewHTTPError(http.StatusNotFound, "Could not save Payment Information for account", CodeGatewayFailure).
		WithDev("Status: 500").
		WithCause(cause)

	if !errors.Is(apiErr, cause) {
		t.Errorf("errors.Is(apiErr, cause) = false, want true")
	}

	wrapped := fmt.Errorf("charge failed: %w", apiErr)
	if ErrorCode(wrapped) != CodeGatewayFailure {
		t.Errorf("ErrorCode(wrapped) = %d, want %d", ErrorCode(wrapped), CodeGatewayFailure)
	}
	if HTTPStatus(wrapped) != http.StatusNotFound {
		t.Errorf("HTTPStatus(wrapped) = %d, want 404", HTTPStatus(wrapped))
	}

	fields := apiErr.LogFields()
	if fields["error_type"] != "http" {
		t.Errorf("LogFields()[error_type] = %v, want http", fields["error_type"])
	}
	if fields["dev"] != "Status: 500" {
		t.Errorf("LogFields()[dev] = %v, want Status: 500", fields["dev"])
	}
}

func TestValidationErrorFields(t *testing.T) {
	err := NewValidationError("Could not save card information", CodeCardValidation, nil).
		WithField("number", "Please check your card number")

	if !IsValidationError(err) {
		t.Errorf("IsValidationError() = false, want true")
	}
	if err.Fields["number"] != "Please check your card number" {
		t.Errorf("Fields[number] = %q", err.Fields["number"])
	}
	if IsValidationError(ErrNotFound) {
		t.Errorf("IsValidationError(ErrNotFound) = true, want false")
	}
}

func TestFromError(t *testing.T) {
	t.Run("sentinel keeps message", func(t *testing.T) {
		apiErr := FromError(fmt.Errorf("lookup: %w", ErrNotFound))
		if apiErr.Status != http.StatusNotFound || apiErr.Code != CodeNotFound {
			t.Errorf("FromError() = %+v", apiErr)
		}
		if apiErr.Kind != KindHTTP {
			t.Errorf("Kind = %s, want http", apiErr.Kind)
		}
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		apiErr := FromError(errors.New("pq: connection refused"))
		if apiErr.Title != "internal server error" {
			t.Errorf("Title = %q, want internal server error", apiErr.Title)
		}
	})

	t.Run("bad request is validation", func(t *testing.T) {
		apiErr := FromError(ErrInvalidQuery)
		if apiErr.Kind != KindValidation {
			t.Errorf("Kind = %s, want validation", apiErr.Kind)
		}
	})

	t.Run("api error passes through", func(t *testing.T) {
		original := NewHTTPError(http.StatusConflict, "bad json", CodeInvalidJSON)
		if FromError(original) != original {
			t.Errorf("FromError() did not return the original APIError")
		}
	})
}

func TestIsNotFoundError(t *testing.T) {
	if !IsNotFoundError(fmt.Errorf("card: %w", ErrNotFound)) {
		t.Errorf("IsNotFoundError(wrapped ErrNotFound) = false")
	}
	if !IsNotFoundError(NewHTTPError(http.StatusNotFound, "Could not save card details", CodeCustomerMissing)) {
		t.Errorf("IsNotFoundError(404 APIError) = false")
	}
	if IsNotFoundError(ErrInvalidToken) {
		t.Errorf("IsNotFoundError(ErrInvalidToken) = true")
	}
}
