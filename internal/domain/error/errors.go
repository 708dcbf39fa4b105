package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Application error codes returned in the "code" member of an error envelope
const (
	CodeInvalidJSON = 5

	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInvalidAmount       = 4002
	CodeConstraintViolation = 4005
	CodeDuplicateRecord     = 4009
	CodeMissingToken        = 4010
	CodeForbidden           = 4030
	CodeInvalidToken        = 4011
	CodeExpiredToken        = 4012
	CodeInvalidCredentials  = 4013
	CodeNotFound            = 4040
	CodeInvalidQuery        = 4101
	CodeUnknownField        = 4102
	CodeRefundNotAllowed    = 4201
	CodeChargeBelowMinimum  = 4202
	CodeInvalidExternalID   = 4203
	CodeInvalidPaymentMode  = 4204
	CodeRateLimited         = 4290

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodePaymentsDisabled = 5031

	// Payment gateway codes
	CodeCardValidation     int64 = 216894194189464684
	CodeCustomerMissing    int64 = 654686168484646
	CodeCardDeclined       int64 = 8494469468464
	CodeGatewayFailure     int64 = 123123923847
	CodeCustomerSaveFailed int64 = 1872391762862
)

// Base error types
var (
	// ErrNotFound is returned when a resource row does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAmount is returned when a money amount cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a money amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidQuery is returned when search parameters are malformed
	ErrInvalidQuery = errors.New("invalid search parameters")

	// ErrUnknownField is returned when a filter, sort or relation name is not declared
	ErrUnknownField = errors.New("unknown field")

	// ErrMissingToken is returned when a protected route is called without a token
	ErrMissingToken = errors.New("missing authentication token")

	// ErrInvalidToken is returned when the token does not match an active session
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrTokenExpired is returned when the session token has expired
	ErrTokenExpired = errors.New("authentication token expired")

	// ErrInvalidCredentials is returned when login and password do not match
	ErrInvalidCredentials = errors.New("invalid login or password")

	// ErrRateLimited is returned when a client exceeds its request budget
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrPaymentsDisabled is returned when no payment gateway key is configured
	ErrPaymentsDisabled = errors.New("payment processing is not configured")

	// ErrGatewayObjectMissing marks gateway errors for customers or cards the
	// gateway does not know. Other gateway failures never carry it.
	ErrGatewayObjectMissing = errors.New("payment gateway object does not exist")

	// ErrPasswordTooLong is returned when a password exceeds what bcrypt accepts
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrAmbiguousLogin is returned when a login name matches more than one user
	ErrAmbiguousLogin = errors.New("login matches more than one user")

	// ErrForbidden is returned when the caller may not use a resource
	ErrForbidden = errors.New("forbidden")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateRecord is returned when a unique constraint rejects a write
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int64 {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidQuery):
		return CodeInvalidQuery
	case errors.Is(err, ErrUnknownField):
		return CodeUnknownField
	case errors.Is(err, ErrMissingToken):
		return CodeMissingToken
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrTokenExpired):
		return CodeExpiredToken
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrPasswordTooLong):
		return CodeInvalidRequest
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrDuplicateRecord):
		return CodeDuplicateRecord
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrPaymentsDisabled):
		return CodePaymentsDisabled
	default:
		return CodeInternalServer
	}
}

// HTTPStatus returns the HTTP status code that best describes err
func HTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrInvalidQuery),
		errors.Is(err, ErrUnknownField),
		errors.Is(err, ErrPasswordTooLong):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrDuplicateRecord), errors.Is(err, ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, ErrPaymentsDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Kind separates input validation failures from other HTTP-level failures
type Kind string

const (
	KindValidation Kind = "validation"
	KindHTTP       Kind = "http"
)

// APIError carries everything needed to render an error envelope
type APIError struct {
	Kind   Kind
	Status int
	Title  string
	Dev    string
	Code   int64
	More   string
	Fields map[string]string
	Err    error
}

// Error implements the error interface for APIError
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (code %d): %v", e.Title, e.Code, e.Err)
	}
	if e.Dev != "" {
		return fmt.Sprintf("%s (code %d): %s", e.Title, e.Code, e.Dev)
	}
	return fmt.Sprintf("%s (code %d)", e.Title, e.Code)
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Err
}

// WithDev sets the developer message
func (e *APIError) WithDev(dev string) *APIError {
	e.Dev = dev
	return e
}

// WithCause attaches the underlying error
func (e *APIError) WithCause(err error) *APIError {
	e.Err = err
	return e
}

// WithField adds a field-level message
func (e *APIError) WithField(field, message string) *APIError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
	return e
}

// LogFields returns a map of fields for structured logging
func (e *APIError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": string(e.Kind),
		"status":     e.Status,
		"title":      e.Title,
		"error_code": e.Code,
	}
	if e.Dev != "" {
		fields["dev"] = e.Dev
	}
	if len(e.Fields) > 0 {
		fields["fields"] = e.Fields
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(status int, title string, code int64) *APIError {
	return &APIError{
		Kind:   KindHTTP,
		Status: status,
		Title:  title,
		Code:   code,
	}
}

// NewValidationError creates a validation error with field-level messages
func NewValidationError(title string, code int64, fields map[string]string) *APIError {
	return &APIError{
		Kind:   KindValidation,
		Status: http.StatusBadRequest,
		Title:  title,
		Code:   code,
		Fields: fields,
	}
}

// FromError converts any error into an APIError. Known sentinels keep their
// status and code; unknown errors become a 500 with the message hidden.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	status := HTTPStatus(err)
	title := err.Error()
	if status == http.StatusInternalServerError {
		title = ErrInternalServer.Error()
	}

	kind := KindHTTP
	if status == http.StatusBadRequest {
		kind = KindValidation
	}

	return &APIError{
		Kind:   kind,
		Status: status,
		Title:  title,
		Code:   ErrorCode(err),
		Err:    err,
	}
}

// IsNotFoundError checks if the error is a "not found" error
func IsNotFoundError(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsGatewayObjectMissing reports whether the gateway said the customer or
// card does not exist. Auth, rate limit and server failures return false.
func IsGatewayObjectMissing(err error) bool {
	return errors.Is(err, ErrGatewayObjectMissing)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindValidation
}
