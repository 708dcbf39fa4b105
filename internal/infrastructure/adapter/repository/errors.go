package repository

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	NotFoundError     ErrorType = "not_found"
	DuplicateKeyError ErrorType = "duplicate_key"
	ConstraintError   ErrorType = "constraint"
	LockError         ErrorType = "lock"
	TransientError    ErrorType = "transient"
	ConnectionError   ErrorType = "connection"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgNotNullViolation     = "23502"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgTooManyConnections   = "53300"
	pgAdminShutdown        = "57P01"
)

// ErrorClassifier sorts driver errors into the categories repositories care about
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or "" when it is not recognised
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return DuplicateKeyError
		case pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
			return ConstraintError
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return LockError
		case pgTooManyConnections, pgAdminShutdown:
			return ConnectionError
		}
		return ""
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint"):
		return DuplicateKeyError
	case strings.Contains(msg, "foreign key") || strings.Contains(msg, "check constraint") ||
		strings.Contains(msg, "violates not-null"):
		return ConstraintError
	case strings.Contains(msg, "deadlock") || strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "lock timeout"):
		return LockError
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no connection") || strings.Contains(msg, "dial"):
		return ConnectionError
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed") || strings.Contains(msg, "eof"):
		return TransientError
	}
	return ""
}

// IsTransient reports whether retrying the operation may succeed
func (c *ErrorClassifier) IsTransient(err error) bool {
	switch c.Classify(err) {
	case LockError, TransientError, ConnectionError:
		return true
	}
	return false
}

var classifier = NewErrorClassifier()

// MapError converts a driver error into a domain error. Errors that are
// already domain errors pass through.
func MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	var apiErr *errs.APIError
	if errors.As(err, &apiErr) || errors.Is(err, errs.ErrNotFound) {
		return err
	}

	switch classifier.Classify(err) {
	case NotFoundError:
		return fmt.Errorf("%s: %w", operation, errs.ErrNotFound)
	case DuplicateKeyError:
		return errs.NewHTTPError(http.StatusConflict, "Record already exists", errs.CodeDuplicateRecord).
			WithDev(pgDetail(err)).
			WithCause(errs.ErrDuplicateRecord)
	case ConstraintError:
		return errs.NewHTTPError(http.StatusConflict, "The change conflicts with related records", errs.CodeConstraintViolation).
			WithDev(pgDetail(err)).
			WithCause(errs.ErrConstraintViolation)
	case LockError, TransientError, ConnectionError:
		return fmt.Errorf("%w: %s: %v", errs.ErrDatabaseConnection, operation, err)
	default:
		return fmt.Errorf("%s: %w", operation, err)
	}
}

func pgDetail(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Detail != "" {
			return pgErr.Detail
		}
		return pgErr.Message
	}
	return err.Error()
}
