package persistence

import (
	"context"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
)

// AccountRepository covers the account operations outside plain CRUD
type AccountRepository interface {
	// GetByID retrieves an account
	//
	// Possible errors:
	// - ErrNotFound: If the account doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// SetExternalID stores the payment gateway customer id
	SetExternalID(ctx context.Context, id uint64, externalID string) error

	// MemberUserIDs lists the users behind the account's owners and attendees
	MemberUserIDs(ctx context.Context, accountID uint64) ([]uint64, error)

	// HasPayments reports whether any payment or refund is booked on the account
	HasPayments(ctx context.Context, accountID uint64) (bool, error)

	// DeleteUsers removes users and their owner/attendee/employee rows
	DeleteUsers(ctx context.Context, userIDs []uint64) error
}

// CustomFieldRepository stores administrator defined account attributes
type CustomFieldRepository interface {
	// ActiveFields lists active custom fields declared for a table
	ActiveFields(ctx context.Context, table string) ([]entity.CustomField, error)

	// UpsertValue creates or replaces the value of one field for one account
	UpsertValue(ctx context.Context, value *entity.CustomFieldValue) error
}

// SettingRepository reads administrator settings
type SettingRepository interface {
	// GetValue returns the value of the named setting
	//
	// Possible errors:
	// - ErrNotFound: If no setting has that name
	GetValue(ctx context.Context, name string) (string, error)

	// Ensure creates the setting when missing and leaves an existing value alone
	Ensure(ctx context.Context, setting *entity.Setting) error
}
