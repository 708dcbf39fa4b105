package persistence

import (
	"context"

	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
)

// ResourceRepository reads and writes any catalog resource
type ResourceRepository interface {
	// Search returns one page of rows matching q plus the eager loaded relations
	//
	// Possible errors:
	// - ErrUnknownField: If q names something the resource does not declare
	// - ErrDatabaseConnection: If database connection fails
	Search(ctx context.Context, res *search.Resource, q *search.Query) (*search.Result, error)

	// Get returns the row with the given key and the relations requested by q
	//
	// Possible errors:
	// - ErrNotFound: If the row doesn't exist
	Get(ctx context.Context, res *search.Resource, id uint64, q *search.Query) (*search.Result, error)

	// Create inserts the writable columns of record and returns the new key.
	// Resources with a parent get the parent row first.
	//
	// Possible errors:
	// - ErrDuplicateRecord: If a unique constraint rejects the row
	// - ErrConstraintViolation: If a foreign key or check fails
	Create(ctx context.Context, res *search.Resource, record search.Record) (uint64, error)

	// Update changes the writable columns of record on the given row
	//
	// Possible errors:
	// - ErrNotFound: If the row doesn't exist
	Update(ctx context.Context, res *search.Resource, id uint64, record search.Record) error

	// Delete removes the row, then its parent row
	//
	// Possible errors:
	// - ErrNotFound: If the row doesn't exist
	Delete(ctx context.Context, res *search.Resource, id uint64) error
}
