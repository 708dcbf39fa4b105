package usecase

import (
	"context"

	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
)

// ResourceUseCase defines CRUD over every catalog resource
type ResourceUseCase interface {
	// Resource returns the declaration of a resource by plural name
	Resource(name string) (*search.Resource, error)

	// List searches a resource
	List(ctx context.Context, name string, q *search.Query) (*search.Result, error)

	// Get returns one row with the relations requested by q
	Get(ctx context.Context, name string, id uint64, q *search.Query) (*search.Result, error)

	// Create runs the resource hooks, inserts the row and returns it
	Create(ctx context.Context, name string, record search.Record) (*search.Result, error)

	// Update runs the resource hooks, updates the row and returns it
	Update(ctx context.Context, name string, id uint64, record search.Record) (*search.Result, error)

	// Delete runs the resource hooks and removes the row
	Delete(ctx context.Context, name string, id uint64) error
}
