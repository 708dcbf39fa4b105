package resource

import (
	"context"
	"fmt"
	"net/http"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
)

// PasswordHasher hashes passwords before they are stored
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// CardRemover removes a stored card from the payment gateway
type CardRemover interface {
	RemoveFromGateway(ctx context.Context, cardID uint64) error
}

// Service implements usecase.ResourceUseCase
type Service struct {
	catalog    *search.Catalog
	uow        persistence.UnitOfWork
	hasher     PasswordHasher
	secrets    coreport.SecretGenerator
	processors gateway.ProcessorProvider
	cards      CardRemover
	logger     coreport.Logger
	hooks      map[string]Hooks
}

// NewService creates the resource service. processors and cards may be nil,
// in which case gateway cleanup on delete is skipped.
func NewService(
	catalog *search.Catalog,
	uow persistence.UnitOfWork,
	hasher PasswordHasher,
	secrets coreport.SecretGenerator,
	processors gateway.ProcessorProvider,
	cards CardRemover,
	logger coreport.Logger,
) *Service {
	s := &Service{
		catalog:    catalog,
		uow:        uow,
		hasher:     hasher,
		secrets:    secrets,
		processors: processors,
		cards:      cards,
		logger:     logger,
	}
	s.hooks = s.defaultHooks()
	return s
}

// Resource returns the declaration of a resource by plural name
func (s *Service) Resource(name string) (*search.Resource, error) {
	res, ok := s.catalog.Lookup(name)
	if !ok {
		return nil, errs.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Unknown resource %q", name), errs.CodeNotFound).
			WithCause(errs.ErrNotFound)
	}
	return res, nil
}

// List searches a resource
func (s *Service) List(ctx context.Context, name string, q *search.Query) (*search.Result, error) {
	res, err := s.Resource(name)
	if err != nil {
		return nil, err
	}
	if q == nil {
		q = &search.Query{Page: 1, Limit: search.DefaultLimits.Default}
	}
	if err := res.Validate(q); err != nil {
		return nil, err
	}

	return s.uow.GetResourceRepository(ctx).Search(ctx, res, q)
}

// Get returns one row with the relations requested by q
func (s *Service) Get(ctx context.Context, name string, id uint64, q *search.Query) (*search.Result, error) {
	res, err := s.Resource(name)
	if err != nil {
		return nil, err
	}
	if q == nil {
		q = &search.Query{}
	}
	if err := res.Validate(&search.Query{With: q.With}); err != nil {
		return nil, err
	}

	return s.uow.GetResourceRepository(ctx).Get(ctx, res, id, q)
}

// Create runs the resource hooks, inserts the row and returns it
func (s *Service) Create(ctx context.Context, name string, record search.Record) (*search.Result, error) {
	res, err := s.Resource(name)
	if err != nil {
		return nil, err
	}
	if len(record) == 0 {
		return nil, errs.NewValidationError("Nothing to save", errs.CodeInvalidRequest, nil).
			WithDev("The request body did not contain any fields.")
	}

	hooks := s.hooks[name]
	values := res.Sanitize(record)

	var id uint64
	err = persistence.RunInTransaction(ctx, s.uow, func(txCtx context.Context) error {
		if hooks.BeforeCreate != nil {
			if err := hooks.BeforeCreate(txCtx, values); err != nil {
				return err
			}
		}

		var err error
		id, err = s.uow.GetResourceRepository(txCtx).Create(txCtx, res, values)
		if err != nil {
			return err
		}

		if hooks.AfterSave != nil {
			return hooks.AfterSave(txCtx, id, record, true)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to create record", map[string]any{
			"resource": name,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Record created", map[string]any{
		"resource": name,
		"id":       id,
	})

	return s.Get(ctx, name, id, nil)
}

// Update runs the resource hooks, updates the row and returns it
func (s *Service) Update(ctx context.Context, name string, id uint64, record search.Record) (*search.Result, error) {
	res, err := s.Resource(name)
	if err != nil {
		return nil, err
	}

	hooks := s.hooks[name]
	values := res.Sanitize(record)

	err = persistence.RunInTransaction(ctx, s.uow, func(txCtx context.Context) error {
		if hooks.BeforeUpdate != nil {
			if err := hooks.BeforeUpdate(txCtx, id, values); err != nil {
				return err
			}
		}

		if err := s.uow.GetResourceRepository(txCtx).Update(txCtx, res, id, values); err != nil {
			return err
		}

		if hooks.AfterSave != nil {
			return hooks.AfterSave(txCtx, id, record, false)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Record updated", map[string]any{
		"resource": name,
		"id":       id,
		"fields":   len(values),
	})

	return s.Get(ctx, name, id, nil)
}

// Delete runs the resource hooks and removes the row
func (s *Service) Delete(ctx context.Context, name string, id uint64) error {
	res, err := s.Resource(name)
	if err != nil {
		return err
	}

	hooks := s.hooks[name]

	err = persistence.RunInTransaction(ctx, s.uow, func(txCtx context.Context) error {
		if hooks.BeforeDelete != nil {
			if err := hooks.BeforeDelete(txCtx, id); err != nil {
				return err
			}
		}
		return s.uow.GetResourceRepository(txCtx).Delete(txCtx, res, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Record deleted", map[string]any{
		"resource": name,
		"id":       id,
	})
	return nil
}
