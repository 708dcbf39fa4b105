package handler

import (
	"fmt"
	"net/http"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ResourceHandler serves the generic CRUD endpoints of every catalog resource
type ResourceHandler struct {
	resources usecase.ResourceUseCase
	limits    search.Limits
	renderer  *Renderer
	logger    coreport.Logger
}

// NewResourceHandler creates a new resource handler instance
func NewResourceHandler(
	resources usecase.ResourceUseCase,
	limits search.Limits,
	renderer *Renderer,
	logger coreport.Logger,
) *ResourceHandler {
	return &ResourceHandler{
		resources: resources,
		limits:    limits,
		renderer:  renderer,
		logger:    logger,
	}
}

// List handles GET /<name>
func (h *ResourceHandler) List(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := h.resources.Resource(name)
		if err != nil {
			middleware.Abort(c, err)
			return
		}

		q, err := search.Parse(c.Request.URL.Query(), h.limits)
		if err != nil {
			middleware.Abort(c, err)
			return
		}

		result, err := h.resources.List(c.Request.Context(), name, q)
		if err != nil {
			middleware.Abort(c, err)
			return
		}

		h.renderer.Envelope(c, http.StatusOK, dto.NewListEnvelope(res, result, q))
	}
}

// Get handles GET /<name>/:id
func (h *ResourceHandler) Get(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, id, ok := h.target(c, name)
		if !ok {
			return
		}

		result, err := h.resources.Get(c.Request.Context(), name, id, search.ParseWith(c.Request.URL.Query()))
		if err != nil {
			middleware.Abort(c, err)
			return
		}

		h.renderer.Envelope(c, http.StatusOK, dto.NewRecordEnvelope(res, result))
	}
}

// Create handles POST /<name>
func (h *ResourceHandler) Create(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := h.resources.Resource(name)
		if err != nil {
			middleware.Abort(c, err)
			return
		}

		record := search.Record(middleware.Unwrap(middleware.Body(c), res.Singular))
		result, err := h.resources.Create(c.Request.Context(), name, record)
		if err != nil {
			middleware.Abort(c, err)
			return
		}

		h.renderer.Envelope(c, http.StatusCreated, dto.NewRecordEnvelope(res, result))
	}
}

// Update handles PUT and PATCH /<name>/:id
func (h *ResourceHandler) Update(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, id, ok := h.target(c, name)
		if !ok {
			return
		}

		record := search.Record(middleware.Unwrap(middleware.Body(c), res.Singular))
		result, err := h.resources.Update(c.Request.Context(), name, id, record)
		if err != nil {
			middleware.Abort(c, err)
			return
		}

		h.renderer.Envelope(c, http.StatusOK, dto.NewRecordEnvelope(res, result))
	}
}

// Delete handles DELETE /<name>/:id
func (h *ResourceHandler) Delete(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, id, ok := h.target(c, name)
		if !ok {
			return
		}

		if err := h.resources.Delete(c.Request.Context(), name, id); err != nil {
			middleware.Abort(c, err)
			return
		}

		h.logger.Info("Resource deleted", map[string]any{
			"resource": name,
			"id":       id,
		})
		c.Status(http.StatusNoContent)
	}
}

// target resolves the resource and the :id path parameter
func (h *ResourceHandler) target(c *gin.Context, name string) (*search.Resource, uint64, bool) {
	res, err := h.resources.Resource(name)
	if err != nil {
		middleware.Abort(c, err)
		return nil, 0, false
	}

	id, ok := dto.ParseID(c.Param("id"))
	if !ok {
		middleware.Abort(c, fmt.Errorf("%s %q: %w", res.Singular, c.Param("id"), errs.ErrNotFound))
		return nil, 0, false
	}
	return res, id, true
}
