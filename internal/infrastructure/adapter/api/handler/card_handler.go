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

const cardsResource = "cards"

// CardHandler handles stored card requests that go through the payment gateway
type CardHandler struct {
	cards     usecase.CardUseCase
	resources usecase.ResourceUseCase
	renderer  *Renderer
	logger    coreport.Logger
}

// NewCardHandler creates a new card handler instance
func NewCardHandler(
	cards usecase.CardUseCase,
	resources usecase.ResourceUseCase,
	renderer *Renderer,
	logger coreport.Logger,
) *CardHandler {
	return &CardHandler{
		cards:     cards,
		resources: resources,
		renderer:  renderer,
		logger:    logger,
	}
}

// Create handles POST /cards
func (h *CardHandler) Create(c *gin.Context) {
	res, err := h.resources.Resource(cardsResource)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	var req dto.CardRequest
	if err := middleware.BindBody(c, res.Singular, &req); err != nil {
		middleware.Abort(c, err)
		return
	}
	if req.AccountID == 0 {
		middleware.Abort(c, errs.NewValidationError("Could not save card information", errs.CodeCardValidation,
			map[string]string{"account_id": "An account is required"}))
		return
	}

	card, err := h.cards.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	h.logger.Info("Card stored", map[string]any{
		"card_id":    card.ID,
		"account_id": card.AccountID,
		"last_four":  card.LastFour,
	})

	result := &search.Result{Rows: []search.Record{dto.CardRecord(card)}}
	h.renderer.Envelope(c, http.StatusCreated, dto.NewRecordEnvelope(res, result))
}

// Delete handles DELETE /cards/:id
func (h *CardHandler) Delete(c *gin.Context) {
	id, ok := dto.ParseID(c.Param("id"))
	if !ok {
		middleware.Abort(c, fmt.Errorf("card %q: %w", c.Param("id"), errs.ErrNotFound))
		return
	}

	if err := h.cards.Delete(c.Request.Context(), id); err != nil {
		middleware.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
