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

const paymentsResource = "payments"

// PaymentHandler handles charges, deposits and refunds
type PaymentHandler struct {
	payments  usecase.PaymentUseCase
	resources usecase.ResourceUseCase
	renderer  *Renderer
	logger    coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(
	payments usecase.PaymentUseCase,
	resources usecase.ResourceUseCase,
	renderer *Renderer,
	logger coreport.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		payments:  payments,
		resources: resources,
		renderer:  renderer,
		logger:    logger,
	}
}

// Create handles POST /payments
func (h *PaymentHandler) Create(c *gin.Context) {
	res, err := h.resources.Resource(paymentsResource)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	var req dto.PaymentRequest
	if err := middleware.BindBody(c, res.Singular, &req); err != nil {
		middleware.Abort(c, err)
		return
	}
	if req.AccountID == 0 {
		middleware.Abort(c, errs.NewValidationError("Could not save payment", errs.CodeInvalidRequest,
			map[string]string{"account_id": "An account is required"}))
		return
	}

	payment, err := h.payments.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	h.logger.Info("Payment recorded", map[string]any{
		"payment_id": payment.ID,
		"account_id": payment.AccountID,
		"mode":       string(payment.Mode),
		"amount":     payment.Amount,
	})

	h.render(c, res, http.StatusCreated, dto.PaymentRecord(payment))
}

// Refund handles POST /payments/:id/refund
func (h *PaymentHandler) Refund(c *gin.Context) {
	res, err := h.resources.Resource(paymentsResource)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	id, ok := dto.ParseID(c.Param("id"))
	if !ok {
		middleware.Abort(c, fmt.Errorf("payment %q: %w", c.Param("id"), errs.ErrNotFound))
		return
	}

	refund, err := h.payments.Refund(c.Request.Context(), id)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	h.logger.Info("Payment refunded", map[string]any{
		"payment_id": id,
		"refund_id":  refund.ID,
		"amount":     refund.Amount,
	})

	h.render(c, res, http.StatusCreated, dto.PaymentRecord(refund))
}

func (h *PaymentHandler) render(c *gin.Context, res *search.Resource, status int, row search.Record) {
	result := &search.Result{Rows: []search.Record{row}}
	h.renderer.Envelope(c, status, dto.NewRecordEnvelope(res, result))
}
