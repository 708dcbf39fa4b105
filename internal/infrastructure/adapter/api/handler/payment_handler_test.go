package handler

import (
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/smores-api/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupPaymentHandler(t *testing.T) (*usecasemocks.MockPaymentUseCase, *usecasemocks.MockResourceUseCase, *gin.Engine) {
	payments := usecasemocks.NewMockPaymentUseCase(t)
	resources := usecasemocks.NewMockResourceUseCase(t)
	router, renderer := newTestRouter(false)
	h := NewPaymentHandler(payments, resources, renderer, logger.NewNoopLogger())

	router.POST("/payments", middleware.JSONBody(), h.Create)
	router.POST("/payments/:id/refund", h.Refund)
	return payments, resources, router
}

func TestPaymentHandler_Create(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		amount string
	}{
		{"decimal string", `{"payment":{"accountId":7,"amount":"25.00","mode":"cash"}}`, "25.00"},
		{"json number", `{"accountId":7,"amount":25.5,"mode":"cash"}`, "25.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payments, resources, router := setupPaymentHandler(t)
			resources.EXPECT().Resource("payments").Return(lookup(t, "payments"), nil).Once()
			payments.EXPECT().
				Create(mock.Anything, mock.MatchedBy(func(in usecase.CreatePaymentInput) bool {
					return in.AccountID == 7 && in.Amount == tc.amount && in.Mode == "cash" && in.Card == nil && in.Check == nil
				})).
				Return(&entity.Payment{ID: 9, AccountID: 7, Amount: 2500, Mode: entity.PaymentModeCash, CreatedAt: testNow}, nil).Once()

			w := serve(router, http.MethodPost, "/payments", tc.body)

			require.Equal(t, http.StatusCreated, w.Code)
			rows := decodeRows(t, decodeEnvelope(t, w)["payment"])
			require.Len(t, rows, 1)
			assert.Equal(t, "25.00", rows[0]["amount"])
			assert.Equal(t, "cash", rows[0]["mode"])
		})
	}

	t.Run("check payment carries the check", func(t *testing.T) {
		payments, resources, router := setupPaymentHandler(t)
		resources.EXPECT().Resource("payments").Return(lookup(t, "payments"), nil).Once()
		payments.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in usecase.CreatePaymentInput) bool {
				return in.Check != nil &&
					in.Check.Number == "1001" &&
					in.Check.AccountID == 7 &&
					in.Check.Date.Format("2006-01-02") == "2026-03-01"
			})).
			Return(&entity.Payment{ID: 10, AccountID: 7, Amount: 10000, Mode: entity.PaymentModeCheck}, nil).Once()

		w := serve(router, http.MethodPost, "/payments",
			`{"accountId":7,"amount":"100","mode":"check","check":{"number":"1001","date":"2026-03-01","nameOnCheck":"Pat Smith"}}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("charge below minimum", func(t *testing.T) {
		payments, resources, router := setupPaymentHandler(t)
		resources.EXPECT().Resource("payments").Return(lookup(t, "payments"), nil).Once()
		payments.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, errs.NewValidationError("Charge amount must exceed $1.", errs.CodeChargeBelowMinimum, nil)).Once()

		w := serve(router, http.MethodPost, "/payments", `{"accountId":7,"amount":"0.50","mode":"credit","cardId":3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, int64(errs.CodeChargeBelowMinimum), decodeError(t, w).Code)
	})

	t.Run("payments disabled", func(t *testing.T) {
		payments, resources, router := setupPaymentHandler(t)
		resources.EXPECT().Resource("payments").Return(lookup(t, "payments"), nil).Once()
		payments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errs.ErrPaymentsDisabled).Once()

		w := serve(router, http.MethodPost, "/payments", `{"accountId":7,"amount":"5","cardId":3}`)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestPaymentHandler_Refund(t *testing.T) {
	t.Run("records the refund", func(t *testing.T) {
		payments, resources, router := setupPaymentHandler(t)
		original := uint64(9)
		resources.EXPECT().Resource("payments").Return(lookup(t, "payments"), nil).Once()
		payments.EXPECT().Refund(mock.Anything, uint64(9)).
			Return(&entity.Payment{ID: 11, AccountID: 7, Amount: -2500, Mode: entity.PaymentModeRefund, RefundOfID: &original}, nil).Once()

		w := serve(router, http.MethodPost, "/payments/9/refund", "")

		require.Equal(t, http.StatusCreated, w.Code)
		rows := decodeRows(t, decodeEnvelope(t, w)["payment"])
		assert.Equal(t, "-25.00", rows[0]["amount"])
		assert.Equal(t, float64(9), rows[0]["refund_of_id"])
	})

	t.Run("already refunded", func(t *testing.T) {
		payments, resources, router := setupPaymentHandler(t)
		resources.EXPECT().Resource("payments").Return(lookup(t, "payments"), nil).Once()
		payments.EXPECT().Refund(mock.Anything, uint64(9)).
			Return(nil, errs.NewValidationError("Payment cannot be refunded", errs.CodeRefundNotAllowed, nil)).Once()

		w := serve(router, http.MethodPost, "/payments/9/refund", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, int64(errs.CodeRefundNotAllowed), decodeError(t, w).Code)
	})
}
