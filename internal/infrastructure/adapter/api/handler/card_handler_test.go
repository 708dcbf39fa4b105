package handler

import (
	"errors"
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

func setupCardHandler(t *testing.T) (*usecasemocks.MockCardUseCase, *usecasemocks.MockResourceUseCase, *gin.Engine) {
	cards := usecasemocks.NewMockCardUseCase(t)
	resources := usecasemocks.NewMockResourceUseCase(t)
	router, renderer := newTestRouter(false)
	h := NewCardHandler(cards, resources, renderer, logger.NewNoopLogger())

	router.POST("/cards", middleware.JSONBody(), h.Create)
	router.DELETE("/cards/:id", h.Delete)
	return cards, resources, router
}

func TestCardHandler_Create(t *testing.T) {
	const body = `{"card":{"accountId":7,"nameOnCard":"Ada Camper","number":"4242 4242 4242 4242","cvc":"123","expirationMonth":4,"expirationYear":2027,"zip":"02139"}}`

	t.Run("stores the card", func(t *testing.T) {
		cards, resources, router := setupCardHandler(t)
		resources.EXPECT().Resource("cards").Return(lookup(t, "cards"), nil).Once()
		cards.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in usecase.CreateCardInput) bool {
				return in.AccountID == 7 &&
					in.Details.NameOnCard == "Ada Camper" &&
					in.Details.Number == "4242 4242 4242 4242" &&
					in.Details.ExpirationMonth == 4 &&
					in.Details.ExpirationYear == 2027
			})).
			Return(&entity.Card{
				ID:              3,
				AccountID:       7,
				ExternalID:      "card_123",
				NameOnCard:      "Ada Camper",
				LastFour:        "4242",
				Vendor:          "Visa",
				ExpirationMonth: 4,
				ExpirationYear:  2027,
				Active:          true,
				CreatedAt:       testNow,
			}, nil).Once()

		w := serve(router, http.MethodPost, "/cards", body)

		require.Equal(t, http.StatusCreated, w.Code)
		rows := decodeRows(t, decodeEnvelope(t, w)["card"])
		require.Len(t, rows, 1)
		assert.Equal(t, "4242", rows[0]["last_four"])
		assert.Equal(t, "card_123", rows[0]["external_id"])
		assert.NotContains(t, rows[0], "number")
		assert.NotContains(t, rows[0], "cvc")
	})

	t.Run("account is required", func(t *testing.T) {
		_, resources, router := setupCardHandler(t)
		resources.EXPECT().Resource("cards").Return(lookup(t, "cards"), nil).Once()

		w := serve(router, http.MethodPost, "/cards", `{"number":"4242424242424242"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeCardValidation, decodeError(t, w).Code)
	})

	t.Run("gateway rejects the card", func(t *testing.T) {
		cards, resources, router := setupCardHandler(t)
		resources.EXPECT().Resource("cards").Return(lookup(t, "cards"), nil).Once()
		cards.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, errs.NewValidationError("Error: Your card was declined.", errs.CodeCardDeclined, map[string]string{"field": "Your card was declined."})).Once()

		w := serve(router, http.MethodPost, "/cards", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		item := decodeError(t, w)
		assert.Equal(t, errs.CodeCardDeclined, item.Code)
		assert.Equal(t, "Error: Your card was declined.", item.Title)
	})
}

func TestCardHandler_Delete(t *testing.T) {
	t.Run("removes the card", func(t *testing.T) {
		cards, _, router := setupCardHandler(t)
		cards.EXPECT().Delete(mock.Anything, uint64(3)).Return(nil).Once()

		w := serve(router, http.MethodDelete, "/cards/3", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		_, _, router := setupCardHandler(t)

		w := serve(router, http.MethodDelete, "/cards/0", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("gateway failure", func(t *testing.T) {
		cards, _, router := setupCardHandler(t)
		cards.EXPECT().Delete(mock.Anything, uint64(3)).
			Return(errs.NewHTTPError(http.StatusNotFound, "Could not save Payment Information for account", errs.CodeGatewayFailure).
				WithCause(errors.New("connection reset"))).Once()

		w := serve(router, http.MethodDelete, "/cards/3", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, errs.CodeGatewayFailure, decodeError(t, w).Code)
	})
}
