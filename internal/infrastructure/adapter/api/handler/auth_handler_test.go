package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/smores-api/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthHandler(t *testing.T) (*usecasemocks.MockAuthUseCase, *gin.Engine) {
	auth := usecasemocks.NewMockAuthUseCase(t)
	router, renderer := newTestRouter(false)
	h := NewAuthHandler(auth, renderer, logger.NewNoopLogger())

	router.POST("/auth/login", middleware.JSONBody(), h.Login)
	router.GET("/auth/logout", h.Logout)
	router.GET("/auth/profile", middleware.Auth(auth, middleware.AuthOptions{Enabled: true}), h.Profile)
	return auth, router
}

func TestAuthHandler_Login(t *testing.T) {
	profile := &entity.Profile{
		Token:     "tok-1",
		ExpiresOn: testNow.Add(24 * time.Hour),
		UserID:    4,
		UserType:  entity.UserTypeEmployee,
		FirstName: "Camp",
		LastName:  "Director",
		Email:     "director@camp.test",
	}

	bodies := map[string]string{
		"flat":    `{"email":"director@camp.test","password":"s3cret"}`,
		"wrapped": `{"user":{"login":"director@camp.test","password":"s3cret"}}`,
		"camel":   `{"userName":"director@camp.test","password":"s3cret"}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			auth, router := setupAuthHandler(t)
			auth.EXPECT().Login(mock.Anything, "director@camp.test", "s3cret").Return(profile, nil).Once()

			w := serve(router, http.MethodPost, "/auth/login", body)

			require.Equal(t, http.StatusOK, w.Code)
			rows := decodeRows(t, decodeEnvelope(t, w)["profile"])
			require.Len(t, rows, 1)
			assert.Equal(t, "tok-1", rows[0]["token"])
			assert.Equal(t, "2026-03-03T09:30:00Z", rows[0]["expires_on"])
			assert.Equal(t, "Employee", rows[0]["user_type"])
		})
	}

	t.Run("missing credentials", func(t *testing.T) {
		_, router := setupAuthHandler(t)

		w := serve(router, http.MethodPost, "/auth/login", `{"email":""}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		item := decodeError(t, w)
		assert.Equal(t, int64(errs.CodeInvalidRequest), item.Code)
		assert.Len(t, item.ValidationList, 2)
	})

	t.Run("wrong password", func(t *testing.T) {
		auth, router := setupAuthHandler(t)
		auth.EXPECT().Login(mock.Anything, "director@camp.test", "nope").Return(nil, errs.ErrInvalidCredentials).Once()

		w := serve(router, http.MethodPost, "/auth/login", `{"email":"director@camp.test","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, int64(errs.CodeInvalidCredentials), decodeError(t, w).Code)
	})
}

func TestAuthHandler_LogoutAndProfile(t *testing.T) {
	t.Run("logout", func(t *testing.T) {
		auth, router := setupAuthHandler(t)
		auth.EXPECT().Logout(mock.Anything, "tok-1").Return(nil).Once()

		req := newRequest(http.MethodGet, "/auth/logout", "Token: tok-1")
		w := serveRequest(router, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("logout without token", func(t *testing.T) {
		_, router := setupAuthHandler(t)

		w := serve(router, http.MethodGet, "/auth/logout", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token is rejected after logout", func(t *testing.T) {
		auth, router := setupAuthHandler(t)
		auth.EXPECT().Logout(mock.Anything, "tok-1").Return(nil).Once()
		auth.EXPECT().Authenticate(mock.Anything, "tok-1").Return(nil, errs.ErrInvalidToken).Once()

		assert.Equal(t, http.StatusNoContent, serveRequest(router, newRequest(http.MethodGet, "/auth/logout", "Token: tok-1")).Code)

		w := serveRequest(router, newRequest(http.MethodGet, "/auth/profile", "Token: tok-1"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, int64(errs.CodeInvalidToken), decodeError(t, w).Code)
	})

	t.Run("profile", func(t *testing.T) {
		auth, router := setupAuthHandler(t)
		auth.EXPECT().Authenticate(mock.Anything, "tok-1").
			Return(&entity.Profile{UserID: 4, UserType: entity.UserTypeEmployee, Email: "director@camp.test"}, nil).Once()

		w := serveRequest(router, newRequest(http.MethodGet, "/auth/profile", "Token: tok-1"))

		require.Equal(t, http.StatusOK, w.Code)
		rows := decodeRows(t, decodeEnvelope(t, w)["profile"])
		assert.Equal(t, "director@camp.test", rows[0]["email"])
		assert.NotContains(t, rows[0], "token")
	})
}
