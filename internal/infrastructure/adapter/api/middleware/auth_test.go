package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	usecasemocks "github.com/amirhossein-jamali/smores-api/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestParseToken(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"Token: abc123", "abc123"},
		{"token:abc123", "abc123"},
		{"Token abc123", "abc123"},
		{"Bearer abc123", "abc123"},
		{"  abc123  ", "abc123"},
		{"Tokenized", "Tokenized"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseToken(tc.in))
		})
	}
}

func TestAuth(t *testing.T) {
	profile := &entity.Profile{UserID: 4, UserType: entity.UserTypeEmployee, Email: "staff@camp.test"}

	newRouter := func(auth *usecasemocks.MockAuthUseCase, opts AuthOptions) *gin.Engine {
		router := newTestRouter()
		router.GET("/accounts", Auth(auth, opts), func(c *gin.Context) {
			p, ok := CurrentProfile(c)
			if !ok {
				c.Status(http.StatusTeapot)
				return
			}
			c.JSON(http.StatusOK, gin.H{"user_id": p.UserID})
		})
		return router
	}

	t.Run("missing token", func(t *testing.T) {
		router := newRouter(usecasemocks.NewMockAuthUseCase(t), AuthOptions{Enabled: true})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/accounts", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, int64(errs.CodeMissingToken), decodeError(t, w).Code)
	})

	headers := map[string]string{
		"X_AUTHORIZATION": "Token: abc123",
		"X-Authorization": "Token abc123",
		"Authorization":   "Bearer abc123",
	}
	for name, value := range headers {
		t.Run("token from "+name, func(t *testing.T) {
			auth := usecasemocks.NewMockAuthUseCase(t)
			auth.EXPECT().Authenticate(mock.Anything, "abc123").Return(profile, nil).Once()
			router := newRouter(auth, AuthOptions{Enabled: true})

			req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
			req.Header.Set(name, value)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"user_id":4}`, w.Body.String())
		})
	}

	t.Run("expired token", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().Authenticate(mock.Anything, "old").Return(nil, errs.ErrTokenExpired).Once()
		router := newRouter(auth, AuthOptions{Enabled: true})

		req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
		req.Header.Set("X_AUTHORIZATION", "Token: old")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, int64(errs.CodeExpiredToken), decodeError(t, w).Code)
	})

	t.Run("security disabled impersonates", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().Impersonate(mock.Anything, uint64(4)).Return(profile, nil).Once()
		router := newRouter(auth, AuthOptions{Enabled: false, ImpersonateUserID: 4})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/accounts", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("impersonation failure", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().Impersonate(mock.Anything, uint64(99)).Return(nil, errors.New("db down")).Once()
		router := newRouter(auth, AuthOptions{Enabled: false, ImpersonateUserID: 99})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/accounts", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
