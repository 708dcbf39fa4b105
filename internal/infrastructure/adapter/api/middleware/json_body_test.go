package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeCase(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"firstName", "first_name"},
		{"FirstName", "first_name"},
		{"accountID", "account_id"},
		{"HTTPStatus", "http_status"},
		{"address2Line", "address2_line"},
		{"first_name", "first_name"},
		{"Last_Name", "last_name"},
		{"email", "email"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, SnakeCase(tc.in))
		})
	}
}

func TestJSONBody(t *testing.T) {
	var captured map[string]any
	router := newTestRouter()
	router.POST("/attendees", JSONBody(), func(c *gin.Context) {
		captured = Body(c)
		c.Status(http.StatusCreated)
	})

	send := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/attendees", strings.NewReader(body)))
		return w
	}

	t.Run("keys are snake cased at every depth", func(t *testing.T) {
		w := send(`{"firstName":"Ada","accountInfo":{"zipCode":"12345"},"tags":[{"tagName":"x"}],"age":11,"ratio":1.5}`)
		require.Equal(t, http.StatusCreated, w.Code)

		assert.Equal(t, "Ada", captured["first_name"])
		assert.Equal(t, int64(11), captured["age"])
		assert.Equal(t, 1.5, captured["ratio"])
		assert.Equal(t, "12345", captured["account_info"].(map[string]any)["zip_code"])
		assert.Equal(t, "x", captured["tags"].([]any)[0].(map[string]any)["tag_name"])
	})

	invalid := map[string]string{
		"empty":     "",
		"truncated": `{"first_name":`,
		"array":     `[1,2]`,
		"null":      `null`,
		"trailing":  `{"a":1}{"b":2}`,
	}
	for name, body := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			w := send(body)

			assert.Equal(t, http.StatusConflict, w.Code)
			item := decodeError(t, w)
			assert.Equal(t, int64(errs.CodeInvalidJSON), item.Code)
			assert.Equal(t, invalidJSONTitle, item.Title)
			assert.Equal(t, invalidJSONDev, item.Dev)
		})
	}
}

func TestUnwrap(t *testing.T) {
	inner := map[string]any{"name": "Smith Family"}

	assert.Equal(t, inner, Unwrap(map[string]any{"account": inner}, "account"))
	assert.Equal(t, inner, Unwrap(map[string]any{"account": []any{inner}}, "account"))

	flat := map[string]any{"name": "Smith Family", "account": "x"}
	assert.Equal(t, flat, Unwrap(flat, "account"))

	other := map[string]any{"event": inner}
	assert.Equal(t, other, Unwrap(other, "account"))
}

func TestBindBody(t *testing.T) {
	type target struct {
		AccountID uint64 `json:"account_id"`
		Name      string `json:"name"`
	}

	var got target
	router := newTestRouter()
	router.POST("/cards", JSONBody(), func(c *gin.Context) {
		if err := BindBody(c, "card", &got); err != nil {
			Abort(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader(`{"card":{"accountId":7,"name":"Visa"}}`)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, target{AccountID: 7, Name: "Visa"}, got)
}
