package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/time"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

var testCatalog = search.DefaultCatalog()

func init() {
	gin.SetMode(gin.TestMode)
}

func lookup(t *testing.T, name string) *search.Resource {
	t.Helper()
	res, ok := testCatalog.Lookup(name)
	require.True(t, ok, name)
	return res
}

func newTestRouter(debug bool) (*gin.Engine, *Renderer) {
	tp := timeprovider.FixedTimeProvider{At: testNow}
	router := gin.New()
	router.Use(middleware.RequestMeta(tp))
	router.Use(middleware.ErrorHandler(logger.NewNoopLogger()))
	return router, NewRenderer(debug, tp)
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, reader))
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeMeta(t *testing.T, env map[string]json.RawMessage) dto.Meta {
	t.Helper()
	var metas []dto.Meta
	require.NoError(t, json.Unmarshal(env["meta"], &metas))
	require.Len(t, metas, 1)
	return metas[0]
}

func decodeRows(t *testing.T, raw json.RawMessage) []map[string]any {
	t.Helper()
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(raw, &rows))
	return rows
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorItem {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	return resp.Errors[0]
}

func newRequest(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("X_AUTHORIZATION", token)
	}
	return req
}

func serveRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
