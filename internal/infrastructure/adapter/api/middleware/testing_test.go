package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter returns an engine that renders errors like the API does
func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNoopLogger()))
	return router
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorItem {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	return resp.Errors[0]
}
