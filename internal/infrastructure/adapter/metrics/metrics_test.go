package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	done := m.RequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpInFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))

	m.ObserveRequest("get", "/v1/accounts", http.StatusOK, 20*time.Millisecond, 3)
	m.ObserveRequest("GET", "/v1/accounts", http.StatusOK, 10*time.Millisecond, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/v1/accounts", "200")))
}

func TestObservePoolAndGateway(t *testing.T) {
	m := New()

	m.ObservePool(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3, WaitCount: 7, WaitDuration: 2 * time.Second})
	assert.Equal(t, 5.0, testutil.ToFloat64(m.poolOpen))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.poolWaitSec))

	m.ObserveGatewayCall("charge", nil, time.Second)
	m.ObserveGatewayCall("charge", errors.New("declined"), time.Second)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gatewayCalls.WithLabelValues("charge", "error")))

	m.TokensPurged(0)
	m.TokensPurged(4)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.tokensPurged))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/health", http.StatusOK, time.Millisecond, 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "smores_http_requests_total")
}
