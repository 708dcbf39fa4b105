package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "smores"

// Metrics holds the service collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	dbQueries    prometheus.Histogram

	poolOpen    prometheus.Gauge
	poolInUse   prometheus.Gauge
	poolIdle    prometheus.Gauge
	poolWaits   prometheus.Gauge
	poolWaitSec prometheus.Gauge

	gatewayCalls    *prometheus.CounterVec
	gatewayDuration *prometheus.HistogramVec
	tokensPurged    prometheus.Counter
}

// New creates the collectors and registers them with a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		dbQueries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "queries_per_request",
			Help:      "Number of SQL statements issued while serving one request.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64},
		}),
		poolOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "open_connections",
			Help:      "Open database connections.",
		}),
		poolInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "in_use_connections",
			Help:      "Database connections currently in use.",
		}),
		poolIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "idle_connections",
			Help:      "Idle database connections.",
		}),
		poolWaits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "wait_count",
			Help:      "Total number of connections waited for.",
		}),
		poolWaitSec: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "wait_duration_seconds",
			Help:      "Total time blocked waiting for a connection.",
		}),
		gatewayCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Payment gateway calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		gatewayDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "call_duration_seconds",
			Help:      "Duration of payment gateway calls.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8),
		}, []string{"operation"}),
		tokensPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "tokens_purged_total",
			Help:      "Expired session tokens removed.",
		}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.dbQueries,
		m.poolOpen,
		m.poolInUse,
		m.poolIdle,
		m.poolWaits,
		m.poolWaitSec,
		m.gatewayCalls,
		m.gatewayDuration,
		m.tokensPurged,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Registry exposes the registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registered metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RequestStarted increments the in-flight gauge and returns its decrement
func (m *Metrics) RequestStarted() func() {
	m.httpInFlight.Inc()
	return m.httpInFlight.Dec
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration, queries int64) {
	if route == "" {
		route = "unmatched"
	}
	method = strings.ToUpper(method)
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
	if queries > 0 {
		m.dbQueries.Observe(float64(queries))
	}
}

// ObservePool copies connection pool statistics into gauges
func (m *Metrics) ObservePool(stats sql.DBStats) {
	m.poolOpen.Set(float64(stats.OpenConnections))
	m.poolInUse.Set(float64(stats.InUse))
	m.poolIdle.Set(float64(stats.Idle))
	m.poolWaits.Set(float64(stats.WaitCount))
	m.poolWaitSec.Set(stats.WaitDuration.Seconds())
}

// ObserveGatewayCall records one payment gateway round trip
func (m *Metrics) ObserveGatewayCall(operation string, err error, duration time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.gatewayCalls.WithLabelValues(operation, outcome).Inc()
	m.gatewayDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// TokensPurged adds purged session tokens to the counter
func (m *Metrics) TokensPurged(n int64) {
	if n > 0 {
		m.tokensPurged.Add(float64(n))
	}
}
