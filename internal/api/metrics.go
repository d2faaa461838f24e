package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics use bounded label values only.
var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_searches_total",
		Help: "Searches run, by outcome",
	}, []string{"outcome"}) // found, no_path, invalid, budget, canceled, error

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "Wall time of a single search",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_expanded_nodes",
		Help:    "Cells finalized by a single search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	requestRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_http_rejected_total",
		Help: "Requests rejected before any search ran",
	}, []string{"reason"}) // rate_limit, too_large, bad_request

	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"}) // endpoint is the route pattern

	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	stepSessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gridpath_step_sessions_active",
		Help: "Open websocket step sessions",
	})
)

// RecordSearch records the outcome of one search.
func RecordSearch(outcome string, expanded int) {
	searchTotal.WithLabelValues(outcome).Inc()
	if expanded > 0 {
		searchExpanded.Observe(float64(expanded))
	}
}

// RecordSearchDuration records the wall time of one search.
func RecordSearchDuration(duration time.Duration) {
	searchDuration.Observe(duration.Seconds())
}

// RecordRejected increments the rejection counter.
// reason must be one of: "rate_limit", "too_large", "bad_request"
func RecordRejected(reason string) {
	requestRejected.WithLabelValues(reason).Inc()
}

// RecordRequest records HTTP request metrics.
func RecordRequest(method, endpoint string, status int, duration time.Duration) {
	requestLatency.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	requestTotal.WithLabelValues(method, endpoint, http.StatusText(status)).Inc()
}
