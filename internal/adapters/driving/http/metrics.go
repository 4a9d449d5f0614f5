package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects request-level Prometheus metrics for the API
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	searches prometheus.Counter
}

// NewMetrics creates a Metrics with its own registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snapseek_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "snapseek_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snapseek_searches_total",
			Help: "Executed image searches",
		}),
	}

	m.registry.MustRegister(m.requests, m.latency, m.searches)
	return m
}

// RecordRequest records one completed HTTP request
func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordSearch records one executed image search
func (m *Metrics) RecordSearch() {
	m.searches.Inc()
}

// Handler returns the scrape endpoint handler for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// routeLabel collapses request paths to a fixed route set so the metric
// label cardinality stays bounded.
func routeLabel(path string) string {
	switch path {
	case "/", "/health", "/metrics", "/auth/logout", "/auth/currentUser",
		"/api/search", "/api/history", "/api/topSearches":
		return path
	}
	if strings.HasPrefix(path, "/auth/") {
		if strings.HasSuffix(path, "/callback") {
			return "/auth/{provider}/callback"
		}
		return "/auth/{provider}"
	}
	return "other"
}
