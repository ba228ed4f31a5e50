package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

const namespace = "gemasgo"

// Prometheus implements core.Metrics and the HTTP/rate limit instrumentation
type Prometheus struct {
	registry *prometheus.Registry

	settlements        *prometheus.CounterVec
	settlementDuration *prometheus.HistogramVec
	pointsCredited     *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	rateLimited        *prometheus.CounterVec
}

var _ core.Metrics = (*Prometheus)(nil)

// NewPrometheus registers every collector on a fresh registry, plus the Go and process collectors
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Settlement attempts by operation and outcome",
		}, []string{"operation", "outcome"}),
		settlementDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_duration_seconds",
			Help:      "Time from enqueue to commit or rejection",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		pointsCredited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_credited_total",
			Help:      "Points paid out to accounts by source",
		}, []string{"source"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}, []string{"route"}),
	}

	p.registry.MustRegister(
		p.settlements,
		p.settlementDuration,
		p.pointsCredited,
		p.httpRequests,
		p.httpDuration,
		p.rateLimited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

// RegisterDB exposes connection pool statistics for db
func (p *Prometheus) RegisterDB(db *sql.DB, name string) error {
	return p.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// RecordSettlement counts one settlement attempt
func (p *Prometheus) RecordSettlement(operation, outcome string, elapsed core.Duration) {
	p.settlements.WithLabelValues(operation, outcome).Inc()
	p.settlementDuration.WithLabelValues(operation).Observe(elapsed.Std().Seconds())
}

// AddPointsCredited counts points paid out by source
func (p *Prometheus) AddPointsCredited(source string, points int64) {
	if points <= 0 {
		return
	}
	p.pointsCredited.WithLabelValues(source).Add(float64(points))
}

// ObserveHTTP records one finished request
func (p *Prometheus) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RateLimited counts one rejected request
func (p *Prometheus) RateLimited(route string) {
	p.rateLimited.WithLabelValues(route).Inc()
}

// Handler serves the registry in the text exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
