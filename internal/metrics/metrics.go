// Package metrics wires Prometheus instrumentation into the HTTP layer.
//
// Metrics:
//   - <ns>_http_requests_total: request count by method, route, status
//   - <ns>_http_request_duration_seconds: request duration histogram
//   - <ns>_analyzed_words_total / <ns>_analyzed_characters_total: running
//     totals over all successful analyses
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/textwise/text-analysis-service/internal/config"
)

// RequestMetrics owns a private registry so tests can build isolated
// instances and the exposition endpoint never leaks unrelated collectors.
type RequestMetrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	wordsTotal      prometheus.Counter
	charactersTotal prometheus.Counter
}

// New creates and registers all collectors under cfg.Namespace.
func New(cfg config.MetricsConfig) *RequestMetrics {
	m := &RequestMetrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		wordsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "analyzed_words_total",
			Help:      "Total number of words counted across all analyses",
		}),
		charactersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "analyzed_characters_total",
			Help:      "Total number of characters counted across all analyses",
		}),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.wordsTotal,
		m.charactersTotal,
	)
	return m
}

// Middleware times every request and counts it by route and final status.
// The route label uses the registered path pattern, not the raw URI, to keep
// label cardinality bounded.
func (m *RequestMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)
			m.requestsTotal.WithLabelValues(method, route, status).Inc()
			m.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// RecordAnalysis adds one analysis outcome to the running totals.
func (m *RequestMetrics) RecordAnalysis(words, characters int) {
	m.wordsTotal.Add(float64(words))
	m.charactersTotal.Add(float64(characters))
}

// Handler returns the Prometheus exposition handler for this registry.
func (m *RequestMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}
