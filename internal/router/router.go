package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/textwise/text-analysis-service/internal/config"
	"github.com/textwise/text-analysis-service/internal/handler"
	"github.com/textwise/text-analysis-service/internal/metrics"
)

// RegisterRoutes wires the service's HTTP surface onto the provided Echo
// instance: the health probe used by load balancers and the analysis
// endpoint itself. The rate limiter is applied to /analyze only; the probe
// must keep answering even when a client has exhausted its bucket, or a 429
// would read as instance unavailability.
func RegisterRoutes(e *echo.Echo, a *handler.AnalyzeHandler, limiter echo.MiddlewareFunc) {
	e.GET("/health", handler.Health)
	e.POST("/analyze", a.Analyze, limiter)
}

// RegisterMetrics exposes the Prometheus endpoint when metrics are enabled.
// It is registered separately so the scrape path never exists when the
// operator turns metrics off.
func RegisterMetrics(e *echo.Echo, cfg config.MetricsConfig, m *metrics.RequestMetrics) {
	if !cfg.Enabled || m == nil {
		return
	}
	e.GET(cfg.Path, echo.WrapHandler(m.Handler()))
}
