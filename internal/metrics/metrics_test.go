package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/textwise/text-analysis-service/internal/config"
)

func testConfig() config.MetricsConfig {
	return config.MetricsConfig{
		Enabled:   true,
		Path:      "/metrics",
		Namespace: "test",
	}
}

func TestMiddlewareCountsRequests(t *testing.T) {
	m := New(testConfig())
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
	}

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/health", "200"))
	if got != 3 {
		t.Errorf("requests_total = %v, want 3", got)
	}
}

func TestMiddlewareLabelsErrorStatus(t *testing.T) {
	m := New(testConfig())
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/boom", "400"))
	if got != 1 {
		t.Errorf("requests_total for 400 = %v, want 1", got)
	}
}

func TestRecordAnalysis(t *testing.T) {
	m := New(testConfig())
	m.RecordAnalysis(6, 39)
	m.RecordAnalysis(2, 11)

	if got := testutil.ToFloat64(m.wordsTotal); got != 8 {
		t.Errorf("analyzed_words_total = %v, want 8", got)
	}
	if got := testutil.ToFloat64(m.charactersTotal); got != 50 {
		t.Errorf("analyzed_characters_total = %v, want 50", got)
	}
}

func TestHandlerServesExposition(t *testing.T) {
	m := New(testConfig())
	m.RecordAnalysis(1, 5)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "test_analyzed_words_total") {
		t.Errorf("exposition output missing namespaced counter:\n%s", rec.Body.String())
	}
}
