package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/textwise/text-analysis-service/internal/model"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = JSONErrorHandler(zap.NewNop())
	e.GET("/health", Health)
	e.GET("/boom", func(c echo.Context) error { return errors.New("kaput") })
	return e
}

func TestJSONErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/nope",
			wantStatus: http.StatusNotFound,
			wantError:  "Endpoint not found",
		},
		{
			name:       "wrong method",
			method:     http.MethodDelete,
			path:       "/health",
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "Method not allowed",
		},
		{
			name:       "handler failure",
			method:     http.MethodGet,
			path:       "/boom",
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	e := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var res model.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
				t.Fatalf("unmarshal body %q: %v", rec.Body.String(), err)
			}
			if res.Error != tt.wantError {
				t.Errorf("error = %q, want %q", res.Error, tt.wantError)
			}
		})
	}
}

// A failing request must not poison the process; the server keeps answering.
func TestServerSurvivesBadRequests(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("boom status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("health after failure = %d, want 200", rec.Code)
	}
}
