package handler

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/textwise/text-analysis-service/internal/analyzer"
	"github.com/textwise/text-analysis-service/internal/metrics"
	"github.com/textwise/text-analysis-service/internal/model"
)

// Error messages returned by the analyze endpoint. Clients match on these
// strings, so they are part of the API contract.
const (
	errContentType  = "Content-Type must be application/json"
	errInvalidJSON  = "Request body must be valid JSON"
	errTextNotStr   = "Field 'text' must be a string"
	errMissingField = "Missing required field: text"
)

// AnalyzeHandler bundles dependencies for the analyze endpoint.
type AnalyzeHandler struct {
	Log     *zap.Logger
	Metrics *metrics.RequestMetrics
}

func NewAnalyzeHandler(log *zap.Logger, m *metrics.RequestMetrics) *AnalyzeHandler {
	return &AnalyzeHandler{Log: log, Metrics: m}
}

// Analyze counts words and characters in the submitted text.
//
// Validation is a strict linear pipeline; the first failing step answers 400
// and nothing after it runs: content type, then body shape, then the text
// field. Wrong content type deliberately answers 400 rather than 415 to stay
// compatible with existing clients of the service.
func (h *AnalyzeHandler) Analyze(c echo.Context) error {
	mt, _, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	if err != nil || mt != echo.MIMEApplicationJSON {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: errContentType})
	}

	// Decode by hand instead of c.Bind: the accepted shape is exactly
	// {"text": <string>} and nothing else. Decoding into a raw map lets the
	// missing-field case answer before the unknown-field case, so a body
	// without "text" always gets the missing-field error.
	var obj map[string]json.RawMessage
	dec := json.NewDecoder(c.Request().Body)
	if err := dec.Decode(&obj); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: errInvalidJSON})
	}
	if dec.More() || obj == nil { // obj is nil when the body is literal null
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: errInvalidJSON})
	}

	raw, ok := obj["text"]
	if !ok {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: errMissingField})
	}
	if len(obj) > 1 {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: errInvalidJSON})
	}

	// Unmarshal of JSON null into a string is a silent no-op, so null has to
	// be ruled out explicitly.
	var text string
	if err := json.Unmarshal(raw, &text); err != nil || string(raw) == "null" {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: errTextNotStr})
	}

	res := analyzer.Analyze(text)

	if h.Metrics != nil {
		h.Metrics.RecordAnalysis(res.WordCount, res.CharacterCount)
	}
	h.Log.Info("analyzed text",
		zap.Int("word_count", res.WordCount),
		zap.Int("character_count", res.CharacterCount),
	)

	return c.JSON(http.StatusOK, res)
}
