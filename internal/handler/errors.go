package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/textwise/text-analysis-service/internal/model"
)

// JSONErrorHandler returns the central Echo error handler. Every error that
// escapes a handler — unknown routes, wrong methods, oversized bodies,
// panics caught by the recover middleware — is normalized to the same
// {"error": "<message>"} envelope the endpoints use, so clients never see an
// HTML or plain-text error page.
func JSONErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "Internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch code {
			case http.StatusNotFound:
				msg = "Endpoint not found"
			case http.StatusMethodNotAllowed:
				msg = "Method not allowed"
			case http.StatusRequestEntityTooLarge:
				msg = "Request body too large"
			default:
				if s, ok := he.Message.(string); ok {
					msg = s
				}
			}
		}

		if code >= http.StatusInternalServerError {
			log.Error("request failed", zap.Error(err))
		}

		if jsonErr := c.JSON(code, model.ErrorResponse{Error: msg}); jsonErr != nil {
			log.Error("writing error response failed", zap.Error(jsonErr))
		}
	}
}
