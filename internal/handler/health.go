package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/textwise/text-analysis-service/internal/model"
)

// Health is the liveness probe used by load balancers and container
// platforms to verify that the service is running. It touches no external
// resource, so a failing probe always means the instance itself is down.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, model.HealthStatus{Status: "healthy"})
}
