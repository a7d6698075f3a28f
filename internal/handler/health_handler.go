package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles the liveness probe endpoint
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Service is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
