package handler

import (
	"net/http"

	"wardrobe-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the API surface and the envelope-shaped error
// handler on e. Tests mount the same router on an httptest server.
func RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = errorHandler

	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", HealthCheck)

	// Aggregation endpoints
	api.GET("/statistics", GetItemStatistics)
	api.GET("/outfit-statistics", GetOutfitStatistics)

	// Wardrobe item routes
	items := api.Group("/items")
	items.GET("", ListItems)
	items.POST("", CreateItem)
	items.POST("/batch", BatchCreateItems)
	items.GET("/:id", GetItem)
	items.PUT("/:id", UpdateItem)
	items.DELETE("/:id", DeleteItem)

	// Outfit record routes
	outfits := api.Group("/outfits")
	outfits.GET("", ListOutfits)
	outfits.POST("", CreateOutfit)
	outfits.POST("/batch", BatchCreateOutfits)
	outfits.GET("/:id", GetOutfit)
	outfits.PUT("/:id", UpdateOutfit)
	outfits.DELETE("/:id", DeleteOutfit)

	// Inspiration routes
	inspirations := api.Group("/inspirations")
	inspirations.GET("", ListInspirations)
	inspirations.POST("", CreateInspiration)
	inspirations.POST("/batch", BatchCreateInspirations)
	inspirations.GET("/:id", GetInspiration)
	inspirations.PUT("/:id", UpdateInspiration)
	inspirations.DELETE("/:id", DeleteInspiration)
}

// errorHandler converts unhandled errors into the uniform envelope:
// unmatched routes become a 404 envelope, everything else a 500 with the
// underlying cause exposed for diagnostics.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		switch {
		case code == http.StatusNotFound:
			message = "Route not found"
		case code == http.StatusMethodNotAllowed:
			message = "Method not allowed"
		default:
			if text, ok := httpErr.Message.(string); ok {
				message = text
			}
		}
	}

	var writeErr error
	if code >= http.StatusInternalServerError {
		logger.FromContext(c).Error("Request failed", zap.Int("status", code), zap.Error(err))
		writeErr = c.JSON(code, errorEnvelope(message, err))
	} else {
		writeErr = c.JSON(code, failEnvelope(message))
	}
	if writeErr != nil {
		logger.FromContext(c).Error("Failed to write error response", zap.Error(writeErr))
	}
}
