package handler

import (
	"errors"
	"fmt"
	"net/http"

	"wardrobe-service/internal/model"
	"wardrobe-service/pkg/database"
	"wardrobe-service/pkg/logger"
	"wardrobe-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InspirationRequest defines the structure for inspiration creation/update requests
type InspirationRequest struct {
	Title       string   `json:"title"`
	Image       string   `json:"image"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

func (r *InspirationRequest) toModel() model.Inspiration {
	inspiration := model.Inspiration{
		Title: r.Title,
		Image: r.Image,
		Tags:  model.StringList(r.Tags),
	}
	if r.Description != nil {
		inspiration.Description = *r.Description
	}
	if inspiration.Tags == nil {
		inspiration.Tags = model.StringList{}
	}
	return inspiration
}

// ListInspirations handles retrieving all inspirations
func ListInspirations(c echo.Context) error {
	log := logger.FromContext(c)

	var inspirations []model.Inspiration
	result := database.GetDB().Order("created_at DESC, id DESC").Find(&inspirations)
	if result.Error != nil {
		log.Error("Failed to list inspirations", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to retrieve inspirations", result.Error))
	}

	if inspirations == nil {
		inspirations = []model.Inspiration{}
	}

	log.Info("Inspirations retrieved successfully", zap.Int("count", len(inspirations)))
	return c.JSON(http.StatusOK, listEnvelope(inspirations, len(inspirations)))
}

// GetInspiration handles retrieving a single inspiration by ID
func GetInspiration(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var inspiration model.Inspiration
	result := database.GetDB().First(&inspiration, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn("Inspiration not found", zap.String("inspiration_id", id))
			return c.JSON(http.StatusNotFound, failEnvelope("Inspiration not found"))
		}
		log.Error("Failed to get inspiration", zap.String("inspiration_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to retrieve inspiration", result.Error))
	}

	return c.JSON(http.StatusOK, dataEnvelope(inspiration))
}

// CreateInspiration handles creating a new inspiration
func CreateInspiration(c echo.Context) error {
	log := logger.FromContext(c)

	var req InspirationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid request data"))
	}

	if req.Title == "" || req.Image == "" {
		log.Warn("Missing required inspiration fields", zap.String("title", req.Title))
		return c.JSON(http.StatusBadRequest, failEnvelope("Missing required fields: title, image"))
	}

	inspiration := req.toModel()
	result := database.GetDB().Create(&inspiration)
	if result.Error != nil {
		log.Error("Failed to create inspiration", zap.String("title", req.Title), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to create inspiration", result.Error))
	}

	var created model.Inspiration
	if err := database.GetDB().First(&created, inspiration.ID).Error; err != nil {
		log.Error("Failed to read back created inspiration", zap.Uint("inspiration_id", inspiration.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to create inspiration", err))
	}

	prometheus.RecordInspirationOperation("create")
	log.Info("Inspiration created successfully",
		zap.Uint("inspiration_id", created.ID),
		zap.String("title", created.Title))
	return c.JSON(http.StatusCreated, messageEnvelope("Inspiration created successfully", created))
}

// UpdateInspiration handles replacing an existing inspiration
func UpdateInspiration(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req InspirationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("inspiration_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid request data"))
	}

	var inspiration model.Inspiration
	result := database.GetDB().First(&inspiration, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn("Inspiration not found for update", zap.String("inspiration_id", id))
			return c.JSON(http.StatusNotFound, failEnvelope("Inspiration not found"))
		}
		log.Error("Failed to load inspiration for update", zap.String("inspiration_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to update inspiration", result.Error))
	}

	replacement := req.toModel()
	replacement.ID = inspiration.ID
	replacement.CreatedAt = inspiration.CreatedAt

	result = database.GetDB().Save(&replacement)
	if result.Error != nil {
		log.Error("Failed to update inspiration", zap.String("inspiration_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to update inspiration", result.Error))
	}

	prometheus.RecordInspirationOperation("update")
	log.Info("Inspiration updated successfully", zap.Uint("inspiration_id", replacement.ID))
	return c.JSON(http.StatusOK, messageEnvelope("Inspiration updated successfully", replacement))
}

// DeleteInspiration handles deleting an inspiration
func DeleteInspiration(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	result := database.GetDB().Delete(&model.Inspiration{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete inspiration", zap.String("inspiration_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to delete inspiration", result.Error))
	}

	if result.RowsAffected == 0 {
		log.Warn("Inspiration not found for deletion", zap.String("inspiration_id", id))
		return c.JSON(http.StatusNotFound, failEnvelope("Inspiration not found"))
	}

	prometheus.RecordInspirationOperation("delete")
	log.Info("Inspiration deleted successfully", zap.String("inspiration_id", id))
	return c.JSON(http.StatusOK, messageEnvelope("Inspiration deleted successfully", nil))
}

// BatchCreateInspirations handles transactional bulk import of inspirations
func BatchCreateInspirations(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Inspirations []InspirationRequest `json:"inspirations"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid batch payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid batch payload"))
	}
	if len(req.Inspirations) == 0 {
		log.Warn("Empty inspiration batch rejected")
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid batch payload"))
	}

	for i, record := range req.Inspirations {
		if record.Title == "" || record.Image == "" {
			log.Warn("Malformed record in inspiration batch", zap.Int("index", i))
			return c.JSON(http.StatusBadRequest,
				failEnvelope(fmt.Sprintf("Record %d is missing required fields: title, image", i)))
		}
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Inspirations {
			inspiration := entry.toModel()
			if err := tx.Create(&inspiration).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("Inspiration batch import failed", zap.Int("size", len(req.Inspirations)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to import inspirations", err))
	}

	prometheus.RecordBatchImport("inspirations", len(req.Inspirations))
	log.Info("Inspiration batch imported", zap.Int("count", len(req.Inspirations)))
	return c.JSON(http.StatusOK, messageEnvelope(fmt.Sprintf("Imported %d inspirations", len(req.Inspirations)), nil))
}
