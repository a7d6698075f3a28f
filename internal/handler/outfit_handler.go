package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"wardrobe-service/internal/model"
	"wardrobe-service/pkg/database"
	"wardrobe-service/pkg/logger"
	"wardrobe-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OutfitRequest defines the structure for outfit record creation/update
// requests. Items is free text describing what was worn.
type OutfitRequest struct {
	Date   string  `json:"date"`
	Image  *string `json:"image"`
	Season string  `json:"season"`
	Style  string  `json:"style"`
	Scene  string  `json:"scene"`
	Items  *string `json:"items"`
	Notes  *string `json:"notes"`
	Rating *int    `json:"rating"`
}

func (r *OutfitRequest) toModel() model.OutfitRecord {
	record := model.OutfitRecord{
		Date:   r.Date,
		Image:  r.Image,
		Season: r.Season,
		Style:  r.Style,
		Scene:  r.Scene,
	}
	if r.Items != nil {
		record.Items = *r.Items
	}
	if r.Notes != nil {
		record.Notes = *r.Notes
	}
	if r.Rating != nil {
		record.Rating = *r.Rating
	}
	return record
}

// ListOutfits handles retrieving all outfit records with optional filtering
func ListOutfits(c echo.Context) error {
	log := logger.FromContext(c)

	db := database.GetDB()
	query := db.Model(&model.OutfitRecord{})

	// Filter by season if specified
	season := c.QueryParam("season")
	if season != "" {
		query = query.Where("season = ?", season)
		log.Info("Filtering outfits by season", zap.String("season", season))
	}

	// Filter by style if specified
	style := c.QueryParam("style")
	if style != "" {
		query = query.Where("style = ?", style)
		log.Info("Filtering outfits by style", zap.String("style", style))
	}

	// Filter by scene if specified
	scene := c.QueryParam("scene")
	if scene != "" {
		query = query.Where("scene = ?", scene)
		log.Info("Filtering outfits by scene", zap.String("scene", scene))
	}

	// Free-text search over the worn items and notes
	search := c.QueryParam("search")
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(items) LIKE ? OR LOWER(notes) LIKE ?)", term, term)
		log.Info("Searching outfits", zap.String("search", search))
	}

	var records []model.OutfitRecord
	result := query.Order("date DESC, created_at DESC, id DESC").Find(&records)
	if result.Error != nil {
		log.Error("Failed to list outfit records", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to retrieve outfit records", result.Error))
	}

	if records == nil {
		records = []model.OutfitRecord{}
	}

	log.Info("Outfit records retrieved successfully", zap.Int("count", len(records)))
	return c.JSON(http.StatusOK, listEnvelope(records, len(records)))
}

// GetOutfit handles retrieving a single outfit record by ID
func GetOutfit(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var record model.OutfitRecord
	result := database.GetDB().First(&record, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn("Outfit record not found", zap.String("outfit_id", id))
			return c.JSON(http.StatusNotFound, failEnvelope("Outfit record not found"))
		}
		log.Error("Failed to get outfit record", zap.String("outfit_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to retrieve outfit record", result.Error))
	}

	return c.JSON(http.StatusOK, dataEnvelope(record))
}

// CreateOutfit handles creating a new outfit record
func CreateOutfit(c echo.Context) error {
	log := logger.FromContext(c)

	var req OutfitRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid request data"))
	}

	if req.Date == "" || req.Season == "" || req.Style == "" || req.Scene == "" {
		log.Warn("Missing required outfit fields", zap.String("date", req.Date))
		return c.JSON(http.StatusBadRequest, failEnvelope("Missing required fields: date, season, style, scene"))
	}

	record := req.toModel()
	result := database.GetDB().Create(&record)
	if result.Error != nil {
		log.Error("Failed to create outfit record", zap.String("date", req.Date), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to create outfit record", result.Error))
	}

	var created model.OutfitRecord
	if err := database.GetDB().First(&created, record.ID).Error; err != nil {
		log.Error("Failed to read back created outfit record", zap.Uint("outfit_id", record.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to create outfit record", err))
	}

	prometheus.RecordOutfitOperation("create")
	log.Info("Outfit record created successfully",
		zap.Uint("outfit_id", created.ID),
		zap.String("date", created.Date),
		zap.String("style", created.Style))
	return c.JSON(http.StatusCreated, messageEnvelope("Outfit record created successfully", created))
}

// UpdateOutfit handles replacing an existing outfit record
func UpdateOutfit(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req OutfitRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("outfit_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid request data"))
	}

	var record model.OutfitRecord
	result := database.GetDB().First(&record, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn("Outfit record not found for update", zap.String("outfit_id", id))
			return c.JSON(http.StatusNotFound, failEnvelope("Outfit record not found"))
		}
		log.Error("Failed to load outfit record for update", zap.String("outfit_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to update outfit record", result.Error))
	}

	replacement := req.toModel()
	replacement.ID = record.ID
	replacement.CreatedAt = record.CreatedAt

	result = database.GetDB().Save(&replacement)
	if result.Error != nil {
		log.Error("Failed to update outfit record", zap.String("outfit_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to update outfit record", result.Error))
	}

	prometheus.RecordOutfitOperation("update")
	log.Info("Outfit record updated successfully", zap.Uint("outfit_id", replacement.ID))
	return c.JSON(http.StatusOK, messageEnvelope("Outfit record updated successfully", replacement))
}

// DeleteOutfit handles deleting an outfit record
func DeleteOutfit(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	result := database.GetDB().Delete(&model.OutfitRecord{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete outfit record", zap.String("outfit_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to delete outfit record", result.Error))
	}

	if result.RowsAffected == 0 {
		log.Warn("Outfit record not found for deletion", zap.String("outfit_id", id))
		return c.JSON(http.StatusNotFound, failEnvelope("Outfit record not found"))
	}

	prometheus.RecordOutfitOperation("delete")
	log.Info("Outfit record deleted successfully", zap.String("outfit_id", id))
	return c.JSON(http.StatusOK, messageEnvelope("Outfit record deleted successfully", nil))
}

// BatchCreateOutfits handles transactional bulk import of outfit records
func BatchCreateOutfits(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Records []OutfitRequest `json:"records"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid batch payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid batch payload"))
	}
	if len(req.Records) == 0 {
		log.Warn("Empty outfit batch rejected")
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid batch payload"))
	}

	for i, record := range req.Records {
		if record.Date == "" || record.Season == "" || record.Style == "" || record.Scene == "" {
			log.Warn("Malformed record in outfit batch", zap.Int("index", i))
			return c.JSON(http.StatusBadRequest,
				failEnvelope(fmt.Sprintf("Record %d is missing required fields: date, season, style, scene", i)))
		}
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Records {
			record := entry.toModel()
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("Outfit batch import failed", zap.Int("size", len(req.Records)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to import outfit records", err))
	}

	prometheus.RecordBatchImport("outfits", len(req.Records))
	log.Info("Outfit batch imported", zap.Int("count", len(req.Records)))
	return c.JSON(http.StatusOK, messageEnvelope(fmt.Sprintf("Imported %d outfit records", len(req.Records)), nil))
}
