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

// ItemRequest defines the structure for item creation/update requests.
// Pointer fields distinguish "omitted" from "set to zero value" so that
// Create can apply defaults while Replace overwrites unconditionally.
type ItemRequest struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Color        string   `json:"color"`
	Brand        *string  `json:"brand"`
	Price        *float64 `json:"price"`
	Seasons      []string `json:"seasons"`
	PurchaseDate *string  `json:"purchase_date"`
	Image        *string  `json:"image"`
	Notes        *string  `json:"notes"`
	Platform     *string  `json:"platform"`
}

// toModel maps the request onto a row, applying the documented defaults for
// every omitted optional field.
func (r *ItemRequest) toModel() model.WardrobeItem {
	item := model.WardrobeItem{
		Name:         r.Name,
		Category:     r.Category,
		Color:        r.Color,
		Brand:        model.DefaultBrand,
		Seasons:      model.StringList(r.Seasons),
		PurchaseDate: r.PurchaseDate,
		Image:        r.Image,
		Platform:     model.DefaultPlatform,
	}
	if r.Brand != nil {
		item.Brand = *r.Brand
	}
	if r.Price != nil {
		item.Price = *r.Price
	}
	if r.Notes != nil {
		item.Notes = *r.Notes
	}
	if r.Platform != nil {
		item.Platform = *r.Platform
	}
	// seasons must never be stored empty
	if len(item.Seasons) == 0 {
		item.Seasons = model.StringList{model.DefaultSeason}
	}
	return item
}

// ListItems handles retrieving all items with optional filtering
func ListItems(c echo.Context) error {
	log := logger.FromContext(c)

	db := database.GetDB()
	query := db.Model(&model.WardrobeItem{})

	// Filter by category if specified
	category := c.QueryParam("category")
	if category != "" {
		query = query.Where("category = ?", category)
		log.Info("Filtering items by category", zap.String("category", category))
	}

	// Filter by color if specified
	color := c.QueryParam("color")
	if color != "" {
		query = query.Where("color = ?", color)
		log.Info("Filtering items by color", zap.String("color", color))
	}

	// Free-text search over name, brand and notes
	search := c.QueryParam("search")
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(notes) LIKE ?)", term, term, term)
		log.Info("Searching items", zap.String("search", search))
	}

	var items []model.WardrobeItem
	result := query.Order("created_at DESC, id DESC").Find(&items)
	if result.Error != nil {
		log.Error("Failed to list items", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to retrieve items", result.Error))
	}

	// The season filter tests membership on the decoded list instead of
	// probing the encoded column with LIKE, so a season string appearing
	// inside another value cannot false-match.
	season := c.QueryParam("season")
	if season != "" {
		filtered := items[:0]
		for _, item := range items {
			if item.Seasons.Contains(season) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
		log.Info("Filtering items by season", zap.String("season", season))
	}

	if items == nil {
		items = []model.WardrobeItem{}
	}

	log.Info("Items retrieved successfully", zap.Int("count", len(items)))
	return c.JSON(http.StatusOK, listEnvelope(items, len(items)))
}

// GetItem handles retrieving a single item by ID
func GetItem(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var item model.WardrobeItem
	result := database.GetDB().First(&item, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn("Item not found", zap.String("item_id", id))
			return c.JSON(http.StatusNotFound, failEnvelope("Item not found"))
		}
		log.Error("Failed to get item", zap.String("item_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to retrieve item", result.Error))
	}

	return c.JSON(http.StatusOK, dataEnvelope(item))
}

// CreateItem handles creating a new item
func CreateItem(c echo.Context) error {
	log := logger.FromContext(c)

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid request data"))
	}

	if req.Name == "" || req.Category == "" || req.Color == "" {
		log.Warn("Missing required item fields",
			zap.String("name", req.Name),
			zap.String("category", req.Category),
			zap.String("color", req.Color))
		return c.JSON(http.StatusBadRequest, failEnvelope("Missing required fields: name, category, color"))
	}

	item := req.toModel()
	result := database.GetDB().Create(&item)
	if result.Error != nil {
		log.Error("Failed to create item", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to create item", result.Error))
	}

	// Re-read by the assigned identifier so the response carries exactly
	// what was stored, decoded multi-valued fields included.
	var created model.WardrobeItem
	if err := database.GetDB().First(&created, item.ID).Error; err != nil {
		log.Error("Failed to read back created item", zap.Uint("item_id", item.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to create item", err))
	}

	prometheus.RecordItemOperation("create")
	log.Info("Item created successfully",
		zap.Uint("item_id", created.ID),
		zap.String("name", created.Name),
		zap.String("category", created.Category))
	return c.JSON(http.StatusCreated, messageEnvelope("Item created successfully", created))
}

// UpdateItem handles replacing an existing item. Every updatable column is
// overwritten with exactly what the caller supplied; omitted fields are not
// preserved.
func UpdateItem(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("item_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid request data"))
	}

	var item model.WardrobeItem
	result := database.GetDB().First(&item, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn("Item not found for update", zap.String("item_id", id))
			return c.JSON(http.StatusNotFound, failEnvelope("Item not found"))
		}
		log.Error("Failed to load item for update", zap.String("item_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to update item", result.Error))
	}

	replacement := req.toModel()
	replacement.ID = item.ID
	replacement.CreatedAt = item.CreatedAt

	result = database.GetDB().Save(&replacement)
	if result.Error != nil {
		log.Error("Failed to update item", zap.String("item_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to update item", result.Error))
	}

	prometheus.RecordItemOperation("update")
	log.Info("Item updated successfully", zap.Uint("item_id", replacement.ID), zap.String("name", replacement.Name))
	return c.JSON(http.StatusOK, messageEnvelope("Item updated successfully", replacement))
}

// DeleteItem handles deleting an item. Destruction is physical, there is no
// soft-delete.
func DeleteItem(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	result := database.GetDB().Delete(&model.WardrobeItem{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete item", zap.String("item_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to delete item", result.Error))
	}

	if result.RowsAffected == 0 {
		log.Warn("Item not found for deletion", zap.String("item_id", id))
		return c.JSON(http.StatusNotFound, failEnvelope("Item not found"))
	}

	prometheus.RecordItemOperation("delete")
	log.Info("Item deleted successfully", zap.String("item_id", id))
	return c.JSON(http.StatusOK, messageEnvelope("Item deleted successfully", nil))
}

// ItemImport is one record of a batch import payload. The purchase date is
// accepted under both historical spellings; purchaseDate wins when both are
// present.
type ItemImport struct {
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Color             string   `json:"color"`
	Brand             *string  `json:"brand"`
	Price             *float64 `json:"price"`
	Seasons           []string `json:"seasons"`
	PurchaseDateCamel *string  `json:"purchaseDate"`
	PurchaseDateSnake *string  `json:"purchase_date"`
	Image             *string  `json:"image"`
	Notes             *string  `json:"notes"`
	Platform          *string  `json:"platform"`
}

func (r *ItemImport) toModel() model.WardrobeItem {
	req := ItemRequest{
		Name:         r.Name,
		Category:     r.Category,
		Color:        r.Color,
		Brand:        r.Brand,
		Price:        r.Price,
		Seasons:      r.Seasons,
		PurchaseDate: r.PurchaseDateSnake,
		Image:        r.Image,
		Notes:        r.Notes,
		Platform:     r.Platform,
	}
	if r.PurchaseDateCamel != nil {
		req.PurchaseDate = r.PurchaseDateCamel
	}
	return req.toModel()
}

// BatchCreateItems handles transactional bulk import of items, used to
// migrate a client-held copy into the store.
func BatchCreateItems(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Items []ItemImport `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid batch payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid batch payload"))
	}
	if len(req.Items) == 0 {
		log.Warn("Empty item batch rejected")
		return c.JSON(http.StatusBadRequest, failEnvelope("Invalid batch payload"))
	}

	// Validate up front so a malformed record never opens a transaction.
	for i, record := range req.Items {
		if record.Name == "" || record.Category == "" || record.Color == "" {
			log.Warn("Malformed record in item batch", zap.Int("index", i))
			return c.JSON(http.StatusBadRequest,
				failEnvelope(fmt.Sprintf("Record %d is missing required fields: name, category, color", i)))
		}
	}

	// All inserts commit or none do.
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		for _, record := range req.Items {
			item := record.toModel()
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("Item batch import failed", zap.Int("size", len(req.Items)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to import items", err))
	}

	prometheus.RecordBatchImport("items", len(req.Items))
	log.Info("Item batch imported", zap.Int("count", len(req.Items)))
	return c.JSON(http.StatusOK, messageEnvelope(fmt.Sprintf("Imported %d items", len(req.Items)), nil))
}
