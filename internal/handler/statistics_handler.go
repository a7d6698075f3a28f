package handler

import (
	"net/http"
	"time"

	"wardrobe-service/internal/model"
	"wardrobe-service/pkg/database"
	"wardrobe-service/pkg/logger"
	"wardrobe-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CategoryCount is one bucket of a count-per-distinct-value breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ColorCount struct {
	Color string `json:"color"`
	Count int64  `json:"count"`
}

type StyleCount struct {
	Style string `json:"style"`
	Count int64  `json:"count"`
}

type SceneCount struct {
	Scene string `json:"scene"`
	Count int64  `json:"count"`
}

// TrendPoint is the outfit count for one day of the trailing week. Days
// without records are not materialized.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// MostExpensive identifies the priciest item. Ties resolve to the lowest
// identifier.
type MostExpensive struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ItemStatistics is the payload of GET /api/statistics
type ItemStatistics struct {
	Total                int64           `json:"total"`
	CategoryDistribution []CategoryCount `json:"categoryDistribution"`
	ColorDistribution    []ColorCount    `json:"colorDistribution"`
	MostExpensive        *MostExpensive  `json:"mostExpensive"`
	MonthAdded           int64           `json:"monthAdded"`
}

// OutfitStatistics is the payload of GET /api/outfit-statistics
type OutfitStatistics struct {
	Total             int64        `json:"total"`
	InspirationTotal  int64        `json:"inspirationTotal"`
	MonthRecords      int64        `json:"monthRecords"`
	StyleDistribution []StyleCount `json:"styleDistribution"`
	SceneDistribution []SceneCount `json:"sceneDistribution"`
	Trend             []TrendPoint `json:"trend"`
}

// GetItemStatistics computes wardrobe item aggregates. Nothing is cached;
// every request scans the current table state.
func GetItemStatistics(c echo.Context) error {
	log := logger.FromContext(c)
	defer prometheus.TrackDBOperation("item_statistics")(time.Now())

	db := database.GetDB()
	stats := ItemStatistics{
		CategoryDistribution: []CategoryCount{},
		ColorDistribution:    []ColorCount{},
	}

	if err := db.Model(&model.WardrobeItem{}).Count(&stats.Total).Error; err != nil {
		log.Error("Failed to count items", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to compute statistics", err))
	}

	if err := db.Model(&model.WardrobeItem{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&stats.CategoryDistribution).Error; err != nil {
		log.Error("Failed to compute category distribution", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to compute statistics", err))
	}

	if err := db.Model(&model.WardrobeItem{}).
		Select("color, COUNT(*) AS count").
		Group("color").
		Scan(&stats.ColorDistribution).Error; err != nil {
		log.Error("Failed to compute color distribution", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to compute statistics", err))
	}

	// Equal prices resolve to the lowest identifier so the answer is stable
	// across requests.
	var top []MostExpensive
	if err := db.Model(&model.WardrobeItem{}).
		Select("name, price").
		Order("price DESC, id ASC").
		Limit(1).
		Scan(&top).Error; err != nil {
		log.Error("Failed to find most expensive item", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to compute statistics", err))
	}
	if len(top) > 0 {
		stats.MostExpensive = &top[0]
	}

	if err := db.Model(&model.WardrobeItem{}).
		Where("strftime('%Y-%m', purchase_date) = strftime('%Y-%m', 'now')").
		Count(&stats.MonthAdded).Error; err != nil {
		log.Error("Failed to count items purchased this month", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to compute statistics", err))
	}

	log.Info("Item statistics computed", zap.Int64("total", stats.Total))
	return c.JSON(http.StatusOK, dataEnvelope(stats))
}

// GetOutfitStatistics computes outfit record and inspiration aggregates
func GetOutfitStatistics(c echo.Context) error {
	log := logger.FromContext(c)
	defer prometheus.TrackDBOperation("outfit_statistics")(time.Now())

	db := database.GetDB()
	stats := OutfitStatistics{
		StyleDistribution: []StyleCount{},
		SceneDistribution: []SceneCount{},
		Trend:             []TrendPoint{},
	}

	if err := db.Model(&model.OutfitRecord{}).Count(&stats.Total).Error; err != nil {
		log.Error("Failed to count outfit records", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to compute statistics", err))
	}

	if err := db.Model(&model.Inspiration{}).Count(&stats.InspirationTotal).Error; err != nil {
		log.Error("Failed to count inspirations", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to compute statistics", err))
	}

	if err := db.Model(&model.OutfitRecord{}).
		Select("style, COUNT(*) AS count").
		Group("style").
		Scan(&stats.StyleDistribution).Error; err != nil {
		log.Error("Failed to compute style distribution", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to compute statistics", err))
	}

	if err := db.Model(&model.OutfitRecord{}).
		Select("scene, COUNT(*) AS count").
		Group("scene").
		Scan(&stats.SceneDistribution).Error; err != nil {
		log.Error("Failed to compute scene distribution", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to compute statistics", err))
	}

	if err := db.Model(&model.OutfitRecord{}).
		Where("strftime('%Y-%m', date) = strftime('%Y-%m', 'now')").
		Count(&stats.MonthRecords).Error; err != nil {
		log.Error("Failed to count outfits this month", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to compute statistics", err))
	}

	// Day-by-day counts for the trailing 7 days. Only days with at least
	// one record appear; absent days read as zero on the consumer side.
	if err := db.Model(&model.OutfitRecord{}).
		Select("date, COUNT(*) AS count").
		Where("date >= date('now', '-7 days')").
		Group("date").
		Order("date ASC").
		Scan(&stats.Trend).Error; err != nil {
		log.Error("Failed to compute outfit trend", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to compute statistics", err))
	}

	log.Info("Outfit statistics computed",
		zap.Int64("total", stats.Total),
		zap.Int64("inspirations", stats.InspirationTotal))
	return c.JSON(http.StatusOK, dataEnvelope(stats))
}
