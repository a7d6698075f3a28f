package handler

import (
	"net/http"
	"testing"
	"time"

	"wardrobe-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOutfit(t *testing.T, url string, body map[string]interface{}) model.OutfitRecord {
	t.Helper()
	status, env := request(t, http.MethodPost, url+"/api/outfits", body)
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	var record model.OutfitRecord
	decodeData(t, env, &record)
	return record
}

func TestCreateOutfitAppliesDefaults(t *testing.T) {
	server := newTestServer(t)

	record := createOutfit(t, server.URL, map[string]interface{}{
		"date": "2026-08-20", "season": "summer", "style": "casual", "scene": "work",
	})

	assert.NotZero(t, record.ID)
	assert.Equal(t, 0, record.Rating)
	assert.Empty(t, record.Items)
	assert.Empty(t, record.Notes)
	assert.Nil(t, record.Image)
}

func TestCreateOutfitMissingRequiredFields(t *testing.T) {
	server := newTestServer(t)

	status, env := request(t, http.MethodPost, server.URL+"/api/outfits", map[string]interface{}{
		"date": "2026-08-20", "season": "summer",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestOutfitRoundTrip(t *testing.T) {
	server := newTestServer(t)

	created := createOutfit(t, server.URL, map[string]interface{}{
		"date": "2026-08-20", "season": "summer", "style": "casual", "scene": "date",
		"items": "white tee, linen trousers", "notes": "too warm", "rating": 4,
	})

	status, env := request(t, http.MethodGet, server.URL+"/api/outfits/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, status)

	var fetched model.OutfitRecord
	decodeData(t, env, &fetched)
	assert.Equal(t, created, fetched)
	assert.Equal(t, "white tee, linen trousers", fetched.Items)
	assert.Equal(t, 4, fetched.Rating)
}

func TestListOutfitsFiltersAndOrder(t *testing.T) {
	server := newTestServer(t)

	createOutfit(t, server.URL, map[string]interface{}{
		"date": "2026-08-01", "season": "summer", "style": "casual", "scene": "work",
	})
	createOutfit(t, server.URL, map[string]interface{}{
		"date": "2026-08-15", "season": "summer", "style": "formal", "scene": "party",
		"items": "black dress",
	})
	createOutfit(t, server.URL, map[string]interface{}{
		"date": "2026-08-10", "season": "autumn", "style": "casual", "scene": "work",
	})

	// Unfiltered list is ordered by date descending
	status, env := request(t, http.MethodGet, server.URL+"/api/outfits", nil)
	require.Equal(t, http.StatusOK, status)
	var records []model.OutfitRecord
	decodeData(t, env, &records)
	require.Len(t, records, 3)
	assert.Equal(t, "2026-08-15", records[0].Date)
	assert.Equal(t, "2026-08-10", records[1].Date)
	assert.Equal(t, "2026-08-01", records[2].Date)

	// Equality filters compose conjunctively
	status, env = request(t, http.MethodGet, server.URL+"/api/outfits?season=summer&style=casual", nil)
	require.Equal(t, http.StatusOK, status)
	decodeData(t, env, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-08-01", records[0].Date)

	status, env = request(t, http.MethodGet, server.URL+"/api/outfits?scene=party", nil)
	require.Equal(t, http.StatusOK, status)
	decodeData(t, env, &records)
	require.Len(t, records, 1)

	// Search matches worn items text case-insensitively
	status, env = request(t, http.MethodGet, server.URL+"/api/outfits?search=DRESS", nil)
	require.Equal(t, http.StatusOK, status)
	decodeData(t, env, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "black dress", records[0].Items)
}

func TestUpdateOutfitReplacesAllFields(t *testing.T) {
	server := newTestServer(t)

	created := createOutfit(t, server.URL, map[string]interface{}{
		"date": "2026-08-20", "season": "summer", "style": "casual", "scene": "work",
		"rating": 5, "notes": "great",
	})

	status, env := request(t, http.MethodPut, server.URL+"/api/outfits/"+itoa(created.ID), map[string]interface{}{
		"date": "2026-08-21", "season": "summer", "style": "formal", "scene": "party",
	})
	require.Equal(t, http.StatusOK, status)

	var updated model.OutfitRecord
	decodeData(t, env, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2026-08-21", updated.Date)
	assert.Equal(t, "formal", updated.Style)
	assert.Equal(t, 0, updated.Rating)
	assert.Empty(t, updated.Notes)
}

func TestDeleteOutfitNotFound(t *testing.T) {
	server := newTestServer(t)

	status, env := request(t, http.MethodDelete, server.URL+"/api/outfits/42", nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
}

func TestBatchCreateOutfits(t *testing.T) {
	server := newTestServer(t)

	status, env := request(t, http.MethodPost, server.URL+"/api/outfits/batch", map[string]interface{}{
		"records": []map[string]interface{}{
			{"date": "2026-08-01", "season": "summer", "style": "casual", "scene": "work"},
			{"date": "2026-08-02", "season": "summer", "style": "sporty", "scene": "sports", "rating": 3},
		},
	})
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = request(t, http.MethodGet, server.URL+"/api/outfits", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
}

func TestBatchCreateOutfitsAtomicity(t *testing.T) {
	server := newTestServer(t)

	status, env := request(t, http.MethodPost, server.URL+"/api/outfits/batch", map[string]interface{}{
		"records": []map[string]interface{}{
			{"date": "2026-08-01", "season": "summer", "style": "casual", "scene": "work"},
			{"date": "2026-08-02", "season": "summer"}, // missing style, scene
		},
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)

	status, env = request(t, http.MethodGet, server.URL+"/api/outfits", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 0, *env.Count)
}

func TestOutfitStatistics(t *testing.T) {
	server := newTestServer(t)

	today := time.Now().UTC().Format("2006-01-02")
	createOutfit(t, server.URL, map[string]interface{}{
		"date": today, "season": "summer", "style": "casual", "scene": "work",
	})
	createOutfit(t, server.URL, map[string]interface{}{
		"date": today, "season": "summer", "style": "casual", "scene": "date",
	})
	createOutfit(t, server.URL, map[string]interface{}{
		"date": "2020-01-01", "season": "winter", "style": "formal", "scene": "party",
	})

	status, env := request(t, http.MethodPost, server.URL+"/api/inspirations", map[string]interface{}{
		"title": "Street style", "image": "https://example.com/a.jpg",
	})
	require.Equal(t, http.StatusCreated, status)

	status, env = request(t, http.MethodGet, server.URL+"/api/outfit-statistics", nil)
	require.Equal(t, http.StatusOK, status)

	var stats OutfitStatistics
	decodeData(t, env, &stats)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.InspirationTotal)
	assert.Equal(t, int64(2), stats.MonthRecords)

	byStyle := map[string]int64{}
	for _, bucket := range stats.StyleDistribution {
		byStyle[bucket.Style] = bucket.Count
	}
	assert.Equal(t, map[string]int64{"casual": 2, "formal": 1}, byStyle)

	byScene := map[string]int64{}
	for _, bucket := range stats.SceneDistribution {
		byScene[bucket.Scene] = bucket.Count
	}
	assert.Equal(t, map[string]int64{"work": 1, "date": 1, "party": 1}, byScene)

	// Only days with records appear in the trailing-week trend
	require.Len(t, stats.Trend, 1)
	assert.Equal(t, today, stats.Trend[0].Date)
	assert.Equal(t, int64(2), stats.Trend[0].Count)
}
