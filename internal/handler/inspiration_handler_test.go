package handler

import (
	"net/http"
	"testing"

	"wardrobe-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInspiration(t *testing.T, url string, body map[string]interface{}) model.Inspiration {
	t.Helper()
	status, env := request(t, http.MethodPost, url+"/api/inspirations", body)
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	var inspiration model.Inspiration
	decodeData(t, env, &inspiration)
	return inspiration
}

func TestCreateInspirationTagsRoundTrip(t *testing.T) {
	server := newTestServer(t)

	created := createInspiration(t, server.URL, map[string]interface{}{
		"title":       "Autumn layering",
		"image":       "https://example.com/look.jpg",
		"description": "trench over knitwear",
		"tags":        []string{"autumn", "layering", "minimal"},
	})

	status, env := request(t, http.MethodGet, server.URL+"/api/inspirations/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, status)

	var fetched model.Inspiration
	decodeData(t, env, &fetched)
	assert.Equal(t, created, fetched)
	// Order is preserved through the encode/decode round trip
	assert.Equal(t, model.StringList{"autumn", "layering", "minimal"}, fetched.Tags)
}

func TestCreateInspirationDefaultsTagsToEmpty(t *testing.T) {
	server := newTestServer(t)

	created := createInspiration(t, server.URL, map[string]interface{}{
		"title": "Monochrome", "image": "https://example.com/b.jpg",
	})
	assert.Equal(t, model.StringList{}, created.Tags)
	assert.Empty(t, created.Description)
}

func TestCreateInspirationMissingRequiredFields(t *testing.T) {
	server := newTestServer(t)

	status, env := request(t, http.MethodPost, server.URL+"/api/inspirations", map[string]interface{}{
		"title": "No image",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestListInspirationsNewestFirst(t *testing.T) {
	server := newTestServer(t)

	first := createInspiration(t, server.URL, map[string]interface{}{
		"title": "First", "image": "https://example.com/1.jpg",
	})
	second := createInspiration(t, server.URL, map[string]interface{}{
		"title": "Second", "image": "https://example.com/2.jpg",
	})

	status, env := request(t, http.MethodGet, server.URL+"/api/inspirations", nil)
	require.Equal(t, http.StatusOK, status)

	var inspirations []model.Inspiration
	decodeData(t, env, &inspirations)
	require.Len(t, inspirations, 2)
	assert.Equal(t, second.ID, inspirations[0].ID)
	assert.Equal(t, first.ID, inspirations[1].ID)
}

func TestUpdateInspiration(t *testing.T) {
	server := newTestServer(t)

	created := createInspiration(t, server.URL, map[string]interface{}{
		"title": "Draft", "image": "https://example.com/a.jpg", "tags": []string{"wip"},
	})

	status, env := request(t, http.MethodPut, server.URL+"/api/inspirations/"+itoa(created.ID), map[string]interface{}{
		"title": "Final", "image": "https://example.com/b.jpg", "tags": []string{"street", "denim"},
	})
	require.Equal(t, http.StatusOK, status)

	var updated model.Inspiration
	decodeData(t, env, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, model.StringList{"street", "denim"}, updated.Tags)
}

func TestDeleteInspiration(t *testing.T) {
	server := newTestServer(t)

	created := createInspiration(t, server.URL, map[string]interface{}{
		"title": "Gone soon", "image": "https://example.com/c.jpg",
	})

	status, _ := request(t, http.MethodDelete, server.URL+"/api/inspirations/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = request(t, http.MethodGet, server.URL+"/api/inspirations/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBatchCreateInspirations(t *testing.T) {
	server := newTestServer(t)

	status, env := request(t, http.MethodPost, server.URL+"/api/inspirations/batch", map[string]interface{}{
		"inspirations": []map[string]interface{}{
			{"title": "A", "image": "https://example.com/a.jpg", "tags": []string{"summer"}},
			{"title": "B", "image": "https://example.com/b.jpg"},
		},
	})
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = request(t, http.MethodGet, server.URL+"/api/inspirations", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
}

func TestBatchCreateInspirationsAtomicity(t *testing.T) {
	server := newTestServer(t)

	status, env := request(t, http.MethodPost, server.URL+"/api/inspirations/batch", map[string]interface{}{
		"inspirations": []map[string]interface{}{
			{"title": "A", "image": "https://example.com/a.jpg"},
			{"title": "B"}, // missing image
		},
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)

	status, env = request(t, http.MethodGet, server.URL+"/api/inspirations", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 0, *env.Count)
}
