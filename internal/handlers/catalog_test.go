package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"songcrate/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalogRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	handler := NewCatalogHandler(db)

	r := gin.New()
	r.GET("/api/songs", handler.ListSongs)
	r.GET("/api/songs/:id", handler.GetSong)
	r.GET("/api/links", handler.GetLink)
	r.GET("/api/stats", handler.GetStats)
	return r, db
}

func TestGetSong(t *testing.T) {
	r, db := setupCatalogRouter(t)

	song := models.Song{ID: uuid.New(), Name: "Paranoid Android"}
	require.NoError(t, db.Create(&song).Error)
	artist := models.Artist{ID: uuid.New(), Name: "Radiohead"}
	require.NoError(t, db.Create(&artist).Error)
	credit := models.ArtistSong{ID: uuid.New(), ArtistID: artist.ID, SongID: song.ID}
	require.NoError(t, db.Create(&credit).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/songs/"+song.ID.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Paranoid Android")
	assert.Contains(t, w.Body.String(), "Radiohead")
}

func TestGetSong_NotFound(t *testing.T) {
	r, _ := setupCatalogRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/songs/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLink(t *testing.T) {
	r, db := setupCatalogRouter(t)

	link := models.Link{ID: uuid.New(), URL: "https://youtu.be/abc123", PostCount: 2}
	require.NoError(t, db.Create(&link).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/links?url=https%3A%2F%2Fyoutu.be%2Fabc123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"post_count":2`)
}

func TestGetStats(t *testing.T) {
	r, db := setupCatalogRouter(t)

	require.NoError(t, db.Create(&models.Link{ID: uuid.New(), URL: "https://youtu.be/abc123"}).Error)
	require.NoError(t, db.Create(&models.Song{ID: uuid.New(), Name: "Paranoid Android"}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"links":1`)
	assert.Contains(t, w.Body.String(), `"songs":1`)
}
