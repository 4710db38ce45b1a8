package handlers

import (
	"net/http"
	"strconv"

	"songcrate/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogHandler serves read access to the ingested catalog
type CatalogHandler struct {
	db *gorm.DB
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ListSongs returns recently ingested songs
func (h *CatalogHandler) ListSongs(c *gin.Context) {
	limit := 50
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 200 {
		limit = l
	}

	var songs []models.Song
	if err := h.db.Order("created_at DESC").Limit(limit).Find(&songs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load songs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"songs": songs, "count": len(songs)})
}

// GetSong returns one song with its credited artists
func (h *CatalogHandler) GetSong(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid song id"})
		return
	}

	var song models.Song
	if err := h.db.First(&song, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "song not found"})
		return
	}

	var credits []models.ArtistSong
	h.db.Preload("Artist").Where("song_id = ?", id).Find(&credits)

	artists := make([]models.Artist, 0, len(credits))
	for _, credit := range credits {
		artists = append(artists, credit.Artist)
	}

	c.JSON(http.StatusOK, gin.H{"song": song, "artists": artists})
}

// GetLink returns the link for a URL with its posts
func (h *CatalogHandler) GetLink(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url parameter required"})
		return
	}

	var link models.Link
	err := h.db.Preload("UserPosts").Preload("Song").
		Where("url = ?", url).First(&link).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
		return
	}

	c.JSON(http.StatusOK, link)
}

// GetStats returns entity counts for the catalog
func (h *CatalogHandler) GetStats(c *gin.Context) {
	var linkCount, postCount, songCount, artistCount, genreCount int64
	h.db.Model(&models.Link{}).Count(&linkCount)
	h.db.Model(&models.UserPost{}).Count(&postCount)
	h.db.Model(&models.Song{}).Count(&songCount)
	h.db.Model(&models.Artist{}).Count(&artistCount)
	h.db.Model(&models.Genre{}).Count(&genreCount)

	c.JSON(http.StatusOK, gin.H{
		"links":   linkCount,
		"posts":   postCount,
		"songs":   songCount,
		"artists": artistCount,
		"genres":  genreCount,
	})
}
