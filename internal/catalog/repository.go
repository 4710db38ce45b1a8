// Package catalog implements the ingestion pipeline and the get-or-create
// persistence primitives it builds the catalog with.
package catalog

import (
	"errors"

	"songcrate/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identity is the poster identity attached to ingested posts. Injected at
// construction so multi-source ingestion can supply a real one later.
type Identity struct {
	Name       string
	ExternalID string
	ImageURL   string
}

// Repository provides get-or-create primitives for the catalog entities.
// Lookups are exact natural-key matches; callers never need conditional
// logic beyond "may or may not exist". All operations run against the
// *gorm.DB they were constructed with, which is a transaction handle when
// called from the pipeline.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository bound to db
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindLink looks up a link by URL without side effects. Returns nil when
// the URL has not been seen.
func (r *Repository) FindLink(url string) (*models.Link, error) {
	var link models.Link
	err := r.db.Where("url = ?", url).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("find link", err)
	}
	return &link, nil
}

// RecordPostForLink increments the link's post count by one
func (r *Repository) RecordPostForLink(link *models.Link) error {
	err := r.db.Model(link).
		UpdateColumn("post_count", gorm.Expr("post_count + ?", 1)).Error
	if err != nil {
		return storageErr("record post for link", err)
	}
	link.PostCount++
	return nil
}

// GetOrCreateLink returns the link for url, creating it with a post count
// of 1 when absent. An existing link has its post count incremented as
// part of the lookup. The second return reports whether the link is new.
func (r *Repository) GetOrCreateLink(url string) (*models.Link, bool, error) {
	link, err := r.FindLink(url)
	if err != nil {
		return nil, false, err
	}
	if link != nil {
		if err := r.RecordPostForLink(link); err != nil {
			return nil, false, err
		}
		return link, false, nil
	}

	created := models.Link{ID: uuid.New(), URL: url, PostCount: 1}
	if err := r.db.Create(&created).Error; err != nil {
		// A concurrent ingestion may have won the unique-index race;
		// re-read and treat the URL as seen.
		if existing, ferr := r.FindLink(url); ferr == nil && existing != nil {
			if err := r.RecordPostForLink(existing); err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, storageErr("create link", err)
	}
	return &created, true, nil
}

// SetLinkSong points the link at its resolved song
func (r *Repository) SetLinkSong(link *models.Link, songID uuid.UUID) error {
	if err := r.db.Model(link).Update("song_id", songID).Error; err != nil {
		return storageErr("set link song", err)
	}
	link.SongID = &songID
	return nil
}

// GetOrCreateArtist returns the artist with the given name, creating it
// with imageID when absent
func (r *Repository) GetOrCreateArtist(name, imageID string) (*models.Artist, bool, error) {
	var artist models.Artist
	err := r.db.Where("name = ?", name).First(&artist).Error
	if err == nil {
		return &artist, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, storageErr("find artist", err)
	}

	artist = models.Artist{ID: uuid.New(), Name: name, ImageID: imageID}
	if err := r.db.Create(&artist).Error; err != nil {
		var existing models.Artist
		if ferr := r.db.Where("name = ?", name).First(&existing).Error; ferr == nil {
			return &existing, false, nil
		}
		return nil, false, storageErr("create artist", err)
	}
	return &artist, true, nil
}

// GetOrCreateGenre returns the genre with the given name, creating it
// when absent
func (r *Repository) GetOrCreateGenre(name string) (*models.Genre, bool, error) {
	var genre models.Genre
	err := r.db.Where("name = ?", name).First(&genre).Error
	if err == nil {
		return &genre, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, storageErr("find genre", err)
	}

	genre = models.Genre{ID: uuid.New(), Name: name}
	if err := r.db.Create(&genre).Error; err != nil {
		var existing models.Genre
		if ferr := r.db.Where("name = ?", name).First(&existing).Error; ferr == nil {
			return &existing, false, nil
		}
		return nil, false, storageErr("create genre", err)
	}
	return &genre, true, nil
}

// GetOrCreateUser returns the user with the given external id, creating
// it from identity when absent
func (r *Repository) GetOrCreateUser(identity Identity) (*models.User, error) {
	var user models.User
	err := r.db.Where("external_id = ?", identity.ExternalID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr("find user", err)
	}

	user = models.User{
		ID:         uuid.New(),
		Name:       identity.Name,
		ExternalID: identity.ExternalID,
		ImageURL:   identity.ImageURL,
	}
	if err := r.db.Create(&user).Error; err != nil {
		var existing models.User
		if ferr := r.db.Where("external_id = ?", identity.ExternalID).First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, storageErr("create user", err)
	}
	return &user, nil
}

// CreateSong creates a song row. Callers ensure this runs at most once per
// link.
func (r *Repository) CreateSong(song *models.Song) error {
	if song.ID == uuid.Nil {
		song.ID = uuid.New()
	}
	return storageErr("create song", r.db.Create(song).Error)
}

// CreateUserPost creates a post row. One row per ingestion, whether the
// link is new or repeat.
func (r *Repository) CreateUserPost(post *models.UserPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	return storageErr("create user post", r.db.Create(post).Error)
}

// CreateArtistSongLink records an artist credit on a song
func (r *Repository) CreateArtistSongLink(artistID, songID uuid.UUID) error {
	link := models.ArtistSong{ID: uuid.New(), ArtistID: artistID, SongID: songID}
	return storageErr("create artist song link", r.db.Create(&link).Error)
}

// CreateArtistGenreLink records a genre association for an artist
func (r *Repository) CreateArtistGenreLink(artistID, genreID uuid.UUID) error {
	link := models.ArtistGenre{ID: uuid.New(), ArtistID: artistID, GenreID: genreID}
	return storageErr("create artist genre link", r.db.Create(&link).Error)
}

// HasArtistGenreLink reports whether the association already exists
func (r *Repository) HasArtistGenreLink(artistID, genreID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ArtistGenre{}).
		Where("artist_id = ? AND genre_id = ?", artistID, genreID).
		Count(&count).Error
	if err != nil {
		return false, storageErr("find artist genre link", err)
	}
	return count > 0, nil
}
