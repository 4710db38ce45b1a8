package models

import (
	"time"

	"github.com/google/uuid"
)

// Artist represents a credited artist, deduplicated by exact name
type Artist struct {
	ID      uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name    string    `json:"name" db:"name" gorm:"uniqueIndex;not null"`
	ImageID string    `json:"image_id" db:"image_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	ArtistSongs  []ArtistSong  `json:"artist_songs,omitempty" gorm:"foreignKey:ArtistID"`
	ArtistGenres []ArtistGenre `json:"artist_genres,omitempty" gorm:"foreignKey:ArtistID"`
}

// TableName sets the table name for the Artist model
func (Artist) TableName() string {
	return "artists"
}
