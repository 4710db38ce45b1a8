package models

import (
	"time"

	"github.com/google/uuid"
)

// ArtistGenre represents a genre association recorded when the artist row
// was first created
type ArtistGenre struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ArtistID uuid.UUID `json:"artist_id" db:"artist_id" gorm:"not null;uniqueIndex:idx_artist_genre"`
	GenreID  uuid.UUID `json:"genre_id" db:"genre_id" gorm:"not null;uniqueIndex:idx_artist_genre"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`

	// Relationships
	Artist Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID;references:ID"`
	Genre  Genre  `json:"genre,omitempty" gorm:"foreignKey:GenreID;references:ID"`
}

// TableName sets the table name for the ArtistGenre model
func (ArtistGenre) TableName() string {
	return "artist_genres"
}
