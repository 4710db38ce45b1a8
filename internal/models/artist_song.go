package models

import (
	"time"

	"github.com/google/uuid"
)

// ArtistSong represents one artist credit on a song
type ArtistSong struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ArtistID uuid.UUID `json:"artist_id" db:"artist_id" gorm:"not null;uniqueIndex:idx_artist_song"`
	SongID   uuid.UUID `json:"song_id" db:"song_id" gorm:"not null;uniqueIndex:idx_artist_song"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`

	// Relationships
	Artist Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID;references:ID"`
	Song   Song   `json:"song,omitempty" gorm:"foreignKey:SongID;references:ID"`
}

// TableName sets the table name for the ArtistSong model
func (ArtistSong) TableName() string {
	return "artist_songs"
}
