package models

import (
	"time"

	"github.com/google/uuid"
)

// Genre represents a genre label, deduplicated by exact name
type Genre struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name string    `json:"name" db:"name" gorm:"uniqueIndex;not null"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	ArtistGenres []ArtistGenre `json:"artist_genres,omitempty" gorm:"foreignKey:GenreID"`
}

// TableName sets the table name for the Genre model
func (Genre) TableName() string {
	return "genres"
}
