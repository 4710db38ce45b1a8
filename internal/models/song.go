package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Song represents the resolved track behind a link. Created once, on the
// ingestion that first observes the link's URL.
type Song struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string     `json:"name" db:"name" gorm:"not null"`
	ReleaseDate *time.Time `json:"release_date" db:"release_date"`
	Explicit    bool       `json:"explicit" db:"explicit" gorm:"default:false"`
	Popularity  float64    `json:"popularity" db:"popularity" gorm:"default:0.0"`
	ImageID     string     `json:"image_id" db:"image_id"`

	// Derived per-second view velocity; nil when it could not be computed
	CustomPopularity *float64 `json:"custom_popularity" db:"custom_popularity"`

	IsCover    bool    `json:"is_cover" db:"is_cover" gorm:"default:false"`
	OriginalID *string `json:"original_id" db:"original_id"`

	// Denormalized credited-artist names for display and search
	ArtistNames pq.StringArray `json:"artist_names" db:"artist_names" gorm:"type:text[]"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	ArtistSongs []ArtistSong `json:"artist_songs,omitempty" gorm:"foreignKey:SongID"`
}

// TableName sets the table name for the Song model
func (Song) TableName() string {
	return "songs"
}
