package models

import (
	"time"

	"github.com/google/uuid"
)

// Link represents a distinct media URL seen across posts, with a running
// count of the posts that referenced it
type Link struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	URL       string    `json:"url" db:"url" gorm:"uniqueIndex;not null"`
	PostCount int       `json:"post_count" db:"post_count" gorm:"default:0"`

	// Set once the song graph for this URL has been built
	SongID *uuid.UUID `json:"song_id" db:"song_id" gorm:"index"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Song      *Song      `json:"song,omitempty" gorm:"foreignKey:SongID;references:ID"`
	UserPosts []UserPost `json:"user_posts,omitempty" gorm:"foreignKey:LinkID"`
}

// TableName sets the table name for the Link model
func (Link) TableName() string {
	return "links"
}
