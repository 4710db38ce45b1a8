package models

import (
	"time"

	"github.com/google/uuid"
)

// UserPost represents one ingested post referencing a link. Rows are
// append-only: a repeat of the same URL still gets its own row.
type UserPost struct {
	ID     uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID uuid.UUID `json:"user_id" db:"user_id" gorm:"not null;index"`
	LinkID uuid.UUID `json:"link_id" db:"link_id" gorm:"not null;index"`

	PostedAt       time.Time `json:"posted_at" db:"posted_at"`
	Caption        string    `json:"caption" db:"caption" gorm:"type:text"`
	ExternalPostID string    `json:"external_post_id" db:"external_post_id"`
	PermalinkURL   string    `json:"permalink_url" db:"permalink_url"`
	LikesCount     int       `json:"likes_count" db:"likes_count" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Link Link `json:"link,omitempty" gorm:"foreignKey:LinkID;references:ID"`
}

// TableName sets the table name for the UserPost model
func (UserPost) TableName() string {
	return "user_posts"
}
