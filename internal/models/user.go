package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a poster identity. Until real user details are wired in,
// every ingestion resolves to a single configured placeholder identity.
type User struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name       string    `json:"name" db:"name"`
	ExternalID string    `json:"external_id" db:"external_id" gorm:"uniqueIndex;not null"`
	ImageURL   string    `json:"image_url" db:"image_url"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	UserPosts []UserPost `json:"user_posts,omitempty" gorm:"foreignKey:UserID"`
}

// TableName sets the table name for the User model
func (User) TableName() string {
	return "users"
}
