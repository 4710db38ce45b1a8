// Package models contains all data models for the songcrate catalog
package models

import (
	"gorm.io/gorm"
)

// AllModels returns a slice of all model types for database migrations
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Link{},
		&UserPost{},
		&Song{},
		&Artist{},
		&Genre{},
		&ArtistSong{},
		&ArtistGenre{},
	}
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
