package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/notes-api/internal/models"
)

// InCollection restricts a notes query to one logical collection.
func InCollection(collection models.Collection) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch collection {
		case models.CollectionFavourite:
			return db.Where("is_favourite = ?", true)
		case models.CollectionArchived:
			return db.Where("is_archived = ?", true)
		default:
			return db.Where("is_favourite = ? AND is_archived = ?", false, false)
		}
	}
}
