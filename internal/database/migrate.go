package database

import (
	"artfolio/internal/models"

	"gorm.io/gorm"
)

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Artwork{},
		&models.Comment{},
		&models.Like{},
		&models.Save{},
		&models.Follow{},
		&models.Hashtag{},
		&models.ArtworkHashtag{},
	}
}

// Migrate applies the schema for all persistent models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(PersistentModels()...)
}
