package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a user's comment on an artwork. The author is immutable after
// creation; edits and deletes require the actor to be the author.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"not null" json:"content"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	ArtworkID uint           `gorm:"not null" json:"artwork_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Artwork   Artwork        `gorm:"foreignKey:ArtworkID" json:"artwork,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
