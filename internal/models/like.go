package models

import "time"

// Like represents a user's like on an artwork.
// The combination of UserID and ArtworkID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_artwork" json:"user_id"`
	ArtworkID uint      `gorm:"not null;uniqueIndex:idx_like_user_artwork" json:"artwork_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"user"`
	Artwork Artwork `gorm:"foreignKey:ArtworkID" json:"artwork"`
}
