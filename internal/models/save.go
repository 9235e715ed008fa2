package models

import "time"

// Save is a bookmark: same shape as Like but a separate relation, so a user's
// saved collection is independent of what they liked.
type Save struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_save_user_artwork" json:"user_id"`
	ArtworkID uint      `gorm:"not null;uniqueIndex:idx_save_user_artwork" json:"artwork_id"`
	CreatedAt time.Time `json:"created_at"`

	User    User    `gorm:"foreignKey:UserID" json:"user"`
	Artwork Artwork `gorm:"foreignKey:ArtworkID" json:"artwork"`
}
