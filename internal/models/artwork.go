package models

import (
	"time"

	"gorm.io/gorm"
)

// PlaceholderImageURL is returned in place of a missing artwork image.
const PlaceholderImageURL = "https://via.placeholder.com/300x300?text=No+Image"

// Artwork is a posted piece, owned by exactly one user. Ownership is fixed at
// creation; only Title, Caption and ImageURL are mutable, and only by the
// owner.
type Artwork struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Caption  string `json:"caption"`
	ImageURL string `json:"image_url"`
	UserID   uint   `gorm:"not null" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`
	// LikeCount is not persisted; computed at query time
	LikeCount int `gorm:"->" json:"like_count"`
	// CommentCount is not persisted; computed at query time
	CommentCount int `gorm:"->" json:"comment_count"`
	// Liked indicates whether the current requesting user liked this artwork (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	Hashtags  []Hashtag      `gorm:"many2many:artwork_hashtags" json:"hashtags,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ApplyPlaceholders substitutes the sentinel URLs for missing image and owner
// avatar so API payloads never carry empty URL fields.
func (a *Artwork) ApplyPlaceholders() {
	if a.ImageURL == "" {
		a.ImageURL = PlaceholderImageURL
	}
	if a.User.ID != 0 && a.User.Avatar == "" {
		a.User.Avatar = PlaceholderAvatarURL
	}
}
