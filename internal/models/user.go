// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// PlaceholderAvatarURL is returned in place of a missing avatar so clients
// never have to special-case absence.
const PlaceholderAvatarURL = "https://via.placeholder.com/40?text=User"

// User represents a registered artist or viewer.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Artworks  []Artwork      `gorm:"foreignKey:UserID" json:"artworks,omitempty"`
}

// UserSummary is the public projection of a user used in search results and
// follower/following lists.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

// Summary returns the public projection of the user with the avatar
// placeholder applied.
func (u *User) Summary() UserSummary {
	avatar := u.Avatar
	if avatar == "" {
		avatar = PlaceholderAvatarURL
	}
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
		Avatar:   avatar,
	}
}
