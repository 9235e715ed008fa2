package models

// Hashtag is a globally deduplicated tag. Tags are stored lowercase without
// the leading '#'; two artworks tagging "Art" and "art" share one row.
type Hashtag struct {
	ID  uint   `gorm:"primaryKey" json:"hashtag_id"`
	Tag string `gorm:"unique;not null" json:"tag"`
}

// ArtworkHashtag links an artwork to a hashtag. The composite primary key
// absorbs duplicate links from re-tagging.
type ArtworkHashtag struct {
	ArtworkID uint `gorm:"primaryKey;autoIncrement:false" json:"artwork_id"`
	HashtagID uint `gorm:"primaryKey;autoIncrement:false" json:"hashtag_id"`
}
