package repository

import (
	"context"
	"errors"

	"artfolio/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HashtagRepository defines the interface for hashtag data operations
type HashtagRepository interface {
	GetOrCreate(ctx context.Context, tag string) (*models.Hashtag, error)
	Link(ctx context.Context, artworkID, hashtagID uint) error
	ListByArtwork(ctx context.Context, artworkID uint) ([]models.Hashtag, error)
	Search(ctx context.Context, query string) ([]models.Hashtag, error)
}

// hashtagRepository implements HashtagRepository
type hashtagRepository struct {
	db *gorm.DB
}

// NewHashtagRepository creates a new hashtag repository
func NewHashtagRepository(db *gorm.DB) HashtagRepository {
	return &hashtagRepository{db: db}
}

// GetOrCreate inserts the tag or reuses the existing row. The insert uses ON
// CONFLICT DO NOTHING so two concurrent uploads of the same new tag cannot
// create duplicate rows; the loser simply reads the winner's row back.
func (r *hashtagRepository) GetOrCreate(ctx context.Context, tag string) (*models.Hashtag, error) {
	hashtag := &models.Hashtag{Tag: tag}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(hashtag)
	if result.Error != nil {
		return nil, models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 1 && hashtag.ID != 0 {
		return hashtag, nil
	}

	// Conflict: the row already existed, fetch it.
	var existing models.Hashtag
	if err := r.db.WithContext(ctx).Where("tag = ?", tag).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Hashtag", tag)
		}
		return nil, models.NewInternalError(err)
	}
	return &existing, nil
}

// Link attaches a hashtag to an artwork. Duplicate links from re-tagging are
// absorbed silently.
func (r *hashtagRepository) Link(ctx context.Context, artworkID, hashtagID uint) error {
	link := &models.ArtworkHashtag{ArtworkID: artworkID, HashtagID: hashtagID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *hashtagRepository) ListByArtwork(ctx context.Context, artworkID uint) ([]models.Hashtag, error) {
	var hashtags []models.Hashtag
	if err := r.db.WithContext(ctx).
		Joins("JOIN artwork_hashtags ah ON ah.hashtag_id = hashtags.id").
		Where("ah.artwork_id = ?", artworkID).
		Order("hashtags.tag ASC").
		Find(&hashtags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return hashtags, nil
}

// Search performs a case-insensitive substring match on the tag, alphabetical
// order, capped at 50 results.
func (r *hashtagRepository) Search(ctx context.Context, query string) ([]models.Hashtag, error) {
	var hashtags []models.Hashtag
	if err := r.db.WithContext(ctx).
		Where("tag ILIKE ?", likePattern(query)).
		Order("tag ASC").
		Limit(searchResultCap).
		Find(&hashtags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return hashtags, nil
}
