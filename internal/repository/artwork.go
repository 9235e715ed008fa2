package repository

import (
	"context"
	"errors"

	"artfolio/internal/models"

	"gorm.io/gorm"
)

// ArtworkRepository defines the interface for artwork data operations
type ArtworkRepository interface {
	Create(ctx context.Context, artwork *models.Artwork) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Artwork, error)
	ListByUser(ctx context.Context, userID uint, currentUserID uint) ([]*models.Artwork, error)
	ListAll(ctx context.Context, currentUserID uint) ([]*models.Artwork, error)
	ListFollowed(ctx context.Context, viewerID uint) ([]*models.Artwork, error)
	ListByHashtag(ctx context.Context, tag string, currentUserID uint) ([]*models.Artwork, error)
	Update(ctx context.Context, artwork *models.Artwork) error
	Delete(ctx context.Context, id uint) error
}

// artworkRepository implements ArtworkRepository
type artworkRepository struct {
	db *gorm.DB
}

// NewArtworkRepository creates a new artwork repository
func NewArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &artworkRepository{db: db}
}

func (r *artworkRepository) Create(ctx context.Context, artwork *models.Artwork) error {
	if err := r.db.WithContext(ctx).Create(artwork).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *artworkRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Artwork, error) {
	var artwork models.Artwork
	err := r.applyArtworkDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&artwork, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Artwork", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &artwork, nil
}

func (r *artworkRepository) ListByUser(ctx context.Context, userID uint, currentUserID uint) ([]*models.Artwork, error) {
	var artworks []*models.Artwork
	err := r.applyArtworkDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&artworks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

// ListAll is the global discovery feed: every artwork newest-first with owner join.
func (r *artworkRepository) ListAll(ctx context.Context, currentUserID uint) ([]*models.Artwork, error) {
	var artworks []*models.Artwork
	err := r.applyArtworkDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&artworks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

// ListFollowed is the primary feed query: artworks whose owner the viewer
// follows, with derived engagement counts, newest first. The service layer
// falls back to per-followee fetches when this yields no rows.
func (r *artworkRepository) ListFollowed(ctx context.Context, viewerID uint) ([]*models.Artwork, error) {
	var artworks []*models.Artwork
	err := r.applyArtworkDetails(r.db.WithContext(ctx), viewerID).
		Preload("User").
		Where("EXISTS (SELECT 1 FROM follows WHERE follows.follower_id = ? AND follows.followee_id = artworks.user_id)", viewerID).
		Order("created_at DESC, id DESC").
		Find(&artworks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

// ListByHashtag resolves an exact tag to its artworks, newest first. An
// unknown tag yields an empty slice, not an error.
func (r *artworkRepository) ListByHashtag(ctx context.Context, tag string, currentUserID uint) ([]*models.Artwork, error) {
	var artworks []*models.Artwork
	err := r.applyArtworkDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Joins("JOIN artwork_hashtags ah ON ah.artwork_id = artworks.id").
		Joins("JOIN hashtags h ON h.id = ah.hashtag_id").
		Where("h.tag = ?", tag).
		Order("artworks.created_at DESC, artworks.id DESC").
		Find(&artworks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

func (r *artworkRepository) Update(ctx context.Context, artwork *models.Artwork) error {
	if err := r.db.WithContext(ctx).Save(artwork).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *artworkRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Artwork{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Artwork", id)
	}
	return nil
}

// applyArtworkDetails adds subqueries to fetch counts and liked status in a single query.
// The counts are always recomputed from the likes and comments tables; nothing
// is cached or trigger-maintained, so they cannot go stale.
func (r *artworkRepository) applyArtworkDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "artworks.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.artwork_id = artworks.id) as like_count, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.artwork_id = artworks.id AND comments.deleted_at IS NULL) as comment_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.artwork_id = artworks.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}
