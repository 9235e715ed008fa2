package repository

import (
	"context"
	"errors"

	"artfolio/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines the interface for like edge operations.
type LikeRepository interface {
	Create(ctx context.Context, userID, artworkID uint) error
	Delete(ctx context.Context, userID, artworkID uint) error
	Likers(ctx context.Context, artworkID uint) ([]models.User, error)
	ListLikedByUser(ctx context.Context, userID uint) ([]*models.Artwork, error)
	IsLiked(ctx context.Context, userID, artworkID uint) (bool, error)
}

// likeRepository implements LikeRepository
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, userID, artworkID uint) error {
	like := &models.Like{UserID: userID, ArtworkID: artworkID}
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewAlreadyExistsError("Already liked this artwork")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, artworkID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Delete(&models.Like{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return &models.AppError{Code: models.CodeNotFound, Message: "Like not found"}
	}
	return nil
}

func (r *likeRepository) Likers(ctx context.Context, artworkID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN likes ON users.id = likes.user_id").
		Where("likes.artwork_id = ?", artworkID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// ListLikedByUser returns the artworks a user liked, most recently liked first.
func (r *likeRepository) ListLikedByUser(ctx context.Context, userID uint) ([]*models.Artwork, error) {
	var artworks []*models.Artwork
	if err := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Preload("User").
		Joins("JOIN likes ON likes.artwork_id = artworks.id").
		Where("likes.user_id = ?", userID).
		Order("likes.id DESC").
		Find(&artworks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, artworkID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
