package repository

import (
	"context"
	"errors"

	"artfolio/internal/models"

	"gorm.io/gorm"
)

// SaveRepository defines the interface for save (bookmark) edge operations.
type SaveRepository interface {
	Create(ctx context.Context, userID, artworkID uint) error
	Delete(ctx context.Context, userID, artworkID uint) error
	ListSavedByUser(ctx context.Context, userID uint) ([]*models.Artwork, error)
	IsSaved(ctx context.Context, userID, artworkID uint) (bool, error)
}

// saveRepository implements SaveRepository
type saveRepository struct {
	db *gorm.DB
}

// NewSaveRepository creates a new save repository
func NewSaveRepository(db *gorm.DB) SaveRepository {
	return &saveRepository{db: db}
}

func (r *saveRepository) Create(ctx context.Context, userID, artworkID uint) error {
	save := &models.Save{UserID: userID, ArtworkID: artworkID}
	if err := r.db.WithContext(ctx).Create(save).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewAlreadyExistsError("Already saved this artwork")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *saveRepository) Delete(ctx context.Context, userID, artworkID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Delete(&models.Save{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return &models.AppError{Code: models.CodeNotFound, Message: "Artwork not saved"}
	}
	return nil
}

// ListSavedByUser returns the artworks a user saved, most recently saved first.
func (r *saveRepository) ListSavedByUser(ctx context.Context, userID uint) ([]*models.Artwork, error) {
	var artworks []*models.Artwork
	if err := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Preload("User").
		Joins("JOIN saves ON saves.artwork_id = artworks.id").
		Where("saves.user_id = ?", userID).
		Order("saves.id DESC").
		Find(&artworks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

func (r *saveRepository) IsSaved(ctx context.Context, userID, artworkID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Save{}).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
