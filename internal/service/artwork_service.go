package service

import (
	"context"
	"log/slog"

	"artfolio/internal/middleware"
	"artfolio/internal/models"
	"artfolio/internal/observability"
	"artfolio/internal/repository"
	"artfolio/internal/storage"
	"artfolio/internal/validation"
)

const maxCaptionLen = 2000

// ArtworkService owns the artwork lifecycle: upload, edit, delete, reads.
// Ownership is enforced here, in the same request as the mutating write.
type ArtworkService struct {
	artworkRepo repository.ArtworkRepository
	userRepo    repository.UserRepository
	hashtags    *HashtagService
	blobs       storage.BlobStore
}

type CreateArtworkInput struct {
	UserID           uint
	Title            string
	Caption          string
	Tags             string
	Image            []byte
	ImageContentType string
}

type UpdateArtworkInput struct {
	UserID    uint
	ArtworkID uint
	Title     string
	Caption   string
}

func NewArtworkService(
	artworkRepo repository.ArtworkRepository,
	userRepo repository.UserRepository,
	hashtags *HashtagService,
	blobs storage.BlobStore,
) *ArtworkService {
	return &ArtworkService{
		artworkRepo: artworkRepo,
		userRepo:    userRepo,
		hashtags:    hashtags,
		blobs:       blobs,
	}
}

// Create validates input, uploads the image to the blob store, inserts the
// artwork and links its tags. A failure between upload and insert leaves an
// orphaned blob; that gap is logged and counted, never silently swallowed.
func (s *ArtworkService) Create(ctx context.Context, in CreateArtworkInput) (*models.Artwork, error) {
	if err := validation.ValidateArtworkTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if len(in.Caption) > maxCaptionLen {
		return nil, models.NewValidationError("Caption too long (max 2000 characters)")
	}
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	var imageURL string
	if len(in.Image) > 0 {
		url, err := s.blobs.Put(ctx, in.Image, in.ImageContentType)
		if err != nil {
			observability.BlobUploadErrors.Inc()
			return nil, models.NewStorageError(err)
		}
		imageURL = url
	}

	artwork := &models.Artwork{
		Title:    in.Title,
		Caption:  in.Caption,
		ImageURL: imageURL,
		UserID:   in.UserID,
	}
	if err := s.artworkRepo.Create(ctx, artwork); err != nil {
		if imageURL != "" {
			observability.OrphanedBlobs.Inc()
			middleware.Logger.ErrorContext(ctx, "artwork insert failed after blob upload, object orphaned",
				slog.String("image_url", imageURL),
				slog.Any("user_id", in.UserID),
			)
		}
		return nil, err
	}

	if err := s.hashtags.LinkTags(ctx, artwork.ID, in.Tags); err != nil {
		return nil, err
	}

	return s.artworkRepo.GetByID(ctx, artwork.ID, in.UserID)
}

func (s *ArtworkService) Get(ctx context.Context, id uint, currentUserID uint) (*models.Artwork, error) {
	artwork, err := s.artworkRepo.GetByID(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}
	artwork.ApplyPlaceholders()
	return artwork, nil
}

func (s *ArtworkService) ListByUser(ctx context.Context, userID uint, currentUserID uint) ([]*models.Artwork, error) {
	artworks, err := s.artworkRepo.ListByUser(ctx, userID, currentUserID)
	if err != nil {
		return nil, err
	}
	applyPlaceholders(artworks)
	return artworks, nil
}

// Update edits title/caption. Only the owner may edit; the owner itself is
// immutable.
func (s *ArtworkService) Update(ctx context.Context, in UpdateArtworkInput) (*models.Artwork, error) {
	artwork, err := s.artworkRepo.GetByID(ctx, in.ArtworkID, 0)
	if err != nil {
		return nil, err
	}
	if artwork.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own artworks")
	}

	if err := validation.ValidateArtworkTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if len(in.Caption) > maxCaptionLen {
		return nil, models.NewValidationError("Caption too long (max 2000 characters)")
	}

	artwork.Title = in.Title
	artwork.Caption = in.Caption
	if err := s.artworkRepo.Update(ctx, artwork); err != nil {
		return nil, err
	}
	return s.artworkRepo.GetByID(ctx, artwork.ID, in.UserID)
}

// Delete removes an artwork. Only the owner may delete.
func (s *ArtworkService) Delete(ctx context.Context, userID, artworkID uint) error {
	artwork, err := s.artworkRepo.GetByID(ctx, artworkID, 0)
	if err != nil {
		return err
	}
	if artwork.UserID != userID {
		return models.NewForbiddenError("You can only delete your own artworks")
	}
	return s.artworkRepo.Delete(ctx, artworkID)
}
