package service

import (
	"context"

	"artfolio/internal/models"
	"artfolio/internal/observability"
	"artfolio/internal/repository"
	"artfolio/internal/storage"
	"artfolio/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
	blobs    storage.BlobStore
}

type UpdateProfileInput struct {
	UserID            uint
	Username          string
	Bio               string
	Avatar            []byte
	AvatarContentType string
}

func NewUserService(userRepo repository.UserRepository, blobs storage.BlobStore) *UserService {
	return &UserService{userRepo: userRepo, blobs: blobs}
}

// GetProfile returns a user by id with the avatar placeholder applied.
func (s *UserService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Avatar == "" {
		user.Avatar = models.PlaceholderAvatarURL
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	if user.Avatar == "" {
		user.Avatar = models.PlaceholderAvatarURL
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500

	if in.Username != "" && in.Username != user.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = in.Username
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if len(in.Avatar) > 0 {
		url, err := s.blobs.Put(ctx, in.Avatar, in.AvatarContentType)
		if err != nil {
			observability.BlobUploadErrors.Inc()
			return nil, models.NewStorageError(err)
		}
		user.Avatar = url
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.Avatar == "" {
		user.Avatar = models.PlaceholderAvatarURL
	}
	return user, nil
}
