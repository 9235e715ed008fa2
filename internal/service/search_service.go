package service

import (
	"context"
	"strings"

	"artfolio/internal/models"
	"artfolio/internal/repository"
)

// SearchService resolves user, hashtag and tag-feed lookups. Results are
// capped at the repository layer; ordering is stable by id.
type SearchService struct {
	userRepo    repository.UserRepository
	hashtagRepo repository.HashtagRepository
	artworkRepo repository.ArtworkRepository
}

func NewSearchService(
	userRepo repository.UserRepository,
	hashtagRepo repository.HashtagRepository,
	artworkRepo repository.ArtworkRepository,
) *SearchService {
	return &SearchService{userRepo: userRepo, hashtagRepo: hashtagRepo, artworkRepo: artworkRepo}
}

func (s *SearchService) Users(ctx context.Context, query string) ([]models.UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	users, err := s.userRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

func (s *SearchService) Hashtags(ctx context.Context, query string) ([]models.Hashtag, error) {
	query = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(query), "#"))
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.hashtagRepo.Search(ctx, strings.ToLower(query))
}

// ArtworksForTag returns the artworks linked to an exact tag, newest first.
// The tag may arrive with or without a leading '#'. An unknown tag is an
// empty result, not an error.
func (s *SearchService) ArtworksForTag(ctx context.Context, tag string, currentUserID uint) ([]*models.Artwork, error) {
	tag = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
	if tag == "" {
		return nil, models.NewValidationError("Tag is required")
	}
	artworks, err := s.artworkRepo.ListByHashtag(ctx, tag, currentUserID)
	if err != nil {
		return nil, err
	}
	applyPlaceholders(artworks)
	return artworks, nil
}
