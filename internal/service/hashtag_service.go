package service

import (
	"context"
	"strings"

	"artfolio/internal/models"
	"artfolio/internal/repository"
)

// HashtagService indexes free-text tag input against artworks.
type HashtagService struct {
	hashtagRepo repository.HashtagRepository
}

func NewHashtagService(hashtagRepo repository.HashtagRepository) *HashtagService {
	return &HashtagService{hashtagRepo: hashtagRepo}
}

// ParseTags normalizes raw tag input: split on whitespace, strip one leading
// '#', lowercase, drop empties, dedup while preserving first-seen order.
func ParseTags(raw string) []string {
	fields := strings.Fields(raw)
	tags := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tag := strings.ToLower(strings.TrimPrefix(f, "#"))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// LinkTags parses the raw tag string and links each cleaned tag to the
// artwork. Empty input is a legal no-op; duplicate links are absorbed.
func (s *HashtagService) LinkTags(ctx context.Context, artworkID uint, raw string) error {
	for _, tag := range ParseTags(raw) {
		hashtag, err := s.hashtagRepo.GetOrCreate(ctx, tag)
		if err != nil {
			return err
		}
		if err := s.hashtagRepo.Link(ctx, artworkID, hashtag.ID); err != nil {
			return err
		}
	}
	return nil
}

// TagsForArtwork lists an artwork's hashtags alphabetically.
func (s *HashtagService) TagsForArtwork(ctx context.Context, artworkID uint) ([]models.Hashtag, error) {
	return s.hashtagRepo.ListByArtwork(ctx, artworkID)
}
