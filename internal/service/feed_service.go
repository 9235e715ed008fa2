package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"artfolio/internal/middleware"
	"artfolio/internal/models"
	"artfolio/internal/observability"
	"artfolio/internal/repository"
)

// FeedService composes the personalized "following" feed and the global
// discovery feed.
type FeedService struct {
	artworkRepo repository.ArtworkRepository
	followRepo  repository.FollowRepository
}

func NewFeedService(artworkRepo repository.ArtworkRepository, followRepo repository.FollowRepository) *FeedService {
	return &FeedService{artworkRepo: artworkRepo, followRepo: followRepo}
}

// ComposeFeed builds the viewer's feed: artworks by followed users, newest
// first, with derived like/comment counts.
//
// When the primary joined query yields zero rows the composer does not trust
// that result blindly: a viewer with followees should not silently see an
// empty feed because of a join edge case. It re-resolves the followee id set
// and, if any exist, fetches each followee's artworks independently, dedups
// by artwork id and re-sorts newest first. An empty result is only final when
// the viewer truly follows nobody (or the followees have no artworks).
func (s *FeedService) ComposeFeed(ctx context.Context, viewerID uint) ([]*models.Artwork, error) {
	start := time.Now()
	defer func() {
		observability.FeedCompositionLatency.Observe(time.Since(start).Seconds())
	}()

	artworks, err := s.artworkRepo.ListFollowed(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(artworks) > 0 {
		applyPlaceholders(artworks)
		return artworks, nil
	}

	followeeIDs, err := s.followRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(followeeIDs) == 0 {
		return []*models.Artwork{}, nil
	}

	observability.FeedFallbackTotal.Inc()
	middleware.Logger.WarnContext(ctx, "feed primary query empty despite followees, using fallback path",
		slog.Any("viewer_id", viewerID),
		slog.Int("followees", len(followeeIDs)),
	)

	return s.composeFallback(ctx, viewerID, followeeIDs)
}

// composeFallback fetches each followee's artworks independently and merges
// them. Duplicates by id collapse to one entry (the later fetch wins; the
// payload is identical per id so fetch order does not matter).
func (s *FeedService) composeFallback(ctx context.Context, viewerID uint, followeeIDs []uint) ([]*models.Artwork, error) {
	byID := make(map[uint]*models.Artwork)
	for _, followeeID := range followeeIDs {
		artworks, err := s.artworkRepo.ListByUser(ctx, followeeID, viewerID)
		if err != nil {
			return nil, err
		}
		for _, a := range artworks {
			byID[a.ID] = a
		}
	}

	merged := make([]*models.Artwork, 0, len(byID))
	for _, a := range byID {
		merged = append(merged, a)
	}
	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		}
		return merged[i].ID > merged[j].ID
	})

	applyPlaceholders(merged)
	return merged, nil
}

// Discover is the global feed: every artwork newest-first with owner join.
func (s *FeedService) Discover(ctx context.Context, currentUserID uint) ([]*models.Artwork, error) {
	artworks, err := s.artworkRepo.ListAll(ctx, currentUserID)
	if err != nil {
		return nil, err
	}
	applyPlaceholders(artworks)
	return artworks, nil
}
