package service

import (
	"context"
	"time"

	"artfolio/internal/models"
	"artfolio/internal/repository"
)

type LeaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
}

func NewLeaderboardService(leaderboardRepo repository.LeaderboardRepository) *LeaderboardService {
	return &LeaderboardService{leaderboardRepo: leaderboardRepo}
}

// ResolveWindow maps a period name to a concrete window. "month" and "year"
// resolve against the current UTC clock; anything else is all-time.
func ResolveWindow(period string, now time.Time) models.LeaderboardWindow {
	switch period {
	case "month":
		return models.LeaderboardWindow{Month: int(now.UTC().Month()), Year: now.UTC().Year()}
	case "year":
		return models.LeaderboardWindow{Year: now.UTC().Year()}
	default:
		return models.LeaderboardWindow{}
	}
}

func (s *LeaderboardService) TopArtworks(ctx context.Context, period string) ([]models.ArtworkRank, error) {
	ranks, err := s.leaderboardRepo.TopArtworks(ctx, ResolveWindow(period, time.Now()))
	if err != nil {
		return nil, err
	}
	for i := range ranks {
		if ranks[i].ImageURL == "" {
			ranks[i].ImageURL = models.PlaceholderImageURL
		}
		if ranks[i].Avatar == "" {
			ranks[i].Avatar = models.PlaceholderAvatarURL
		}
	}
	return ranks, nil
}

func (s *LeaderboardService) TopArtists(ctx context.Context, period string) ([]models.ArtistRank, error) {
	ranks, err := s.leaderboardRepo.TopArtists(ctx, ResolveWindow(period, time.Now()))
	if err != nil {
		return nil, err
	}
	for i := range ranks {
		if ranks[i].Avatar == "" {
			ranks[i].Avatar = models.PlaceholderAvatarURL
		}
	}
	return ranks, nil
}
