package server

import (
	"artfolio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// leaderboardPeriod normalizes the period query parameter.
func leaderboardPeriod(c *fiber.Ctx) string {
	switch period := c.Query("period", "all"); period {
	case "month", "year":
		return period
	default:
		return "all"
	}
}

// Leaderboards are computed against the live tables on every request so a
// fresh like is reflected in the next read.

// GetTopArtworks handles GET /api/leaderboards/artworks?period=all|year|month
func (s *Server) GetTopArtworks(c *fiber.Ctx) error {
	ranks, err := s.leaderboardService.TopArtworks(c.Context(), leaderboardPeriod(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(ranks)
}

// GetTopArtists handles GET /api/leaderboards/artists?period=all|year|month
func (s *Server) GetTopArtists(c *fiber.Ctx) error {
	ranks, err := s.leaderboardService.TopArtists(c.Context(), leaderboardPeriod(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(ranks)
}
