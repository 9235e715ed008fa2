package server

import (
	"artfolio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/me/feed, the personalized feed of artworks by
// followed users.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	artworks, err := s.feedService.ComposeFeed(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(artworks)
}

// GetDiscoverFeed handles GET /api/artworks, the global newest-first feed.
func (s *Server) GetDiscoverFeed(c *fiber.Ctx) error {
	artworks, err := s.feedService.Discover(c.UserContext(), viewerID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(artworks)
}
