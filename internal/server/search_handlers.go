package server

import (
	"artfolio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SearchUsers handles GET /api/search/users?q=...
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	users, err := s.searchService.Users(c.Context(), c.Query("q"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(users)
}

// SearchHashtags handles GET /api/search/hashtags?q=...
func (s *Server) SearchHashtags(c *fiber.Ctx) error {
	tags, err := s.searchService.Hashtags(c.Context(), c.Query("q"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(tags)
}

// GetHashtagFeed handles GET /api/hashtags/:tag/artworks
func (s *Server) GetHashtagFeed(c *fiber.Ctx) error {
	artworks, err := s.searchService.ArtworksForTag(c.Context(), c.Params("tag"), viewerID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(artworks)
}
