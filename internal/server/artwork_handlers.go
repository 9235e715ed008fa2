package server

import (
	"io"

	"artfolio/internal/models"
	"artfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateArtwork handles POST /api/artworks. The request is multipart form
// data: title, caption and tags as text fields plus an optional image file.
func (s *Server) CreateArtwork(c *fiber.Ctx) error {
	userID := currentUserID(c)

	in := service.CreateArtworkInput{
		UserID:  userID,
		Title:   c.FormValue("title"),
		Caption: c.FormValue("caption"),
		Tags:    c.FormValue("tags"),
	}

	if file, err := c.FormFile("image"); err == nil {
		src, openErr := file.Open()
		if openErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Unable to read uploaded file"))
		}
		content, readErr := io.ReadAll(src)
		_ = src.Close()
		if readErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Unable to read uploaded file"))
		}
		in.Image = content
		in.ImageContentType = file.Header.Get("Content-Type")
	}

	artwork, err := s.artworkService.Create(c.UserContext(), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(artwork)
}

// GetArtwork handles GET /api/artworks/:id
func (s *Server) GetArtwork(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	artwork, err := s.artworkService.Get(c.Context(), id, viewerID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(artwork)
}

// UpdateArtwork handles PUT /api/artworks/:id
func (s *Server) UpdateArtwork(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Caption string `json:"caption"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	artwork, err := s.artworkService.Update(c.Context(), service.UpdateArtworkInput{
		UserID:    currentUserID(c),
		ArtworkID: id,
		Title:     req.Title,
		Caption:   req.Caption,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(artwork)
}

// DeleteArtwork handles DELETE /api/artworks/:id
func (s *Server) DeleteArtwork(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.artworkService.Delete(c.Context(), currentUserID(c), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Artwork deleted"})
}

// GetArtworkHashtags handles GET /api/artworks/:id/hashtags
func (s *Server) GetArtworkHashtags(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, lookupErr := s.artworkService.Get(c.Context(), id, 0); lookupErr != nil {
		return models.RespondWithAppError(c, lookupErr)
	}

	tags, err := s.hashtagService.TagsForArtwork(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(tags)
}
