package server

import (
	"io"

	"artfolio/internal/cache"
	"artfolio/internal/models"
	"artfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// GetMyProfile handles GET /api/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/me. Accepts multipart form data so an
// avatar image can be uploaded alongside the text fields.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	in := service.UpdateProfileInput{
		UserID:   userID,
		Username: c.FormValue("username"),
		Bio:      c.FormValue("bio"),
	}

	if file, err := c.FormFile("avatar"); err == nil {
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
		in.Avatar = content
		in.AvatarContentType = file.Header.Get("Content-Type")
	}

	user, err := s.userService.UpdateProfile(ctx, in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	cache.InvalidateUser(ctx, userID)

	return c.JSON(user)
}

// GetUserArtworks handles GET /api/users/:id/artworks
func (s *Server) GetUserArtworks(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Verify the user exists so an unknown ID reads as 404, not empty list.
	if _, lookupErr := s.userService.GetProfile(c.Context(), id); lookupErr != nil {
		return models.RespondWithAppError(c, lookupErr)
	}

	artworks, err := s.artworkService.ListByUser(c.Context(), id, viewerID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(artworks)
}
