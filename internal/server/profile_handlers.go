package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type profileRequest struct {
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
}

// GetProfile returns the caller's profile, creating an empty one on first
// access.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetOrCreate(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// CreateProfile explicitly creates the caller's profile
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.CreateProfileInput{UserID: currentUserID(c)}
	if req.Bio != nil {
		in.Bio = *req.Bio
	}
	if req.Avatar != nil {
		in.Avatar = *req.Avatar
	}

	profile, err := s.profileService.Create(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// UpdateProfile partially updates the caller's profile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.Update(c.UserContext(), service.UpdateProfileInput{
		UserID: currentUserID(c),
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteProfile removes the caller's profile along with its follower edges
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	if err := s.profileService.Delete(c.UserContext(), currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Profile deleted"})
}

// ToggleFollow follows the target profile, or unfollows when the caller
// already follows it.
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	profileID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	result, err := s.profileService.ToggleFollow(c.UserContext(), currentUserID(c), profileID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": result})
}
