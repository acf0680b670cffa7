package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed returns posts authored by users the caller follows, newest first
func (s *Server) GetFeed(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	posts, err := s.feedService.Feed(c.UserContext(), currentUserID(c), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}
