package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type updatePostRequest struct {
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

// GetPosts returns a page of all posts, newest first
func (s *Server) GetPosts(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	posts, err := s.postService.ListPosts(c.UserContext(), limit, offset, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// CreatePost creates a post authored by the caller
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:   currentUserID(c),
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost returns a single post with its author, comments and like state
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := s.postService.GetPost(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost partially updates a post owned by the caller
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:   currentUserID(c),
		PostID:   postID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost deletes a post owned by the caller
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := s.postService.DeletePost(c.UserContext(), currentUserID(c), postID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// ToggleLike likes the post, or removes the caller's like when one exists
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	result, err := s.postService.ToggleLike(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": result})
}
