package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	Text string `json:"text"`
}

// CreateComment adds a comment to a post
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID: currentUserID(c),
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments lists a post's comments, newest first
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	comments, err := s.commentService.ListComments(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// UpdateComment edits a comment owned by the caller
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.UserContext(), service.UpdateCommentInput{
		UserID:    currentUserID(c),
		CommentID: commentID,
		Text:      req.Text,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment deletes a comment owned by the caller
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := s.commentService.DeleteComment(c.UserContext(), currentUserID(c), commentID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
