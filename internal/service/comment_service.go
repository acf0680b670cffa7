package service

import (
	"context"
	"fmt"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxCommentLen = 10000

// CommentService owns comment CRUD and its notification side effect.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	notifier    *NotificationService
}

// CreateCommentInput carries the fields for a new comment.
type CreateCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

// UpdateCommentInput carries a comment edit.
type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Text      string
}

// NewCommentService creates a CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	notifier *NotificationService,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// CreateComment persists a comment and notifies the post's author.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxCommentLen {
		return nil, models.NewValidationError(fmt.Sprintf("Comment too long (max %d characters)", maxCommentLen))
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID, 0)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   in.Text,
		UserID: in.UserID,
		PostID: in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	sender, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if notifyErr := s.notifier.NotifyComment(ctx, sender, post.UserID); notifyErr != nil {
		// The comment itself succeeded; a failed notification is logged, not fatal.
		middleware.Logger.WarnContext(ctx, "failed to create comment notification",
			"post_id", in.PostID, "error", notifyErr.Error())
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a post's comments newest-first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// UpdateComment edits a comment's text. Only the author may edit.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own comment")
	}
	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxCommentLen {
		return nil, models.NewValidationError(fmt.Sprintf("Comment too long (max %d characters)", maxCommentLen))
	}

	comment.Text = in.Text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment removes a comment. Only the author may delete.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		return models.NewForbiddenError("You can only delete your own comment")
	}

	return s.commentRepo.Delete(ctx, commentID)
}
