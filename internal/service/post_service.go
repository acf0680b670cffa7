package service

import (
	"context"
	"fmt"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxPostLen = 10000

// PostService owns post CRUD and the like toggle.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	notifier *NotificationService
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	UserID   uint
	Content  string
	ImageURL string
}

// UpdatePostInput carries a partial update; nil fields are left unchanged.
type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Content  *string
	ImageURL *string
}

// LikeResultLiked and LikeResultUnliked are the two outcomes of a like toggle.
const (
	LikeResultLiked   = "Liked"
	LikeResultUnliked = "Unliked"
)

// NewPostService creates a PostService.
func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	notifier *NotificationService,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// CreatePost persists a post authored by the caller.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxPostLen {
		return nil, models.NewValidationError(fmt.Sprintf("Post too long (max %d characters)", maxPostLen))
	}

	post := &models.Post{
		Content:  in.Content,
		ImageURL: in.ImageURL,
		UserID:   in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// ListPosts returns all posts newest-first with author, like count and comments.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset, currentUserID)
}

// GetPost returns one post by id.
func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

// UpdatePost applies a partial update. Only the author may edit a post;
// created_at and authorship never change.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own post")
	}

	if in.Content != nil {
		if *in.Content == "" {
			return nil, models.NewValidationError("Content is required")
		}
		if len(*in.Content) > maxPostLen {
			return nil, models.NewValidationError(fmt.Sprintf("Post too long (max %d characters)", maxPostLen))
		}
		post.Content = *in.Content
	}
	if in.ImageURL != nil {
		post.ImageURL = *in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID, in.UserID)
}

// DeletePost removes a post. Only the author may delete it.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own post")
	}
	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike likes the post if the caller has no like on it, and unlikes
// otherwise. A fresh like notifies the post's author; an unlike stays silent.
// The like row and the notification are separate writes, so a crash between
// them can leave a like without its notification.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (string, error) {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return "", err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return "", err
	}

	if liked {
		if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return "", err
		}
		return LikeResultUnliked, nil
	}

	created, err := s.postRepo.Like(ctx, userID, postID)
	if err != nil {
		return "", err
	}
	if !created {
		// Lost a race against an identical toggle; the other request's
		// like row won, so treat this call as the unlike half.
		if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return "", err
		}
		return LikeResultUnliked, nil
	}

	sender, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if notifyErr := s.notifier.NotifyLike(ctx, sender, post.UserID); notifyErr != nil {
		// The like itself succeeded; a failed notification is logged, not fatal.
		middleware.Logger.WarnContext(ctx, "failed to create like notification",
			"post_id", postID, "error", notifyErr.Error())
	}
	return LikeResultLiked, nil
}
