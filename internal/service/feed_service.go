package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// FeedService assembles the following-based feed: posts authored by accounts
// the caller follows, newest-first.
type FeedService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
}

// NewFeedService creates a FeedService.
func NewFeedService(postRepo repository.PostRepository, profileRepo repository.ProfileRepository) *FeedService {
	return &FeedService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
}

// Feed returns the caller's feed. Following no one yields an empty slice,
// which is a valid state rather than an error.
func (s *FeedService) Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	authorIDs, err := s.profileRepo.FollowingUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(authorIDs) == 0 {
		return []*models.Post{}, nil
	}
	return s.postRepo.ListByAuthorIDs(ctx, authorIDs, limit, offset, userID)
}
