// Package service contains the business rules sitting between handlers and repositories.
package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// ProfileService owns profile lifecycle and the follow relation.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// CreateProfileInput carries the fields a caller may set on their profile.
type CreateProfileInput struct {
	UserID uint
	Bio    string
	Avatar string
}

// UpdateProfileInput carries a partial update; nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID uint
	Bio    *string
	Avatar *string
}

// FollowResultFollowed and FollowResultUnfollowed are the two outcomes of a
// follow toggle.
const (
	FollowResultFollowed   = "Followed"
	FollowResultUnfollowed = "Unfollowed"
)

// NewProfileService creates a ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetOrCreate returns the caller's profile, creating an empty one on first
// access. The returned profile carries its computed follower count.
func (s *ProfileService) GetOrCreate(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		profile = &models.Profile{UserID: userID}
		if createErr := s.profileRepo.Create(ctx, profile); createErr != nil {
			return nil, createErr
		}
		// Re-read so the User association is populated.
		profile, err = s.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	return s.withFollowerCount(ctx, profile)
}

// Create persists a new profile for the caller. At most one profile may exist
// per user; a second create is a conflict.
func (s *ProfileService) Create(ctx context.Context, in CreateProfileInput) (*models.Profile, error) {
	if _, err := s.profileRepo.GetByUserID(ctx, in.UserID); err == nil {
		return nil, models.NewConflictError("Profile already exists. Use PUT to update.")
	} else if !isNotFound(err) {
		return nil, err
	}

	profile := &models.Profile{
		UserID: in.UserID,
		Bio:    in.Bio,
		Avatar: in.Avatar,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	created, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	return s.withFollowerCount(ctx, created)
}

// Update applies a partial update to the caller's own profile.
func (s *ProfileService) Update(ctx context.Context, in UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Bio != nil {
		profile.Bio = *in.Bio
	}
	if in.Avatar != nil {
		profile.Avatar = *in.Avatar
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return s.withFollowerCount(ctx, profile)
}

// Delete removes the caller's own profile along with its follower rows.
func (s *ProfileService) Delete(ctx context.Context, userID uint) error {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.profileRepo.Delete(ctx, profile.ID)
}

// ToggleFollow follows the target profile if the caller is not yet a follower,
// and unfollows otherwise. Following your own profile is rejected.
func (s *ProfileService) ToggleFollow(ctx context.Context, callerID, profileID uint) (string, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return "", err
	}

	if profile.UserID == callerID {
		return "", models.NewForbiddenError("You can't follow yourself")
	}

	following, err := s.profileRepo.IsFollower(ctx, profile.ID, callerID)
	if err != nil {
		return "", err
	}

	if following {
		if err := s.profileRepo.RemoveFollower(ctx, profile.ID, callerID); err != nil {
			return "", err
		}
		return FollowResultUnfollowed, nil
	}

	if err := s.profileRepo.AddFollower(ctx, profile.ID, callerID); err != nil {
		return "", err
	}
	return FollowResultFollowed, nil
}

func (s *ProfileService) withFollowerCount(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	count, err := s.profileRepo.CountFollowers(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	profile.FollowersCount = count
	return profile, nil
}

// isNotFound reports whether err is the repository's not-found error.
func isNotFound(err error) bool {
	appErr, ok := err.(*models.AppError)
	return ok && appErr.Code == "NOT_FOUND"
}
