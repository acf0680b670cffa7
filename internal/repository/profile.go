// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines persistence operations for profiles and their
// follower relation. The many-to-many is an explicit join table; there is no
// lazy loading anywhere.
type ProfileRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, id uint) error
	CountFollowers(ctx context.Context, profileID uint) (int64, error)
	IsFollower(ctx context.Context, profileID, userID uint) (bool, error)
	AddFollower(ctx context.Context, profileID, userID uint) error
	RemoveFollower(ctx context.Context, profileID, userID uint) error
	FollowingUserIDs(ctx context.Context, userID uint) ([]uint, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Preload("User").First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// GetByUserID reads through the cache. Update and Delete invalidate the key,
// so a hit always reflects the last write to the profile row.
func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := cache.Aside(ctx, cache.ProfileKey(userID), &profile, cache.ProfileTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("User").
			Where("user_id = ?", userID).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Profile", userID)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Profile already exists. Use PUT to update.")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.ProfileKey(profile.UserID))
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.First(&profile, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Profile", id)
			}
			return models.NewInternalError(err)
		}
		if err := tx.Where("profile_id = ?", id).
			Delete(&models.ProfileFollower{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Delete(&models.Profile{}, id).Error; err != nil {
			return models.NewInternalError(err)
		}
		cache.Invalidate(ctx, cache.ProfileKey(profile.UserID))
		return nil
	})
}

func (r *profileRepository) CountFollowers(ctx context.Context, profileID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProfileFollower{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *profileRepository) IsFollower(ctx context.Context, profileID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProfileFollower{}).
		Where("profile_id = ? AND user_id = ?", profileID, userID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *profileRepository) AddFollower(ctx context.Context, profileID, userID uint) error {
	// ON CONFLICT DO NOTHING keeps concurrent identical toggles idempotent.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.ProfileFollower{ProfileID: profileID, UserID: userID}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) RemoveFollower(ctx context.Context, profileID, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND user_id = ?", profileID, userID).
		Delete(&models.ProfileFollower{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// FollowingUserIDs returns the IDs of users whose profiles the given user
// follows: the inverse view of the followers relation.
func (r *profileRepository) FollowingUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.ProfileFollower{}).
		Select("profiles.user_id").
		Joins("JOIN profiles ON profiles.id = profile_followers.profile_id").
		Where("profile_followers.user_id = ?", userID).
		Pluck("profiles.user_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
