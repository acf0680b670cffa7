// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines interface for notification operations.
// Notifications are append-only; MarkRead is the only mutation.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	ListByReceiver(ctx context.Context, receiverID uint, limit, offset int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.WithContext(ctx).Preload("Sender").First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Notification", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &notification, nil
}

func (r *notificationRepository) ListByReceiver(ctx context.Context, receiverID uint, limit, offset int) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
