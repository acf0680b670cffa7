package service

import (
	"context"
	"fmt"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// NotificationService records engagement events and serves the inbox.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// NotifyLike records a "liked your post" notification for the post's author.
func (s *NotificationService) NotifyLike(ctx context.Context, sender *models.User, receiverID uint) error {
	return s.create(ctx, sender, receiverID, fmt.Sprintf("%s liked your post.", sender.Username), "like")
}

// NotifyComment records a "commented on your post" notification for the post's author.
func (s *NotificationService) NotifyComment(ctx context.Context, sender *models.User, receiverID uint) error {
	return s.create(ctx, sender, receiverID, fmt.Sprintf("%s commented on your post.", sender.Username), "comment")
}

func (s *NotificationService) create(ctx context.Context, sender *models.User, receiverID uint, message, kind string) error {
	err := s.notificationRepo.Create(ctx, &models.Notification{
		SenderID:   sender.ID,
		ReceiverID: receiverID,
		Message:    message,
	})
	if err != nil {
		return err
	}
	middleware.NotificationsCreated.WithLabelValues(kind).Inc()
	return nil
}

// ListForReceiver returns the caller's notifications newest-first.
func (s *NotificationService) ListForReceiver(ctx context.Context, receiverID uint, limit, offset int) ([]*models.Notification, error) {
	return s.notificationRepo.ListByReceiver(ctx, receiverID, limit, offset)
}

// MarkRead flips the read flag. Only the receiver may mark their notification.
func (s *NotificationService) MarkRead(ctx context.Context, callerID, notificationID uint) (*models.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification.ReceiverID != callerID {
		return nil, models.NewForbiddenError("You can only mark your own notifications")
	}
	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}
	notification.Read = true
	return notification, nil
}
