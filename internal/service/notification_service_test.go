package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("receiver can mark their notification", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		svc := NewNotificationService(repo)

		repo.On("GetByID", mock.Anything, uint(4)).
			Return(&models.Notification{ID: 4, ReceiverID: 1, SenderID: 2}, nil)
		repo.On("MarkRead", mock.Anything, uint(4)).Return(nil)

		notification, err := svc.MarkRead(ctx, 1, 4)
		require.NoError(t, err)
		assert.True(t, notification.Read)
	})

	t.Run("non-receiver is forbidden", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		svc := NewNotificationService(repo)

		repo.On("GetByID", mock.Anything, uint(4)).
			Return(&models.Notification{ID: 4, ReceiverID: 1, SenderID: 2}, nil)

		_, err := svc.MarkRead(ctx, 2, 4)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
		repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
	})
}
