package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetNotifications lists the caller's notifications, newest first
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	notifications, err := s.notificationService.ListForReceiver(
		c.UserContext(), currentUserID(c), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(notifications)
}

// MarkNotificationRead marks one of the caller's notifications as read
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	notificationID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	notification, err := s.notificationService.MarkRead(
		c.UserContext(), currentUserID(c), notificationID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(notification)
}
