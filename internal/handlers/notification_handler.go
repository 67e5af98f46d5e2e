package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sakmpar/social-blog/internal/repositories"
)

// notificationsLimit caps how many notifications are returned per request
const notificationsLimit = 50

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notificationRepo}
}

// RegisterNotificationRoutes registers notification-related routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
}

// GetNotifications lists the current user's notifications, newest first,
// with the unread count
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID := currentUserID(c)

	notifications, err := h.notificationRepository.GetNotificationsByRecipient(userID, notificationsLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	unread, err := h.notificationRepository.CountUnread(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkAsRead marks one of the current user's notifications as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	notificationID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.notificationRepository.MarkAsRead(notificationID, currentUserID(c)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Notification marked as read",
	})
}
