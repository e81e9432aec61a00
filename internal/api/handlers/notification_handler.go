// server/internal/api/handlers/notification_handler.go
package handlers

import (
	"net/http"

	"cargolink-api-server/internal/notify"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationHandler struct {
	Dispatcher *notify.Dispatcher
}

// GetMyNotifications trả về notification của user kèm số chưa đọc.
func (h *NotificationHandler) GetMyNotifications(c *gin.Context) {
	userID := c.GetString("user_id")

	notifications, unread, err := h.Dispatcher.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"notifications": notifications,
			"unreadCount":   unread,
		},
	})
}

// MarkAsRead đánh dấu một notification đã đọc.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID := c.GetString("user_id")
	notificationID := c.Param("id")

	if err := h.Dispatcher.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Notification marked as read"})
}

// MarkAllAsRead đánh dấu toàn bộ notification của user đã đọc.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetString("user_id")

	updated, err := h.Dispatcher.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"updatedCount": updated}})
}

// DeleteNotification xoá một notification của chính user.
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	userID := c.GetString("user_id")
	notificationID := c.Param("id")

	if err := h.Dispatcher.Delete(c.Request.Context(), userID, notificationID); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Notification deleted"})
}
