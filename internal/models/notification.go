// server/internal/models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotifyNewJob       NotificationType = "NEW_JOB"
	NotifyBidReceived  NotificationType = "BID_RECEIVED"
	NotifyBidAccepted  NotificationType = "BID_ACCEPTED"
	NotifyBidRejected  NotificationType = "BID_REJECTED"
	NotifyJobAssigned  NotificationType = "JOB_ASSIGNED"
	NotifyJobCompleted NotificationType = "JOB_COMPLETED"
)

// Notification gửi cho đúng một user; chỉ cờ isRead được phép thay đổi.
type Notification struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	NotificationID string             `bson:"notificationID" json:"notificationID"`
	UserID         string             `bson:"userID" json:"userID"`
	Type           NotificationType   `bson:"type" json:"type"`
	Title          string             `bson:"title" json:"title"`
	Message        string             `bson:"message" json:"message"`
	JobID          string             `bson:"jobID,omitempty" json:"jobID,omitempty"`
	IsRead         bool               `bson:"isRead" json:"isRead"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
