// server/internal/models/message.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message là tin nhắn trong ứng dụng giữa poster và transporter của một job.
// Chỉ hai bên tham gia job mới gửi/đọc được.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	MessageID  string             `bson:"messageID" json:"messageID"`
	JobID      string             `bson:"jobID" json:"jobID"`
	SenderID   string             `bson:"senderID" json:"senderID"`
	ReceiverID string             `bson:"receiverID" json:"receiverID"`
	Content    string             `bson:"content" json:"content"`
	IsRead     bool               `bson:"isRead" json:"isRead"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
