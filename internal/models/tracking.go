// server/internal/models/tracking.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrackingUpdate là một sự kiện vị trí append-only của job đang vận chuyển.
// Chỉ transporter được gán mới tạo được; không bao giờ sửa sau khi ghi.
type TrackingUpdate struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TrackingID    string             `bson:"trackingID" json:"trackingID"`
	JobID         string             `bson:"jobID" json:"jobID"`
	TransporterID string             `bson:"transporterID" json:"transporterID"`
	Location      Location           `bson:"location" json:"location"`
	Status        string             `bson:"status" json:"status"` // ví dụ: IN_TRANSIT, DELIVERED
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
