// server/internal/models/bid.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BidStatus string // Trạng thái vòng đời của bid

const (
	BidPending   BidStatus = "PENDING"
	BidAccepted  BidStatus = "ACCEPTED"
	BidRejected  BidStatus = "REJECTED"
	BidWithdrawn BidStatus = "WITHDRAWN"
)

// Bid là đề nghị vận chuyển của một transporter cho một job.
// Mỗi cặp (jobID, transporterID) chỉ có tối đa một bid — ràng buộc
// bằng unique index ở tầng database, không chỉ pre-check.
type Bid struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BidID             string             `bson:"bidID" json:"bidID"`
	JobID             string             `bson:"jobID" json:"jobID"`
	TransporterID     string             `bson:"transporterID" json:"transporterID"`
	Amount            float64            `bson:"amount" json:"amount"`
	Message           string             `bson:"message,omitempty" json:"message,omitempty"`
	EstimatedDelivery *time.Time         `bson:"estimatedDelivery,omitempty" json:"estimatedDelivery,omitempty"`
	Status            BidStatus          `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
