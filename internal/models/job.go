// server/internal/models/job.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type (
	JobType   string // Loại job: giá cố định hay đấu giá
	JobStatus string // Trạng thái vòng đời của job
)

const (
	JobTypeStandard JobType = "STANDARD" // Giá do poster ấn định
	JobTypeAuction  JobType = "AUCTION"  // Giá quyết định bằng đấu giá

	JobPending     JobStatus = "PENDING"
	JobOpenForBids JobStatus = "OPEN_FOR_BIDS"
	JobBidAccepted JobStatus = "BID_ACCEPTED"
	JobAssigned    JobStatus = "ASSIGNED"
	JobInTransit   JobStatus = "IN_TRANSIT"
	JobDelivered   JobStatus = "DELIVERED"
	JobCancelled   JobStatus = "CANCELLED"
)

// Job là một yêu cầu vận chuyển do customer/company đăng.
type Job struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	JobID         string             `bson:"jobID" json:"jobID"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Type          JobType            `bson:"type" json:"type"`
	Status        JobStatus          `bson:"status" json:"status"`
	PosterID      string             `bson:"posterID" json:"posterID"`
	TransporterID string             `bson:"transporterID,omitempty" json:"transporterID,omitempty"`
	VehicleID     string             `bson:"vehicleID,omitempty" json:"vehicleID,omitempty"`

	Pickup               Location   `bson:"pickup" json:"pickup"`
	PickupAt             *time.Time `bson:"pickupAt,omitempty" json:"pickupAt,omitempty"`
	PickupInstructions   string     `bson:"pickupInstructions,omitempty" json:"pickupInstructions,omitempty"`
	Delivery             Location   `bson:"delivery" json:"delivery"`
	DeliveryAt           *time.Time `bson:"deliveryAt,omitempty" json:"deliveryAt,omitempty"`
	DeliveryInstructions string     `bson:"deliveryInstructions,omitempty" json:"deliveryInstructions,omitempty"`

	ItemType            string   `bson:"itemType" json:"itemType"`
	Weight              *Weight  `bson:"weight,omitempty" json:"weight,omitempty"`
	Dimensions          string   `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	IsFragile           bool     `bson:"isFragile" json:"isFragile"`
	IsOversized         bool     `bson:"isOversized" json:"isOversized"`
	SpecialRequirements string   `bson:"specialRequirements,omitempty" json:"specialRequirements,omitempty"`
	Images              []string `bson:"images,omitempty" json:"images,omitempty"`

	// Điều khoản giá: đúng một trong hai nhóm có ý nghĩa, tùy theo Type.
	FixedPrice    float64    `bson:"fixedPrice,omitempty" json:"fixedPrice,omitempty"`       // STANDARD
	StartingBid   float64    `bson:"startingBid,omitempty" json:"startingBid,omitempty"`     // AUCTION: giá sàn
	MaxBudget     float64    `bson:"maxBudget,omitempty" json:"maxBudget,omitempty"`         // AUCTION: ngân sách trần
	BiddingEndsAt *time.Time `bson:"biddingEndsAt,omitempty" json:"biddingEndsAt,omitempty"` // AUCTION: hạn chót đấu giá

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
