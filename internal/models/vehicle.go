// server/internal/models/vehicle.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleSpecs struct {
	Type          string  `bson:"type" json:"type"` // TRUCK, VAN, MOTORBIKE
	Refrigerated  bool    `bson:"refrigerated" json:"refrigerated"`
	PayloadTonnes float64 `bson:"payloadTonnes" json:"payloadTonnes"` // Tải trọng (tấn)
	VolumeCBM     float64 `bson:"volumeCBM" json:"volumeCBM"`         // Thể tích (mét khối)
}

type Vehicle struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	VehicleID          string             `bson:"vehicleID" json:"vehicleID"` // ID tự tạo, dễ đọc
	PlateNumber        string             `bson:"plateNumber" json:"plateNumber"`
	OwnerTransporterID string             `bson:"ownerTransporterID" json:"ownerTransporterID"`
	Make               string             `bson:"make" json:"make"`
	Model              string             `bson:"model" json:"model"` // Ví dụ: "Hyundai Porter H150"
	Year               int                `bson:"year,omitempty" json:"year,omitempty"`
	Specs              VehicleSpecs       `bson:"specs" json:"specs"`
	IsActive           bool               `bson:"isActive" json:"isActive"`
	RegistrationDocs   []MediaPointer     `bson:"registrationDocs,omitempty" json:"registrationDocs,omitempty"` // Giấy tờ xe (tham chiếu S3)
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
