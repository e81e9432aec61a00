// server/internal/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò trong marketplace.
const (
	RoleCustomer    = "CUSTOMER"
	RoleCompany     = "COMPANY"
	RoleTransporter = "TRANSPORTER"
	RoleAdmin       = "ADMIN"
)

// User struct matches the document in MongoDB.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID      string             `bson:"userID" json:"userID"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
	Password    string             `bson:"password" json:"-"`
	Role        string             `bson:"role" json:"role"` // CUSTOMER, COMPANY, TRANSPORTER, ADMIN
	CompanyName string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
	Status      string             `bson:"status" json:"status"` // active, suspended
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
