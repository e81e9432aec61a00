// server/internal/database/seeder.go
package database

import (
	"context"
	"log"
	"strings"
	"time"

	"cargolink-api-server/internal/auth"
	"cargolink-api-server/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedAdmin tạo tài khoản admin mặc định nếu chưa có.
func SeedAdmin(db *mongo.Database) error {
	userCollection := db.Collection("users")
	adminEmail := "admin@cargolink.local"

	// Kiểm tra xem admin đã tồn tại chưa
	count, err := userCollection.CountDocuments(context.Background(), bson.M{"email": adminEmail})
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin already exists. Seeding skipped.")
		return nil
	}

	log.Println("Admin not found. Seeding...")
	hashedPassword, err := auth.HashPassword("adminpassword") // Đặt một password mặc định
	if err != nil {
		return err
	}

	now := time.Now()
	admin := models.User{
		UserID:    "USR-" + strings.ToUpper(uuid.New().String()[:8]),
		Email:     adminEmail,
		Name:      "CargoLink Admin",
		Password:  hashedPassword,
		Role:      models.RoleAdmin,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = userCollection.InsertOne(context.Background(), admin)
	if err != nil {
		return err
	}

	log.Println("Admin seeded successfully.")
	return nil
}
