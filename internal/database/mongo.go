// server/internal/database/mongo.go
package database

import (
	"context"
	"fmt"
	"time"

	"cargolink-api-server/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect mở kết nối MongoDB và trả về database handle.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client.Database(cfg.DBName), nil
}

// EnsureIndexes tạo các index mà nghiệp vụ phụ thuộc vào.
// Quan trọng nhất: unique index (jobID, transporterID) trên bids —
// bất biến "một bid cho mỗi cặp job/transporter" được DB cưỡng chế,
// không chỉ pre-check ở tầng service.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("bids").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "jobID", Value: 1}, {Key: "transporterID", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create bids index: %w", err)
	}

	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	_, err = db.Collection("notifications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userID", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create notifications index: %w", err)
	}

	_, err = db.Collection("tracking_updates").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "jobID", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create tracking index: %w", err)
	}

	_, err = db.Collection("messages").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "jobID", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create messages index: %w", err)
	}

	_, err = db.Collection("jobs").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create jobs index: %w", err)
	}

	return nil
}
