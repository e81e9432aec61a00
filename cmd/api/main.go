// server/cmd/api/main.go
package main

import (
	"context"
	"log"

	"cargolink-api-server/config"
	"cargolink-api-server/internal/api/routes"
	"cargolink-api-server/internal/auth"
	"cargolink-api-server/internal/bidding"
	"cargolink-api-server/internal/database"
	"cargolink-api-server/internal/notify"
	"cargolink-api-server/internal/s3"
	"cargolink-api-server/internal/socket"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load .env (nếu có) rồi đến file config
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 2. Khởi tạo JWT secret và thời hạn token
	auth.Init(cfg.JWT.Secret, cfg.JWT.Expiration)

	// 3. Kết nối MongoDB, tạo index và seed tài khoản admin
	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// 4. Khởi tạo WebSocket hub và notification dispatcher
	wsHub := socket.NewHub()
	dispatcher := notify.NewDispatcher(db, wsHub)

	// 5. Khởi tạo S3 uploader
	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to initialize S3 uploader: %v", err)
	}

	// 6. Khởi tạo Bid Lifecycle service trên store Mongo
	bidStore := database.NewBidStore(db)
	biddingService := bidding.NewService(bidStore, dispatcher)

	// 7. Truyền tất cả các thành phần cần thiết vào router
	router := routes.SetupRouter(cfg, db, biddingService, dispatcher, s3Uploader, wsHub)

	// 8. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
