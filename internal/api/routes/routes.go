// server/internal/api/routes/routes.go
package routes

import (
	"cargolink-api-server/config"
	"cargolink-api-server/internal/api/handlers"
	"cargolink-api-server/internal/api/middleware"
	"cargolink-api-server/internal/bidding"
	"cargolink-api-server/internal/models"
	"cargolink-api-server/internal/notify"
	"cargolink-api-server/internal/s3"
	"cargolink-api-server/internal/socket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter nhận vào các thành phần phụ thuộc và thiết lập các route
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	biddingService *bidding.Service,
	dispatcher *notify.Dispatcher,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// Khởi tạo các handlers
	authHandler := &handlers.AuthHandler{DB: db}
	jobHandler := &handlers.JobHandler{DB: db, Bidding: biddingService, Dispatcher: dispatcher, S3Uploader: s3Uploader}
	bidHandler := &handlers.BidHandler{Bidding: biddingService}
	vehicleHandler := &handlers.VehicleHandler{DB: db, S3Uploader: s3Uploader}
	trackingHandler := &handlers.TrackingHandler{DB: db, Dispatcher: dispatcher}
	messageHandler := &handlers.MessageHandler{DB: db, Hub: wsHub}
	notificationHandler := &handlers.NotificationHandler{Dispatcher: dispatcher}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	apiV1 := router.Group("/api/v1")
	{
		// Route cho WebSocket (token qua query param)
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === CÁC ROUTE KHÔNG YÊU CẦU XÁC THỰC ===
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// === CÁC ROUTE YÊU CẦU XÁC THỰC (PROTECTED) ===
		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate())
		{
			protected.GET("/auth/profile", authHandler.GetProfile)
			protected.PATCH("/auth/profile", authHandler.UpdateProfile)

			// Job management
			jobs := protected.Group("/jobs")
			{
				// Route tĩnh /bids phải nằm trước các route /:id
				bids := jobs.Group("/bids")
				{
					transporterBids := bids.Group("/")
					transporterBids.Use(middleware.Authorize(models.RoleTransporter))
					{
						transporterBids.POST("/", bidHandler.CreateBid)
						transporterBids.GET("/my", bidHandler.GetMyBids)
						transporterBids.PATCH("/:bidId", bidHandler.UpdateBid)
						transporterBids.PATCH("/:bidId/withdraw", bidHandler.WithdrawBid)
					}

					// Poster quyết định bid; bidding service kiểm tra đúng chủ job
					posterBids := bids.Group("/")
					posterBids.Use(middleware.Authorize(models.RoleCustomer, models.RoleCompany, models.RoleAdmin))
					{
						posterBids.PATCH("/:bidId/accept", bidHandler.AcceptBid)
						posterBids.PATCH("/:bidId/reject", bidHandler.RejectBid)
					}
				}

				jobs.POST("/", middleware.Authorize(models.RoleCustomer, models.RoleCompany, models.RoleAdmin), jobHandler.CreateJob)
				jobs.GET("/available", middleware.Authorize(models.RoleTransporter), jobHandler.GetAvailableJobs)
				jobs.GET("/my", jobHandler.GetMyJobs)
				jobs.GET("/:id", jobHandler.GetJob)
				jobs.PATCH("/:id", jobHandler.UpdateJob)
				jobs.DELETE("/:id", jobHandler.DeleteJob)
				jobs.PATCH("/:id/assign", jobHandler.AssignJob)
				jobs.POST("/:id/images", jobHandler.UploadJobImage)
				jobs.GET("/:id/bids", bidHandler.GetBidsForJob)

				// Tracking
				jobs.POST("/:id/tracking", middleware.Authorize(models.RoleTransporter), trackingHandler.CreateTracking)
				jobs.GET("/:id/tracking", trackingHandler.GetTrackingForJob)

				// Thread tin nhắn của job
				jobs.GET("/:id/messages", messageHandler.GetJobMessages)
			}

			// Messaging giữa poster và transporter
			messages := protected.Group("/messages")
			{
				messages.POST("/", messageHandler.CreateMessage)
				messages.GET("/my", messageHandler.GetMyMessages)
				messages.GET("/:id", messageHandler.GetMessage)
				messages.PATCH("/:id", messageHandler.UpdateMessage)
				messages.PATCH("/:id/read", messageHandler.MarkMessageAsRead)
				messages.DELETE("/:id", messageHandler.DeleteMessage)
			}

			// Vehicle management (chỉ transporter)
			vehicles := protected.Group("/vehicles")
			vehicles.Use(middleware.Authorize(models.RoleTransporter, models.RoleAdmin))
			{
				vehicles.POST("/", vehicleHandler.CreateVehicle)
				vehicles.GET("/my", vehicleHandler.GetMyVehicles)
				vehicles.GET("/:id", vehicleHandler.GetVehicle)
				vehicles.PATCH("/:id", vehicleHandler.UpdateVehicle)
				vehicles.DELETE("/:id", vehicleHandler.DeactivateVehicle)
				vehicles.POST("/:id/documents", vehicleHandler.UploadRegistrationDoc)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("/", notificationHandler.GetMyNotifications)
				notifications.PATCH("/read-all", notificationHandler.MarkAllAsRead)
				notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
				notifications.DELETE("/:id", notificationHandler.DeleteNotification)
			}
		}
	}

	return router
}
