// server/internal/api/handlers/job_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cargolink-api-server/internal/bidding"
	"cargolink-api-server/internal/models"
	"cargolink-api-server/internal/notify"
	"cargolink-api-server/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JobHandler struct {
	DB         *mongo.Database
	Bidding    *bidding.Service
	Dispatcher *notify.Dispatcher
	S3Uploader *s3.Uploader
}

// --- Structs cho Request Body ---

type CreateJobRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Type        models.JobType `json:"type" binding:"required"` // STANDARD hoặc AUCTION

	Pickup               models.Location `json:"pickup" binding:"required"`
	PickupAt             *time.Time      `json:"pickupAt"`
	PickupInstructions   string          `json:"pickupInstructions"`
	Delivery             models.Location `json:"delivery" binding:"required"`
	DeliveryAt           *time.Time      `json:"deliveryAt"`
	DeliveryInstructions string          `json:"deliveryInstructions"`

	ItemType            string         `json:"itemType" binding:"required"`
	Weight              *models.Weight `json:"weight"`
	Dimensions          string         `json:"dimensions"`
	IsFragile           bool           `json:"isFragile"`
	IsOversized         bool           `json:"isOversized"`
	SpecialRequirements string         `json:"specialRequirements"`

	FixedPrice    float64    `json:"fixedPrice"`
	StartingBid   float64    `json:"startingBid"`
	MaxBudget     float64    `json:"maxBudget"`
	BiddingEndsAt *time.Time `json:"biddingEndsAt"`
}

type UpdateJobRequest struct {
	Title         *string           `json:"title"`
	Description   *string           `json:"description"`
	Status        *models.JobStatus `json:"status"`
	PickupAt      *time.Time        `json:"pickupAt"`
	DeliveryAt    *time.Time        `json:"deliveryAt"`
	FixedPrice    *float64          `json:"fixedPrice"`
	MaxBudget     *float64          `json:"maxBudget"`
	BiddingEndsAt *time.Time        `json:"biddingEndsAt"`
}

type AssignJobRequest struct {
	TransporterID string `json:"transporterId" binding:"required"`
	VehicleID     string `json:"vehicleId"`
}

// CreateJob tạo một yêu cầu vận chuyển mới.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	posterID := c.GetString("user_id")

	// Đúng một nhóm điều khoản giá có ý nghĩa, tùy theo loại job.
	switch req.Type {
	case models.JobTypeStandard:
		if req.FixedPrice <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Fixed price is required for standard jobs"})
			return
		}
	case models.JobTypeAuction:
		if req.StartingBid <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Starting bid is required for auction jobs"})
			return
		}
		// Mặc định phiên đấu giá kéo dài 24 giờ
		if req.BiddingEndsAt == nil {
			endsAt := time.Now().Add(24 * time.Hour)
			req.BiddingEndsAt = &endsAt
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Job type must be STANDARD or AUCTION"})
		return
	}

	status := models.JobPending
	if req.Type == models.JobTypeAuction {
		status = models.JobOpenForBids
	}

	now := time.Now()
	newJob := models.Job{
		JobID:                fmt.Sprintf("JOB-%s", strings.ToUpper(uuid.New().String()[:8])),
		Title:                req.Title,
		Description:          req.Description,
		Type:                 req.Type,
		Status:               status,
		PosterID:             posterID,
		Pickup:               req.Pickup,
		PickupAt:             req.PickupAt,
		PickupInstructions:   req.PickupInstructions,
		Delivery:             req.Delivery,
		DeliveryAt:           req.DeliveryAt,
		DeliveryInstructions: req.DeliveryInstructions,
		ItemType:             req.ItemType,
		Weight:               req.Weight,
		Dimensions:           req.Dimensions,
		IsFragile:            req.IsFragile,
		IsOversized:          req.IsOversized,
		SpecialRequirements:  req.SpecialRequirements,
		FixedPrice:           req.FixedPrice,
		StartingBid:          req.StartingBid,
		MaxBudget:            req.MaxBudget,
		BiddingEndsAt:        req.BiddingEndsAt,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if _, err := h.DB.Collection("jobs").InsertOne(context.Background(), newJob); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to create job"})
		return
	}

	// Báo cho các transporter đang hoạt động về job mới (best-effort)
	go h.notifyTransportersAboutNewJob(newJob)

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": newJob})
}

// GetJob trả về chi tiết một job.
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("id")

	var job models.Job
	err := h.DB.Collection("jobs").FindOne(context.Background(), bson.M{"jobID": jobID}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": job})
}

// GetAvailableJobs liệt kê các job transporter có thể bid:
// còn nhận bid, không phải job mình đăng, và chưa quá hạn đấu giá.
func (h *JobHandler) GetAvailableJobs(c *gin.Context) {
	userID := c.GetString("user_id")

	filter := bson.M{
		"posterID": bson.M{"$ne": userID},
		"$or": []bson.M{
			{"status": models.JobPending},
			{"status": models.JobOpenForBids, "biddingEndsAt": bson.M{"$gt": time.Now()}},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("jobs").Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query jobs"})
		return
	}
	defer cursor.Close(context.Background())

	var jobs []models.Job
	if err := cursor.All(context.Background(), &jobs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to decode jobs"})
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": jobs})
}

// GetMyJobs liệt kê job mà user là poster hoặc transporter được gán.
func (h *JobHandler) GetMyJobs(c *gin.Context) {
	userID := c.GetString("user_id")

	filter := bson.M{
		"$or": []bson.M{
			{"posterID": userID},
			{"transporterID": userID},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("jobs").Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query jobs"})
		return
	}
	defer cursor.Close(context.Background())

	var jobs []models.Job
	if err := cursor.All(context.Background(), &jobs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to decode jobs"})
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": jobs})
}

// UpdateJob cho poster sửa job; đổi status phải đi qua bảng chuyển trạng thái.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	jobID := c.Param("id")
	userID := c.GetString("user_id")

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	var job models.Job
	err := h.DB.Collection("jobs").FindOne(context.Background(), bson.M{"jobID": jobID}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query job"})
		return
	}

	if job.PosterID != userID {
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "You can only update your own jobs"})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Status != nil {
		if err := bidding.ValidateJobTransition(job.Status, *req.Status); err != nil {
			respondError(c, err)
			return
		}
		set["status"] = *req.Status
	}
	if req.PickupAt != nil {
		set["pickupAt"] = *req.PickupAt
	}
	if req.DeliveryAt != nil {
		set["deliveryAt"] = *req.DeliveryAt
	}
	if req.FixedPrice != nil {
		set["fixedPrice"] = *req.FixedPrice
	}
	if req.MaxBudget != nil {
		set["maxBudget"] = *req.MaxBudget
	}
	if req.BiddingEndsAt != nil {
		set["biddingEndsAt"] = *req.BiddingEndsAt
	}

	if _, err := h.DB.Collection("jobs").UpdateOne(context.Background(), bson.M{"jobID": jobID}, bson.M{"$set": set}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update job"})
		return
	}

	err = h.DB.Collection("jobs").FindOne(context.Background(), bson.M{"jobID": jobID}).Decode(&job)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to reload job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": job})
}

// AssignJob gán transporter (và xe, nếu có) cho job qua Bid Lifecycle Manager.
func (h *JobHandler) AssignJob(c *gin.Context) {
	jobID := c.Param("id")

	var req AssignJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	job, err := h.Bidding.AssignJob(c.Request.Context(), actorFromContext(c), jobID, bidding.AssignJobInput{
		TransporterID: req.TransporterID,
		VehicleID:     req.VehicleID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": job})
}

// DeleteJob xóa job khi chưa gán transporter và chưa vận chuyển.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID := c.Param("id")
	userID := c.GetString("user_id")

	var job models.Job
	err := h.DB.Collection("jobs").FindOne(context.Background(), bson.M{"jobID": jobID}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query job"})
		return
	}

	if job.PosterID != userID {
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "You can only delete your own jobs"})
		return
	}

	if !bidding.CanDeleteJob(job.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Cannot delete job that is already assigned or in transit"})
		return
	}

	if _, err := h.DB.Collection("jobs").DeleteOne(context.Background(), bson.M{"jobID": jobID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Job deleted successfully"})
}

// UploadJobImage upload ảnh hàng hóa lên S3 và gắn URL vào job.
func (h *JobHandler) UploadJobImage(c *gin.Context) {
	jobID := c.Param("id")
	userID := c.GetString("user_id")

	var job models.Job
	err := h.DB.Collection("jobs").FindOne(context.Background(), bson.M{"jobID": jobID}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query job"})
		return
	}

	if job.PosterID != userID {
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "You can only upload images for your own jobs"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("jobs/%s/%s-%s", jobID, uuid.New().String()[:8], fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.S3Uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to upload image"})
		return
	}

	update := bson.M{"$push": bson.M{"images": url}, "$set": bson.M{"updatedAt": time.Now()}}
	if _, err := h.DB.Collection("jobs").UpdateOne(context.Background(), bson.M{"jobID": jobID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to attach image to job"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": gin.H{"url": url}})
}

// notifyTransportersAboutNewJob fan-out thông báo NEW_JOB cho mọi transporter đang active.
func (h *JobHandler) notifyTransportersAboutNewJob(job models.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := h.DB.Collection("users").Find(ctx, bson.M{"role": models.RoleTransporter, "status": "active"})
	if err != nil {
		return
	}
	defer cursor.Close(ctx)

	var transporters []models.User
	if err := cursor.All(ctx, &transporters); err != nil {
		return
	}

	for _, t := range transporters {
		h.Dispatcher.Notify(t.UserID, models.NotifyNewJob, "New Job Available",
			fmt.Sprintf("New %s job posted: %s", strings.ToLower(string(job.Type)), job.Title), job.JobID)
	}
}
