// server/internal/api/handlers/tracking_handler.go
package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"cargolink-api-server/internal/bidding"
	"cargolink-api-server/internal/models"
	"cargolink-api-server/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TrackingHandler struct {
	DB         *mongo.Database
	Dispatcher *notify.Dispatcher
}

type CreateTrackingRequest struct {
	Location    models.Location `json:"location" binding:"required"`
	Status      string          `json:"status" binding:"required"` // IN_TRANSIT, DELIVERED, ...
	Description string          `json:"description"`
}

// CreateTracking ghi một sự kiện vị trí mới cho job đang vận chuyển.
// Update đầu tiên chuyển job ASSIGNED -> IN_TRANSIT; status "DELIVERED"
// chốt job IN_TRANSIT -> DELIVERED và báo cho cả hai bên.
func (h *TrackingHandler) CreateTracking(c *gin.Context) {
	jobID := c.Param("id")
	userID := c.GetString("user_id")

	var req CreateTrackingRequest
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

	// Chỉ transporter được gán mới ghi tracking được
	if job.TransporterID != userID {
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Only the assigned transporter can add tracking updates"})
		return
	}

	if job.Status != models.JobAssigned && job.Status != models.JobInTransit {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Job is not in a trackable status"})
		return
	}

	tracking := models.TrackingUpdate{
		TrackingID:    fmt.Sprintf("TRK-%s", strings.ToUpper(uuid.New().String()[:8])),
		JobID:         jobID,
		TransporterID: userID,
		Location:      req.Location,
		Status:        req.Status,
		Description:   req.Description,
		CreatedAt:     time.Now(),
	}

	if _, err := h.DB.Collection("tracking_updates").InsertOne(context.Background(), tracking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to create tracking update"})
		return
	}

	// Cập nhật trạng thái job theo bảng chuyển trạng thái
	if job.Status == models.JobAssigned {
		if bidding.CanTransitionJob(job.Status, models.JobInTransit) {
			h.setJobStatus(jobID, models.JobInTransit)
			job.Status = models.JobInTransit
		}
	}
	if req.Status == "DELIVERED" && job.Status == models.JobInTransit {
		if bidding.CanTransitionJob(job.Status, models.JobDelivered) {
			h.setJobStatus(jobID, models.JobDelivered)

			h.Dispatcher.Notify(job.PosterID, models.NotifyJobCompleted, "Job Completed",
				fmt.Sprintf("Your job %q has been completed", job.Title), jobID)
			h.Dispatcher.Notify(job.TransporterID, models.NotifyJobCompleted, "Job Completed",
				fmt.Sprintf("Job %q has been marked as delivered", job.Title), jobID)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": tracking})
}

// GetTrackingForJob liệt kê tracking updates của job theo thứ tự thời gian.
func (h *TrackingHandler) GetTrackingForJob(c *gin.Context) {
	jobID := c.Param("id")

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := h.DB.Collection("tracking_updates").Find(context.Background(), bson.M{"jobID": jobID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query tracking updates"})
		return
	}
	defer cursor.Close(context.Background())

	var updates []models.TrackingUpdate
	if err := cursor.All(context.Background(), &updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to decode tracking updates"})
		return
	}
	if updates == nil {
		updates = []models.TrackingUpdate{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": updates})
}

func (h *TrackingHandler) setJobStatus(jobID string, status models.JobStatus) {
	_, err := h.DB.Collection("jobs").UpdateOne(context.Background(),
		bson.M{"jobID": jobID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		// Tracking đã ghi xong; lỗi cập nhật job chỉ log lại
		log.Printf("Failed to update job %s status to %s: %v", jobID, status, err)
	}
}
