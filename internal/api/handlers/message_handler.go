// server/internal/api/handlers/message_handler.go
package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"cargolink-api-server/internal/models"
	"cargolink-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageHandler struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

type CreateMessageRequest struct {
	JobID   string `json:"jobId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type UpdateMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// messageCounterparty xác định người nhận: sender phải là poster hoặc
// transporter được gán của job, người nhận là phía còn lại.
func messageCounterparty(job *models.Job, senderID string) (string, error) {
	switch senderID {
	case job.PosterID:
		if job.TransporterID == "" {
			return "", models.BadRequest("job has no transporter to message yet")
		}
		return job.TransporterID, nil
	case job.TransporterID:
		return job.PosterID, nil
	default:
		return "", models.Unauthorized("only the job poster and assigned transporter can exchange messages")
	}
}

// isJobParticipant: chỉ hai bên của job được đọc thread tin nhắn.
// userID rỗng không bao giờ match, kể cả khi job chưa gán transporter.
func isJobParticipant(job *models.Job, userID string) bool {
	if userID == "" {
		return false
	}
	return userID == job.PosterID || userID == job.TransporterID
}

// CreateMessage gửi tin nhắn cho phía còn lại của job và đẩy realtime qua hub.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	var job models.Job
	err := h.DB.Collection("jobs").FindOne(context.Background(), bson.M{"jobID": req.JobID}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query job"})
		return
	}

	receiverID, err := messageCounterparty(&job, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	message := models.Message{
		MessageID:  fmt.Sprintf("MSG-%s", strings.ToUpper(uuid.New().String()[:8])),
		JobID:      job.JobID,
		SenderID:   userID,
		ReceiverID: receiverID,
		Content:    req.Content,
		IsRead:     false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := h.DB.Collection("messages").InsertOne(context.Background(), message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to create message"})
		return
	}

	// Đẩy realtime cho người nhận đang online (best-effort)
	payload := map[string]interface{}{
		"event":   "message",
		"message": message,
	}
	if err := h.Hub.SendJSON(receiverID, payload); err != nil {
		log.Printf("Failed to push message to %s: %v", receiverID, err)
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": message})
}

// GetMessage trả về một tin nhắn; chỉ sender hoặc receiver được xem.
func (h *MessageHandler) GetMessage(c *gin.Context) {
	messageID := c.Param("id")
	userID := c.GetString("user_id")

	var message models.Message
	err := h.DB.Collection("messages").FindOne(context.Background(), bson.M{"messageID": messageID}).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query message"})
		return
	}

	if message.SenderID != userID && message.ReceiverID != userID {
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "You are not a participant of this message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": message})
}

// UpdateMessage cho sender sửa nội dung tin nhắn của mình.
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	messageID := c.Param("id")
	userID := c.GetString("user_id")

	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	result, err := h.DB.Collection("messages").UpdateOne(context.Background(),
		bson.M{"messageID": messageID, "senderID": userID},
		bson.M{"$set": bson.M{"content": req.Content, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update message"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Message not found or not sent by you"})
		return
	}

	var message models.Message
	if err := h.DB.Collection("messages").FindOne(context.Background(), bson.M{"messageID": messageID}).Decode(&message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to reload message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": message})
}

// DeleteMessage xóa tin nhắn; chỉ sender xóa được.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	messageID := c.Param("id")
	userID := c.GetString("user_id")

	result, err := h.DB.Collection("messages").DeleteOne(context.Background(),
		bson.M{"messageID": messageID, "senderID": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete message"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Message not found or not sent by you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Message deleted"})
}

// GetJobMessages liệt kê thread tin nhắn của một job (mới nhất trước);
// chỉ poster và transporter được gán được xem.
func (h *MessageHandler) GetJobMessages(c *gin.Context) {
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

	if !isJobParticipant(&job, userID) {
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Only job participants can view its messages"})
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("messages").Find(context.Background(), bson.M{"jobID": jobID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query messages"})
		return
	}
	defer cursor.Close(context.Background())

	var messages []models.Message
	if err := cursor.All(context.Background(), &messages); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to decode messages"})
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": messages})
}

// GetMyMessages liệt kê mọi tin nhắn user gửi hoặc nhận (mới nhất trước).
func (h *MessageHandler) GetMyMessages(c *gin.Context) {
	userID := c.GetString("user_id")

	filter := bson.M{
		"$or": []bson.M{
			{"senderID": userID},
			{"receiverID": userID},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("messages").Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query messages"})
		return
	}
	defer cursor.Close(context.Background())

	var messages []models.Message
	if err := cursor.All(context.Background(), &messages); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to decode messages"})
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": messages})
}

// MarkMessageAsRead đặt cờ isRead; chỉ receiver đánh dấu được.
func (h *MessageHandler) MarkMessageAsRead(c *gin.Context) {
	messageID := c.Param("id")
	userID := c.GetString("user_id")

	result, err := h.DB.Collection("messages").UpdateOne(context.Background(),
		bson.M{"messageID": messageID, "receiverID": userID},
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update message"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Message not found or not addressed to you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Message marked as read"})
}
