// server/internal/notify/dispatcher.go
package notify

import (
	"context"
	"log"
	"strings"
	"time"

	"cargolink-api-server/internal/models"
	"cargolink-api-server/internal/socket"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Dispatcher ghi notification vào Mongo và đẩy realtime qua WebSocket hub.
// Mọi bước đều best-effort: lỗi chỉ được log, không bao giờ propagate
// ngược về nghiệp vụ đã commit.
type Dispatcher struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

func NewDispatcher(db *mongo.Database, hub *socket.Hub) *Dispatcher {
	return &Dispatcher{DB: db, Hub: hub}
}

// Notify tạo một notification cho user và đẩy qua WebSocket nếu đang online.
// Chạy fire-and-forget trên goroutine riêng; caller không chờ kết quả.
func (d *Dispatcher) Notify(userID string, kind models.NotificationType, title, message, jobID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		notification := models.Notification{
			NotificationID: "NTF-" + strings.ToUpper(uuid.New().String()[:8]),
			UserID:         userID,
			Type:           kind,
			Title:          title,
			Message:        message,
			JobID:          jobID,
			IsRead:         false,
			CreatedAt:      time.Now(),
		}

		if _, err := d.DB.Collection("notifications").InsertOne(ctx, notification); err != nil {
			log.Printf("Failed to persist notification for %s: %v", userID, err)
			return
		}

		// Đẩy realtime cho client đang online
		payload := map[string]interface{}{
			"event":        "notification",
			"notification": notification,
		}
		if err := d.Hub.SendJSON(userID, payload); err != nil {
			log.Printf("Failed to push notification to %s: %v", userID, err)
		}
	}()
}

// List trả về notifications của user (mới nhất trước) kèm số chưa đọc.
func (d *Dispatcher) List(ctx context.Context, userID string) ([]models.Notification, int64, error) {
	collection := d.DB.Collection("notifications")

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(50)
	cursor, err := collection.Find(ctx, bson.M{"userID": userID}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	unread, err := collection.CountDocuments(ctx, bson.M{"userID": userID, "isRead": false})
	if err != nil {
		return nil, 0, err
	}

	return notifications, unread, nil
}

// MarkRead đặt cờ isRead cho một notification của đúng user đó.
func (d *Dispatcher) MarkRead(ctx context.Context, userID, notificationID string) error {
	result, err := d.DB.Collection("notifications").UpdateOne(ctx,
		bson.M{"notificationID": notificationID, "userID": userID},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MarkAllRead đặt cờ isRead cho toàn bộ notifications chưa đọc của user.
func (d *Dispatcher) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	result, err := d.DB.Collection("notifications").UpdateMany(ctx,
		bson.M{"userID": userID, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// Delete xóa một notification của đúng user đó.
func (d *Dispatcher) Delete(ctx context.Context, userID, notificationID string) error {
	result, err := d.DB.Collection("notifications").DeleteOne(ctx,
		bson.M{"notificationID": notificationID, "userID": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
