// server/internal/api/handlers/vehicle_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cargolink-api-server/internal/models"
	"cargolink-api-server/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type VehicleHandler struct {
	DB         *mongo.Database
	S3Uploader *s3.Uploader
}

type CreateVehiclePayload struct {
	PlateNumber string              `json:"plateNumber" binding:"required"`
	Make        string              `json:"make" binding:"required"`
	Model       string              `json:"model" binding:"required"`
	Year        int                 `json:"year"`
	Specs       models.VehicleSpecs `json:"specs" binding:"required"`
}

type UpdateVehiclePayload struct {
	PlateNumber *string              `json:"plateNumber"`
	Make        *string              `json:"make"`
	Model       *string              `json:"model"`
	Year        *int                 `json:"year"`
	Specs       *models.VehicleSpecs `json:"specs"`
	IsActive    *bool                `json:"isActive"`
}

// CreateVehicle đăng ký một phương tiện mới cho transporter đang đăng nhập.
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload CreateVehiclePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	ownerID := c.GetString("user_id")
	collection := h.DB.Collection("vehicles")

	// Kiểm tra biển số đã đăng ký cho một xe đang hoạt động chưa
	count, err := collection.CountDocuments(context.Background(), bson.M{"plateNumber": payload.PlateNumber, "isActive": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to check plate number"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Vehicle with this license plate is already registered"})
		return
	}

	now := time.Now()
	newVehicle := models.Vehicle{
		VehicleID:          fmt.Sprintf("VEH-%s", strings.ToUpper(uuid.New().String()[:8])),
		PlateNumber:        payload.PlateNumber,
		OwnerTransporterID: ownerID,
		Make:               payload.Make,
		Model:              payload.Model,
		Year:               payload.Year,
		Specs:              payload.Specs,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := collection.InsertOne(context.Background(), newVehicle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to create vehicle"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": newVehicle})
}

// GetMyVehicles liệt kê xe của transporter đang đăng nhập.
func (h *VehicleHandler) GetMyVehicles(c *gin.Context) {
	ownerID := c.GetString("user_id")

	cursor, err := h.DB.Collection("vehicles").Find(context.Background(), bson.M{"ownerTransporterID": ownerID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query vehicles"})
		return
	}
	defer cursor.Close(context.Background())

	var vehicles []models.Vehicle
	if err := cursor.All(context.Background(), &vehicles); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to decode vehicles"})
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": vehicles})
}

// GetVehicle trả về chi tiết một xe.
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicleID := c.Param("id")

	var vehicle models.Vehicle
	err := h.DB.Collection("vehicles").FindOne(context.Background(), bson.M{"vehicleID": vehicleID}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query vehicle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": vehicle})
}

// UpdateVehicle sửa thông tin xe của chính chủ.
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	vehicleID := c.Param("id")
	ownerID := c.GetString("user_id")

	var payload UpdateVehiclePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if payload.PlateNumber != nil {
		set["plateNumber"] = *payload.PlateNumber
	}
	if payload.Make != nil {
		set["make"] = *payload.Make
	}
	if payload.Model != nil {
		set["model"] = *payload.Model
	}
	if payload.Year != nil {
		set["year"] = *payload.Year
	}
	if payload.Specs != nil {
		set["specs"] = *payload.Specs
	}
	if payload.IsActive != nil {
		set["isActive"] = *payload.IsActive
	}

	result, err := h.DB.Collection("vehicles").UpdateOne(context.Background(),
		bson.M{"vehicleID": vehicleID, "ownerTransporterID": ownerID},
		bson.M{"$set": set},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update vehicle"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Vehicle not found or not owned by you"})
		return
	}

	var vehicle models.Vehicle
	if err := h.DB.Collection("vehicles").FindOne(context.Background(), bson.M{"vehicleID": vehicleID}).Decode(&vehicle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to reload vehicle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": vehicle})
}

// DeactivateVehicle soft-delete: đánh dấu xe không còn hoạt động.
func (h *VehicleHandler) DeactivateVehicle(c *gin.Context) {
	vehicleID := c.Param("id")
	ownerID := c.GetString("user_id")

	result, err := h.DB.Collection("vehicles").UpdateOne(context.Background(),
		bson.M{"vehicleID": vehicleID, "ownerTransporterID": ownerID},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to deactivate vehicle"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Vehicle not found or not owned by you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Vehicle deactivated"})
}

// UploadRegistrationDoc upload giấy tờ xe lên S3 và gắn vào hồ sơ xe.
func (h *VehicleHandler) UploadRegistrationDoc(c *gin.Context) {
	vehicleID := c.Param("id")
	ownerID := c.GetString("user_id")

	var vehicle models.Vehicle
	err := h.DB.Collection("vehicles").FindOne(context.Background(),
		bson.M{"vehicleID": vehicleID, "ownerTransporterID": ownerID}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Vehicle not found or not owned by you"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to query vehicle"})
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Document file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	docID := uuid.New().String()[:8]
	objectKey := fmt.Sprintf("vehicles/%s/%s-%s", vehicleID, docID, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.S3Uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to upload document"})
		return
	}

	doc := models.MediaPointer{
		ID:       docID,
		URL:      url,
		FileName: fileHeader.Filename,
		FileType: contentType,
	}
	update := bson.M{"$push": bson.M{"registrationDocs": doc}, "$set": bson.M{"updatedAt": time.Now()}}
	if _, err := h.DB.Collection("vehicles").UpdateOne(context.Background(), bson.M{"vehicleID": vehicleID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to attach document to vehicle"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": doc})
}
