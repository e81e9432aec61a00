// server/internal/api/handlers/auth_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cargolink-api-server/internal/auth"
	"cargolink-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuthHandler struct {
	DB *mongo.Database
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role" binding:"required"` // CUSTOMER, COMPANY, TRANSPORTER
	CompanyName string `json:"companyName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"companyName"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
}

// Register tạo một tài khoản mới và trả về token đăng nhập luôn.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if req.Role != models.RoleCustomer && req.Role != models.RoleCompany && req.Role != models.RoleTransporter {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid role"})
		return
	}

	userCollection := h.DB.Collection("users")

	// Kiểm tra email đã đăng ký chưa (unique index là chốt chặn cuối)
	count, err := userCollection.CountDocuments(context.Background(), bson.M{"email": req.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to check existing user"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "Email already registered"})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to hash password"})
		return
	}

	now := time.Now()
	newUser := models.User{
		UserID:      fmt.Sprintf("USR-%s", strings.ToUpper(uuid.New().String()[:8])),
		Email:       req.Email,
		Name:        req.Name,
		Password:    hashedPassword,
		Role:        req.Role,
		CompanyName: req.CompanyName,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := userCollection.InsertOne(context.Background(), newUser); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to create user"})
		return
	}

	token, err := auth.GenerateJWT(newUser.UserID, newUser.Email, newUser.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data": gin.H{
			"user":  newUser,
			"token": token,
		},
	})
}

// Login xác thực email/password và phát hành JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	var user models.User
	err := h.DB.Collection("users").FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		// Không phân biệt "không tồn tại" và "sai password" trong response
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateJWT(user.UserID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"user":  user,
			"token": token,
		},
	})
}

// UpdateProfile cho user sửa hồ sơ của chính mình; password được hash lại.
// Email và role không đổi được qua endpoint này.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.CompanyName != nil {
		set["companyName"] = *req.CompanyName
	}
	if req.Password != nil {
		hashedPassword, err := auth.HashPassword(*req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to hash password"})
			return
		}
		set["password"] = hashedPassword
	}

	result, err := h.DB.Collection("users").UpdateOne(context.Background(),
		bson.M{"userID": userID},
		bson.M{"$set": set},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update profile"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User not found"})
		return
	}

	var user models.User
	if err := h.DB.Collection("users").FindOne(context.Background(), bson.M{"userID": userID}).Decode(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to reload user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

// GetProfile trả về thông tin user đang đăng nhập.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	err := h.DB.Collection("users").FindOne(context.Background(), bson.M{"userID": userID}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}
