// server/internal/api/handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"cargolink-api-server/internal/bidding"
	"cargolink-api-server/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError map lỗi nghiệp vụ sang envelope {status:"error", message}.
// Lỗi không thuộc taxonomy được coi là Internal và không lộ chi tiết.
func respondError(c *gin.Context, err error) {
	var appErr *models.ErrorResponse
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, gin.H{"status": "error", "message": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
}

// actorFromContext đọc danh tính đã được middleware Authenticate đặt vào.
func actorFromContext(c *gin.Context) bidding.Actor {
	return bidding.Actor{
		UserID: c.GetString("user_id"),
		Role:   c.GetString("user_role"),
	}
}
