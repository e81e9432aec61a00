// server/internal/api/handlers/bid_handler.go
package handlers

import (
	"net/http"
	"time"

	"cargolink-api-server/internal/bidding"

	"github.com/gin-gonic/gin"
)

// BidHandler là lớp HTTP mỏng trên Bid Lifecycle Manager:
// toàn bộ validation và quy tắc chuyển trạng thái nằm trong internal/bidding.
type BidHandler struct {
	Bidding *bidding.Service
}

// --- Structs cho Request Body ---

type CreateBidRequest struct {
	JobID             string     `json:"jobId" binding:"required"`
	Amount            float64    `json:"amount" binding:"required,gt=0"`
	Message           string     `json:"message"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
}

type UpdateBidRequest struct {
	Amount            *float64   `json:"amount"`
	Message           *string    `json:"message"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
}

// CreateBid nhận bid mới của transporter cho một job.
func (h *BidHandler) CreateBid(c *gin.Context) {
	var req CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	bid, err := h.Bidding.SubmitBid(c.Request.Context(), actorFromContext(c), bidding.SubmitBidInput{
		JobID:             req.JobID,
		Amount:            req.Amount,
		Message:           req.Message,
		EstimatedDelivery: req.EstimatedDelivery,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": bid})
}

// UpdateBid sửa một bid còn PENDING của chính transporter.
func (h *BidHandler) UpdateBid(c *gin.Context) {
	bidID := c.Param("bidId")

	var req UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	bid, err := h.Bidding.UpdateBid(c.Request.Context(), actorFromContext(c), bidID, bidding.UpdateBidInput{
		Amount:            req.Amount,
		Message:           req.Message,
		EstimatedDelivery: req.EstimatedDelivery,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": bid})
}

// AcceptBid: poster chọn bid thắng; các bid PENDING khác bị từ chối
// và job chuyển sang BID_ACCEPTED trong cùng một giao dịch.
func (h *BidHandler) AcceptBid(c *gin.Context) {
	bidID := c.Param("bidId")

	bid, err := h.Bidding.AcceptBid(c.Request.Context(), actorFromContext(c), bidID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": bid})
}

// RejectBid: poster từ chối một bid đơn lẻ.
func (h *BidHandler) RejectBid(c *gin.Context) {
	bidID := c.Param("bidId")

	bid, err := h.Bidding.RejectBid(c.Request.Context(), actorFromContext(c), bidID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": bid})
}

// WithdrawBid: transporter rút bid của mình khi còn PENDING.
func (h *BidHandler) WithdrawBid(c *gin.Context) {
	bidID := c.Param("bidId")

	if err := h.Bidding.WithdrawBid(c.Request.Context(), actorFromContext(c), bidID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Bid withdrawn successfully"})
}

// GetBidsForJob liệt kê bid của một job; chỉ poster được xem.
func (h *BidHandler) GetBidsForJob(c *gin.Context) {
	jobID := c.Param("id")

	bids, err := h.Bidding.ListBidsForJob(c.Request.Context(), actorFromContext(c), jobID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": bids})
}

// GetMyBids liệt kê mọi bid của transporter đang đăng nhập.
func (h *BidHandler) GetMyBids(c *gin.Context) {
	bids, err := h.Bidding.ListMyBids(c.Request.Context(), actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": bids})
}
