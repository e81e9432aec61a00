// server/internal/bidding/store.go
package bidding

import (
	"context"
	"errors"

	"cargolink-api-server/internal/models"
)

// Lỗi mức store; service dịch chúng sang taxonomy lỗi nghiệp vụ.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateBid = errors.New("bid already exists for this job and transporter")
)

// Store là handle lưu trữ tường minh của Bid Lifecycle Manager.
// Bản Mongo nằm ở internal/database; test dùng bản in-memory.
type Store interface {
	GetJob(ctx context.Context, jobID string) (*models.Job, error)
	GetBid(ctx context.Context, bidID string) (*models.Bid, error)

	// InsertBid trả về ErrDuplicateBid khi vi phạm unique index
	// (jobID, transporterID) — ràng buộc chặn race giữa hai submit song song.
	InsertBid(ctx context.Context, bid *models.Bid) error
	UpdateBid(ctx context.Context, bid *models.Bid) error
	SetBidStatus(ctx context.Context, bidID string, status models.BidStatus) error

	// RejectOtherPendingBids chuyển mọi bid PENDING khác của cùng job sang REJECTED.
	RejectOtherPendingBids(ctx context.Context, jobID, acceptedBidID string) error

	SetJobStatus(ctx context.Context, jobID string, status models.JobStatus) error
	AssignJob(ctx context.Context, jobID, transporterID, vehicleID string) error

	ListBidsForJob(ctx context.Context, jobID string) ([]models.Bid, error)
	ListBidsByTransporter(ctx context.Context, transporterID string) ([]models.Bid, error)

	// WithTransaction chạy fn như một đơn vị nguyên tử: mọi ghi trong fn
	// cùng thành công hoặc cùng bị rollback.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier là collaborator gửi thông báo; best-effort, không bao giờ
// chặn hay làm hỏng nghiệp vụ chính.
type Notifier interface {
	Notify(userID string, kind models.NotificationType, title, message, jobID string)
}
