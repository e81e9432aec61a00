// server/internal/bidding/service.go
package bidding

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cargolink-api-server/internal/models"

	"github.com/google/uuid"
)

// Actor là danh tính (userId, role) đã được middleware xác thực resolve sẵn.
// Service tin giá trị này, không xác thực lại token.
type Actor struct {
	UserID string
	Role   string
}

// Service là Bid Lifecycle Manager: giữ bất biến "mỗi job tối đa một bid
// ACCEPTED" và thực hiện accept-bid như một giao dịch nguyên tử ba bước.
type Service struct {
	store    Store
	notifier Notifier
	now      func() time.Time
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// --- Input structs cho từng operation ---

type SubmitBidInput struct {
	JobID             string
	Amount            float64
	Message           string
	EstimatedDelivery *time.Time
}

type UpdateBidInput struct {
	Amount            *float64
	Message           *string
	EstimatedDelivery *time.Time
}

type AssignJobInput struct {
	TransporterID string
	VehicleID     string
}

// SubmitBid tạo một bid PENDING mới cho job.
func (s *Service) SubmitBid(ctx context.Context, actor Actor, in SubmitBidInput) (*models.Bid, error) {
	job, err := s.store.GetJob(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, models.NotFound("job not found")
		}
		return nil, models.Internal("failed to load job")
	}

	// Middleware đã check role, nhưng service vẫn tự kiểm tra lại.
	if actor.Role != models.RoleTransporter {
		return nil, models.Unauthorized("only transporters can place bids")
	}

	if job.PosterID == actor.UserID {
		return nil, models.BadRequest("you cannot bid on your own job")
	}

	if !JobAcceptsBids(job.Status) {
		return nil, models.BadRequest("job is not accepting bids")
	}

	if err := s.checkAuctionTerms(job, in.Amount); err != nil {
		return nil, err
	}

	now := s.now()
	bid := &models.Bid{
		BidID:             fmt.Sprintf("BID-%s", strings.ToUpper(uuid.New().String()[:8])),
		JobID:             job.JobID,
		TransporterID:     actor.UserID,
		Amount:            in.Amount,
		Message:           in.Message,
		EstimatedDelivery: in.EstimatedDelivery,
		Status:            models.BidPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.store.InsertBid(ctx, bid); err != nil {
		if errors.Is(err, ErrDuplicateBid) {
			// Vi phạm unique index (jobID, transporterID) — kể cả khi hai
			// submit chạy song song vượt qua pre-check.
			return nil, models.BadRequest("you have already placed a bid for this job; update it instead")
		}
		return nil, models.Internal("failed to create bid")
	}

	// Bid đầu tiên mở phiên đấu giá cho job AUCTION còn ở PENDING.
	if job.Status == models.JobPending && job.Type == models.JobTypeAuction {
		if err := s.store.SetJobStatus(ctx, job.JobID, models.JobOpenForBids); err != nil {
			log.Printf("failed to open job %s for bids after first bid: %v", job.JobID, err)
		}
	}

	s.notifier.Notify(job.PosterID, models.NotifyBidReceived, "New Bid Received",
		fmt.Sprintf("You received a bid of $%.2f for %q", bid.Amount, job.Title), job.JobID)

	return bid, nil
}

// UpdateBid sửa các trường của một bid còn PENDING; trạng thái và chủ sở hữu giữ nguyên.
func (s *Service) UpdateBid(ctx context.Context, actor Actor, bidID string, in UpdateBidInput) (*models.Bid, error) {
	bid, err := s.store.GetBid(ctx, bidID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, models.NotFound("bid not found")
		}
		return nil, models.Internal("failed to load bid")
	}

	if bid.TransporterID != actor.UserID {
		return nil, models.Unauthorized("you can only update your own bids")
	}

	if bid.Status != models.BidPending {
		return nil, models.BadRequest("cannot update a bid that is not pending")
	}

	job, err := s.store.GetJob(ctx, bid.JobID)
	if err != nil {
		return nil, models.Internal("failed to load job for bid")
	}

	amount := bid.Amount
	if in.Amount != nil {
		amount = *in.Amount
	}
	// Cùng quy tắc hạn chót và giá sàn như lúc submit.
	if err := s.checkAuctionTerms(job, amount); err != nil {
		return nil, err
	}

	bid.Amount = amount
	if in.Message != nil {
		bid.Message = *in.Message
	}
	if in.EstimatedDelivery != nil {
		bid.EstimatedDelivery = in.EstimatedDelivery
	}
	bid.UpdatedAt = s.now()

	if err := s.store.UpdateBid(ctx, bid); err != nil {
		return nil, models.Internal("failed to update bid")
	}
	return bid, nil
}

// AcceptBid là operation giao dịch duy nhất của hệ thống: chấp nhận một bid,
// từ chối mọi bid PENDING còn lại của cùng job, và chuyển job sang
// BID_ACCEPTED — cả ba ghi cùng thành công hoặc không ghi gì cả.
// Việc gán transporter/vehicle vật lý là bước AssignJob riêng.
func (s *Service) AcceptBid(ctx context.Context, actor Actor, bidID string) (*models.Bid, error) {
	bid, job, err := s.loadBidForDecision(ctx, actor, bidID)
	if err != nil {
		return nil, err
	}

	// Chụp danh sách bid PENDING khác trước khi commit để còn biết ai thua.
	siblings, err := s.store.ListBidsForJob(ctx, job.JobID)
	if err != nil {
		return nil, models.Internal("failed to load competing bids")
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.SetBidStatus(ctx, bid.BidID, models.BidAccepted); err != nil {
			return err
		}
		if err := s.store.RejectOtherPendingBids(ctx, job.JobID, bid.BidID); err != nil {
			return err
		}
		return s.store.SetJobStatus(ctx, job.JobID, models.JobBidAccepted)
	})
	if err != nil {
		return nil, models.Internal("failed to accept bid")
	}

	bid.Status = models.BidAccepted
	bid.UpdatedAt = s.now()

	// Thông báo sau khi commit; lỗi gửi chỉ được log, không bao giờ
	// rollback trạng thái đã commit.
	s.notifier.Notify(bid.TransporterID, models.NotifyBidAccepted, "Bid Accepted!",
		fmt.Sprintf("Your bid for %q has been accepted!", job.Title), job.JobID)
	for _, sib := range siblings {
		if sib.BidID != bid.BidID && sib.Status == models.BidPending {
			s.notifier.Notify(sib.TransporterID, models.NotifyBidRejected, "Bid Rejected",
				fmt.Sprintf("Your bid for %q was not accepted", job.Title), job.JobID)
		}
	}

	return bid, nil
}

// RejectBid từ chối một bid đơn lẻ; không đụng tới job hay các bid khác.
func (s *Service) RejectBid(ctx context.Context, actor Actor, bidID string) (*models.Bid, error) {
	bid, job, err := s.loadBidForDecision(ctx, actor, bidID)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetBidStatus(ctx, bid.BidID, models.BidRejected); err != nil {
		return nil, models.Internal("failed to reject bid")
	}
	bid.Status = models.BidRejected
	bid.UpdatedAt = s.now()

	s.notifier.Notify(bid.TransporterID, models.NotifyBidRejected, "Bid Rejected",
		fmt.Sprintf("Your bid for %q was not accepted", job.Title), job.JobID)

	return bid, nil
}

// WithdrawBid cho transporter rút bid của chính mình khi còn PENDING.
func (s *Service) WithdrawBid(ctx context.Context, actor Actor, bidID string) error {
	bid, err := s.store.GetBid(ctx, bidID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.NotFound("bid not found")
		}
		return models.Internal("failed to load bid")
	}

	if bid.TransporterID != actor.UserID {
		return models.Unauthorized("you can only withdraw your own bids")
	}

	if bid.Status != models.BidPending {
		return models.BadRequest("cannot withdraw a bid that is not pending")
	}

	job, err := s.store.GetJob(ctx, bid.JobID)
	if err != nil {
		return models.Internal("failed to load job for bid")
	}

	// Sau hạn chót đấu giá thì không rút được nữa.
	if job.Type == models.JobTypeAuction && job.BiddingEndsAt != nil && s.now().After(*job.BiddingEndsAt) {
		return models.BadRequest("bidding period has ended")
	}

	if err := s.store.SetBidStatus(ctx, bid.BidID, models.BidWithdrawn); err != nil {
		return models.Internal("failed to withdraw bid")
	}
	return nil
}

// AssignJob ghi nhận việc gán vật lý: transporter và (tùy chọn) vehicle.
func (s *Service) AssignJob(ctx context.Context, actor Actor, jobID string, in AssignJobInput) (*models.Job, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, models.NotFound("job not found")
		}
		return nil, models.Internal("failed to load job")
	}

	if job.PosterID != actor.UserID && actor.Role != models.RoleAdmin {
		return nil, models.Unauthorized("you can only assign your own jobs")
	}

	if err := ValidateJobTransition(job.Status, models.JobAssigned); err != nil {
		return nil, err
	}

	if err := s.store.AssignJob(ctx, job.JobID, in.TransporterID, in.VehicleID); err != nil {
		return nil, models.Internal("failed to assign job")
	}

	job.Status = models.JobAssigned
	job.TransporterID = in.TransporterID
	job.VehicleID = in.VehicleID
	job.UpdatedAt = s.now()

	s.notifier.Notify(job.PosterID, models.NotifyJobAssigned, "Job Assigned",
		fmt.Sprintf("Your job %q has been assigned to a transporter", job.Title), job.JobID)
	s.notifier.Notify(in.TransporterID, models.NotifyJobAssigned, "Job Assigned to You",
		fmt.Sprintf("You have been assigned to job %q", job.Title), job.JobID)

	return job, nil
}

// ListBidsForJob trả về mọi bid của một job; chỉ poster của job được xem.
func (s *Service) ListBidsForJob(ctx context.Context, actor Actor, jobID string) ([]models.Bid, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, models.NotFound("job not found")
		}
		return nil, models.Internal("failed to load job")
	}

	if job.PosterID != actor.UserID {
		return nil, models.Unauthorized("only the job poster can view its bids")
	}

	bids, err := s.store.ListBidsForJob(ctx, jobID)
	if err != nil {
		return nil, models.Internal("failed to list bids")
	}
	return bids, nil
}

// ListMyBids trả về mọi bid của transporter đang gọi.
func (s *Service) ListMyBids(ctx context.Context, actor Actor) ([]models.Bid, error) {
	bids, err := s.store.ListBidsByTransporter(ctx, actor.UserID)
	if err != nil {
		return nil, models.Internal("failed to list bids")
	}
	return bids, nil
}

// --- helpers ---

// checkAuctionTerms áp quy tắc hạn chót và giá sàn cho job AUCTION.
func (s *Service) checkAuctionTerms(job *models.Job, amount float64) error {
	if job.Type != models.JobTypeAuction {
		return nil
	}
	if job.BiddingEndsAt != nil && s.now().After(*job.BiddingEndsAt) {
		return models.BadRequest("bidding period has ended")
	}
	if amount < job.StartingBid {
		return models.BadRequest(fmt.Sprintf("bid amount must be at least %.2f", job.StartingBid))
	}
	return nil
}

// loadBidForDecision gom các precondition chung của accept/reject:
// bid tồn tại, còn PENDING, job còn trong giai đoạn nhận bid,
// và người gọi là poster của job cha.
func (s *Service) loadBidForDecision(ctx context.Context, actor Actor, bidID string) (*models.Bid, *models.Job, error) {
	bid, err := s.store.GetBid(ctx, bidID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, models.NotFound("bid not found")
		}
		return nil, nil, models.Internal("failed to load bid")
	}

	job, err := s.store.GetJob(ctx, bid.JobID)
	if err != nil {
		return nil, nil, models.Internal("failed to load job for bid")
	}

	if job.PosterID != actor.UserID {
		return nil, nil, models.Unauthorized("only the job poster can decide on this bid")
	}

	if bid.Status != models.BidPending {
		return nil, nil, models.BadRequest("bid is not pending")
	}

	if !JobAcceptsBids(job.Status) {
		return nil, nil, models.BadRequest("job is not accepting bids")
	}

	return bid, job, nil
}
