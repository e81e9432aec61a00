// server/internal/bidding/status.go
package bidding

import (
	"fmt"
	"net/http"

	"cargolink-api-server/internal/models"
)

// jobTransitions định nghĩa đồ thị trạng thái cho phép của job.
// Mọi chuyển trạng thái không nằm trong bảng này đều bị từ chối.
var jobTransitions = map[models.JobStatus][]models.JobStatus{
	models.JobPending:     {models.JobOpenForBids, models.JobAssigned, models.JobCancelled},
	models.JobOpenForBids: {models.JobBidAccepted, models.JobCancelled},
	models.JobBidAccepted: {models.JobAssigned, models.JobCancelled},
	models.JobAssigned:    {models.JobInTransit, models.JobCancelled},
	models.JobInTransit:   {models.JobDelivered, models.JobCancelled},
	// Trạng thái cuối: không còn đường ra
	models.JobDelivered: {},
	models.JobCancelled: {},
}

// bidTransitions: PENDING là trạng thái sống duy nhất của bid;
// cả ba trạng thái còn lại đều là trạng thái cuối.
var bidTransitions = map[models.BidStatus][]models.BidStatus{
	models.BidPending:   {models.BidAccepted, models.BidRejected, models.BidWithdrawn},
	models.BidAccepted:  {},
	models.BidRejected:  {},
	models.BidWithdrawn: {},
}

// CanTransitionJob kiểm tra from -> to có phải là chuyển trạng thái hợp lệ của job không.
func CanTransitionJob(from, to models.JobStatus) bool {
	for _, s := range jobTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanTransitionBid kiểm tra from -> to có phải là chuyển trạng thái hợp lệ của bid không.
func CanTransitionBid(from, to models.BidStatus) bool {
	for _, s := range bidTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidateJobTransition trả về lỗi BadRequest khi chuyển trạng thái không hợp lệ.
func ValidateJobTransition(from, to models.JobStatus) error {
	if !CanTransitionJob(from, to) {
		return models.NewErrorResponse(http.StatusBadRequest,
			fmt.Sprintf("cannot transition from %s to %s", from, to))
	}
	return nil
}

// JobAcceptsBids: job chỉ nhận bid mới khi ở PENDING hoặc OPEN_FOR_BIDS.
func JobAcceptsBids(status models.JobStatus) bool {
	return status == models.JobPending || status == models.JobOpenForBids
}

// CanDeleteJob: job đã gán transporter hoặc đang vận chuyển thì không xóa được.
func CanDeleteJob(status models.JobStatus) bool {
	return status != models.JobAssigned && status != models.JobInTransit
}
