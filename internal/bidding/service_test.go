// server/internal/bidding/service_test.go
package bidding

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargolink-api-server/internal/models"
)

// fakeStore giữ job/bid trong map, mô phỏng unique index (jobID, transporterID)
// của collection bids để test được cả đường đua duplicate.
type fakeStore struct {
	jobs map[string]*models.Job
	bids map[string]*models.Bid

	failTransaction bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobs: make(map[string]*models.Job),
		bids: make(map[string]*models.Bid),
	}
}

func (f *fakeStore) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func (f *fakeStore) GetBid(ctx context.Context, bidID string) (*models.Bid, error) {
	bid, ok := f.bids[bidID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *bid
	return &cp, nil
}

func (f *fakeStore) InsertBid(ctx context.Context, bid *models.Bid) error {
	for _, existing := range f.bids {
		if existing.JobID == bid.JobID && existing.TransporterID == bid.TransporterID {
			return ErrDuplicateBid
		}
	}
	cp := *bid
	f.bids[bid.BidID] = &cp
	return nil
}

func (f *fakeStore) UpdateBid(ctx context.Context, bid *models.Bid) error {
	if _, ok := f.bids[bid.BidID]; !ok {
		return ErrNotFound
	}
	cp := *bid
	f.bids[bid.BidID] = &cp
	return nil
}

func (f *fakeStore) SetBidStatus(ctx context.Context, bidID string, status models.BidStatus) error {
	bid, ok := f.bids[bidID]
	if !ok {
		return ErrNotFound
	}
	bid.Status = status
	return nil
}

func (f *fakeStore) RejectOtherPendingBids(ctx context.Context, jobID, acceptedBidID string) error {
	for _, bid := range f.bids {
		if bid.JobID == jobID && bid.BidID != acceptedBidID && bid.Status == models.BidPending {
			bid.Status = models.BidRejected
		}
	}
	return nil
}

func (f *fakeStore) SetJobStatus(ctx context.Context, jobID string, status models.JobStatus) error {
	job, ok := f.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	job.Status = status
	return nil
}

func (f *fakeStore) AssignJob(ctx context.Context, jobID, transporterID, vehicleID string) error {
	job, ok := f.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	job.Status = models.JobAssigned
	job.TransporterID = transporterID
	job.VehicleID = vehicleID
	return nil
}

func (f *fakeStore) ListBidsForJob(ctx context.Context, jobID string) ([]models.Bid, error) {
	var out []models.Bid
	for _, bid := range f.bids {
		if bid.JobID == jobID {
			out = append(out, *bid)
		}
	}
	return out, nil
}

func (f *fakeStore) ListBidsByTransporter(ctx context.Context, transporterID string) ([]models.Bid, error) {
	var out []models.Bid
	for _, bid := range f.bids {
		if bid.TransporterID == transporterID {
			out = append(out, *bid)
		}
	}
	return out, nil
}

func (f *fakeStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.failTransaction {
		return errors.New("transaction aborted")
	}
	return fn(ctx)
}

// recordingNotifier ghi lại mọi notification để test kiểm tra ai được báo gì.
type recordingNotifier struct {
	sent []sentNotification
}

type sentNotification struct {
	UserID string
	Kind   models.NotificationType
	JobID  string
}

func (r *recordingNotifier) Notify(userID string, kind models.NotificationType, title, message, jobID string) {
	r.sent = append(r.sent, sentNotification{UserID: userID, Kind: kind, JobID: jobID})
}

func (r *recordingNotifier) countFor(userID string, kind models.NotificationType) int {
	n := 0
	for _, s := range r.sent {
		if s.UserID == userID && s.Kind == kind {
			n++
		}
	}
	return n
}

// --- test fixtures ---

const (
	posterID      = "USR-POSTER01"
	transporterA  = "USR-TRANSA01"
	transporterB  = "USR-TRANSB01"
	transporterC  = "USR-TRANSC01"
	standardJobID = "JOB-STD00001"
	auctionJobID  = "JOB-AUC00001"
)

func fixedTime() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestService(store *fakeStore) (*Service, *recordingNotifier) {
	notifier := &recordingNotifier{}
	svc := NewService(store, notifier)
	svc.now = fixedTime
	return svc, notifier
}

func addStandardJob(store *fakeStore) *models.Job {
	job := &models.Job{
		JobID:      standardJobID,
		Title:      "Deliver furniture",
		Type:       models.JobTypeStandard,
		Status:     models.JobPending,
		PosterID:   posterID,
		FixedPrice: 500,
	}
	store.jobs[job.JobID] = job
	return job
}

func addAuctionJob(store *fakeStore, endsAt time.Time) *models.Job {
	job := &models.Job{
		JobID:         auctionJobID,
		Title:         "Move machinery",
		Type:          models.JobTypeAuction,
		Status:        models.JobPending,
		PosterID:      posterID,
		StartingBid:   1000,
		BiddingEndsAt: &endsAt,
	}
	store.jobs[job.JobID] = job
	return job
}

func transporter(id string) Actor {
	return Actor{UserID: id, Role: models.RoleTransporter}
}

func poster() Actor {
	return Actor{UserID: posterID, Role: models.RoleCustomer}
}

// --- SubmitBid ---

func TestSubmitBidOnStandardJob(t *testing.T) {
	store := newFakeStore()
	addStandardJob(store)
	svc, notifier := newTestService(store)

	bid, err := svc.SubmitBid(context.Background(), transporter(transporterA), SubmitBidInput{
		JobID:  standardJobID,
		Amount: 450,
	})
	if err != nil {
		t.Fatalf("SubmitBid failed: %v", err)
	}
	if bid.Status != models.BidPending {
		t.Errorf("new bid status = %s, want PENDING", bid.Status)
	}
	if bid.BidID == "" {
		t.Error("expected generated bid ID")
	}

	// Job STANDARD không tự chuyển sang OPEN_FOR_BIDS
	if store.jobs[standardJobID].Status != models.JobPending {
		t.Errorf("standard job status = %s, want PENDING", store.jobs[standardJobID].Status)
	}

	if notifier.countFor(posterID, models.NotifyBidReceived) != 1 {
		t.Error("poster should receive exactly one BID_RECEIVED notification")
	}
}

func TestSubmitBidOpensAuctionJob(t *testing.T) {
	store := newFakeStore()
	addAuctionJob(store, fixedTime().Add(24*time.Hour))
	svc, _ := newTestService(store)

	_, err := svc.SubmitBid(context.Background(), transporter(transporterA), SubmitBidInput{
		JobID:  auctionJobID,
		Amount: 1200,
	})
	if err != nil {
		t.Fatalf("SubmitBid failed: %v", err)
	}

	// Bid đầu tiên mở phiên đấu giá
	if store.jobs[auctionJobID].Status != models.JobOpenForBids {
		t.Errorf("auction job status = %s, want OPEN_FOR_BIDS", store.jobs[auctionJobID].Status)
	}
}

func TestSubmitBidValidation(t *testing.T) {
	cases := []struct {
		name       string
		actor      Actor
		input      SubmitBidInput
		wantStatus int
	}{
		{
			name:       "job not found",
			actor:      transporter(transporterA),
			input:      SubmitBidInput{JobID: "JOB-MISSING", Amount: 100},
			wantStatus: 404,
		},
		{
			name:       "non-transporter role",
			actor:      Actor{UserID: "USR-OTHER", Role: models.RoleCustomer},
			input:      SubmitBidInput{JobID: auctionJobID, Amount: 1200},
			wantStatus: 403,
		},
		{
			name:       "poster bids on own job",
			actor:      Actor{UserID: posterID, Role: models.RoleTransporter},
			input:      SubmitBidInput{JobID: auctionJobID, Amount: 1200},
			wantStatus: 400,
		},
		{
			name:       "below starting bid",
			actor:      transporter(transporterA),
			input:      SubmitBidInput{JobID: auctionJobID, Amount: 999.99},
			wantStatus: 400,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := newFakeStore()
			addAuctionJob(store, fixedTime().Add(24*time.Hour))
			svc, _ := newTestService(store)

			_, err := svc.SubmitBid(context.Background(), c.actor, c.input)
			if err == nil {
				t.Fatal("expected error")
			}
			var appErr *models.ErrorResponse
			if !errors.As(err, &appErr) {
				t.Fatalf("expected ErrorResponse, got %T: %v", err, err)
			}
			if appErr.StatusCode != c.wantStatus {
				t.Errorf("status = %d, want %d (%s)", appErr.StatusCode, c.wantStatus, appErr.Message)
			}
		})
	}
}

func TestSubmitBidAfterDeadline(t *testing.T) {
	store := newFakeStore()
	addAuctionJob(store, fixedTime().Add(-time.Hour))
	svc, _ := newTestService(store)

	_, err := svc.SubmitBid(context.Background(), transporter(transporterA), SubmitBidInput{
		JobID:  auctionJobID,
		Amount: 1500,
	})
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 after deadline, got %v", err)
	}
}

func TestSubmitBidDuplicate(t *testing.T) {
	store := newFakeStore()
	addAuctionJob(store, fixedTime().Add(24*time.Hour))
	svc, _ := newTestService(store)

	in := SubmitBidInput{JobID: auctionJobID, Amount: 1200}
	if _, err := svc.SubmitBid(context.Background(), transporter(transporterA), in); err != nil {
		t.Fatalf("first SubmitBid failed: %v", err)
	}

	_, err := svc.SubmitBid(context.Background(), transporter(transporterA), in)
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 for duplicate bid, got %v", err)
	}
}

func TestSubmitBidOnClosedJob(t *testing.T) {
	store := newFakeStore()
	job := addStandardJob(store)
	job.Status = models.JobAssigned
	svc, _ := newTestService(store)

	_, err := svc.SubmitBid(context.Background(), transporter(transporterA), SubmitBidInput{
		JobID:  standardJobID,
		Amount: 450,
	})
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 for job not accepting bids, got %v", err)
	}
}

// --- UpdateBid ---

func TestUpdateBid(t *testing.T) {
	store := newFakeStore()
	addAuctionJob(store, fixedTime().Add(24*time.Hour))
	svc, _ := newTestService(store)

	bid, err := svc.SubmitBid(context.Background(), transporter(transporterA), SubmitBidInput{
		JobID:  auctionJobID,
		Amount: 1200,
	})
	if err != nil {
		t.Fatalf("SubmitBid failed: %v", err)
	}

	newAmount := 1100.0
	newMessage := "can start tomorrow"
	updated, err := svc.UpdateBid(context.Background(), transporter(transporterA), bid.BidID, UpdateBidInput{
		Amount:  &newAmount,
		Message: &newMessage,
	})
	if err != nil {
		t.Fatalf("UpdateBid failed: %v", err)
	}
	if updated.Amount != 1100 || updated.Message != "can start tomorrow" {
		t.Errorf("update not applied: amount=%v message=%q", updated.Amount, updated.Message)
	}

	// Giá sàn vẫn được kiểm tra khi update
	tooLow := 500.0
	_, err = svc.UpdateBid(context.Background(), transporter(transporterA), bid.BidID, UpdateBidInput{Amount: &tooLow})
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 for amount below floor, got %v", err)
	}

	// Người khác không sửa được
	_, err = svc.UpdateBid(context.Background(), transporter(transporterB), bid.BidID, UpdateBidInput{Amount: &newAmount})
	if !errors.As(err, &appErr) || appErr.StatusCode != 403 {
		t.Fatalf("expected 403 for foreign bid, got %v", err)
	}
}

func TestUpdateBidNotPending(t *testing.T) {
	store := newFakeStore()
	addStandardJob(store)
	svc, _ := newTestService(store)

	bid, err := svc.SubmitBid(context.Background(), transporter(transporterA), SubmitBidInput{
		JobID:  standardJobID,
		Amount: 450,
	})
	if err != nil {
		t.Fatalf("SubmitBid failed: %v", err)
	}
	store.bids[bid.BidID].Status = models.BidRejected

	amount := 400.0
	_, err = svc.UpdateBid(context.Background(), transporter(transporterA), bid.BidID, UpdateBidInput{Amount: &amount})
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 for non-pending bid, got %v", err)
	}
}

// --- AcceptBid ---

// submitThree tạo job đấu giá với 3 bid PENDING từ 3 transporter khác nhau.
func submitThree(t *testing.T, svc *Service, store *fakeStore) (a, b, c *models.Bid) {
	t.Helper()
	addAuctionJob(store, fixedTime().Add(24*time.Hour))

	var err error
	a, err = svc.SubmitBid(context.Background(), transporter(transporterA), SubmitBidInput{JobID: auctionJobID, Amount: 1200})
	if err != nil {
		t.Fatalf("bid A failed: %v", err)
	}
	b, err = svc.SubmitBid(context.Background(), transporter(transporterB), SubmitBidInput{JobID: auctionJobID, Amount: 1100})
	if err != nil {
		t.Fatalf("bid B failed: %v", err)
	}
	c, err = svc.SubmitBid(context.Background(), transporter(transporterC), SubmitBidInput{JobID: auctionJobID, Amount: 1300})
	if err != nil {
		t.Fatalf("bid C failed: %v", err)
	}
	return a, b, c
}

func TestAcceptBid(t *testing.T) {
	store := newFakeStore()
	svc, notifier := newTestService(store)
	bidA, bidB, bidC := submitThree(t, svc, store)

	accepted, err := svc.AcceptBid(context.Background(), poster(), bidB.BidID)
	if err != nil {
		t.Fatalf("AcceptBid failed: %v", err)
	}
	if accepted.Status != models.BidAccepted {
		t.Errorf("accepted bid status = %s, want ACCEPTED", accepted.Status)
	}

	// Ba hiệu ứng nguyên tử: bid thắng ACCEPTED, các bid PENDING khác
	// REJECTED, job sang BID_ACCEPTED.
	if store.bids[bidA.BidID].Status != models.BidRejected {
		t.Errorf("bid A status = %s, want REJECTED", store.bids[bidA.BidID].Status)
	}
	if store.bids[bidC.BidID].Status != models.BidRejected {
		t.Errorf("bid C status = %s, want REJECTED", store.bids[bidC.BidID].Status)
	}
	if store.jobs[auctionJobID].Status != models.JobBidAccepted {
		t.Errorf("job status = %s, want BID_ACCEPTED", store.jobs[auctionJobID].Status)
	}

	// Người thắng nhận BID_ACCEPTED, hai người thua nhận BID_REJECTED
	if notifier.countFor(transporterB, models.NotifyBidAccepted) != 1 {
		t.Error("winner should receive BID_ACCEPTED notification")
	}
	if notifier.countFor(transporterA, models.NotifyBidRejected) != 1 {
		t.Error("loser A should receive BID_REJECTED notification")
	}
	if notifier.countFor(transporterC, models.NotifyBidRejected) != 1 {
		t.Error("loser C should receive BID_REJECTED notification")
	}
}

func TestAcceptBidTwice(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)
	_, bidB, bidC := submitThree(t, svc, store)

	if _, err := svc.AcceptBid(context.Background(), poster(), bidB.BidID); err != nil {
		t.Fatalf("first AcceptBid failed: %v", err)
	}

	// Accept lần hai thất bại: bid C đã REJECTED và job không còn nhận bid
	_, err := svc.AcceptBid(context.Background(), poster(), bidC.BidID)
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 on second accept, got %v", err)
	}
}

func TestAcceptBidOnlyPoster(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)
	bidA, _, _ := submitThree(t, svc, store)

	_, err := svc.AcceptBid(context.Background(), transporter(transporterB), bidA.BidID)
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 403 {
		t.Fatalf("expected 403 for non-poster, got %v", err)
	}
}

func TestAcceptBidTransactionFailure(t *testing.T) {
	store := newFakeStore()
	svc, notifier := newTestService(store)
	bidA, _, _ := submitThree(t, svc, store)

	store.failTransaction = true
	_, err := svc.AcceptBid(context.Background(), poster(), bidA.BidID)
	if err == nil {
		t.Fatal("expected error when transaction fails")
	}

	// Không có notification nào ngoài các BID_RECEIVED lúc submit
	for _, s := range notifier.sent {
		if s.Kind != models.NotifyBidReceived {
			t.Errorf("unexpected notification %v after failed transaction", s.Kind)
		}
	}
}

// --- RejectBid ---

func TestRejectBid(t *testing.T) {
	store := newFakeStore()
	svc, notifier := newTestService(store)
	bidA, bidB, _ := submitThree(t, svc, store)

	rejected, err := svc.RejectBid(context.Background(), poster(), bidA.BidID)
	if err != nil {
		t.Fatalf("RejectBid failed: %v", err)
	}
	if rejected.Status != models.BidRejected {
		t.Errorf("rejected bid status = %s, want REJECTED", rejected.Status)
	}

	// Các bid khác và job không bị ảnh hưởng
	if store.bids[bidB.BidID].Status != models.BidPending {
		t.Errorf("bid B status = %s, want PENDING", store.bids[bidB.BidID].Status)
	}
	if store.jobs[auctionJobID].Status != models.JobOpenForBids {
		t.Errorf("job status = %s, want OPEN_FOR_BIDS", store.jobs[auctionJobID].Status)
	}

	if notifier.countFor(transporterA, models.NotifyBidRejected) != 1 {
		t.Error("rejected transporter should be notified")
	}

	// Reject bid đã REJECTED thì báo lỗi
	_, err = svc.RejectBid(context.Background(), poster(), bidA.BidID)
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 on double reject, got %v", err)
	}
}

func TestRejectBidOnClosedJob(t *testing.T) {
	// Reject dùng chung precondition với accept: job đã rời giai đoạn
	// nhận bid thì không quyết định bid được nữa.
	store := newFakeStore()
	svc, _ := newTestService(store)
	bidA, _, _ := submitThree(t, svc, store)

	store.jobs[auctionJobID].Status = models.JobCancelled

	_, err := svc.RejectBid(context.Background(), poster(), bidA.BidID)
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 for cancelled job, got %v", err)
	}
	if store.bids[bidA.BidID].Status != models.BidPending {
		t.Errorf("bid status = %s, want PENDING untouched", store.bids[bidA.BidID].Status)
	}
}

// --- WithdrawBid ---

func TestWithdrawBid(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)
	bidA, _, _ := submitThree(t, svc, store)

	if err := svc.WithdrawBid(context.Background(), transporter(transporterA), bidA.BidID); err != nil {
		t.Fatalf("WithdrawBid failed: %v", err)
	}
	if store.bids[bidA.BidID].Status != models.BidWithdrawn {
		t.Errorf("bid status = %s, want WITHDRAWN", store.bids[bidA.BidID].Status)
	}

	// WITHDRAWN là trạng thái cuối
	err := svc.WithdrawBid(context.Background(), transporter(transporterA), bidA.BidID)
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 on double withdraw, got %v", err)
	}
}

func TestWithdrawBidRules(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)
	bidA, _, _ := submitThree(t, svc, store)

	// Không rút được bid của người khác
	err := svc.WithdrawBid(context.Background(), transporter(transporterB), bidA.BidID)
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 403 {
		t.Fatalf("expected 403 for foreign bid, got %v", err)
	}

	// Sau hạn chót đấu giá thì không rút được nữa
	past := fixedTime().Add(-time.Hour)
	store.jobs[auctionJobID].BiddingEndsAt = &past
	err = svc.WithdrawBid(context.Background(), transporter(transporterA), bidA.BidID)
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 after deadline, got %v", err)
	}
}

// --- AssignJob ---

func TestAssignJobAfterAccept(t *testing.T) {
	store := newFakeStore()
	svc, notifier := newTestService(store)
	_, bidB, _ := submitThree(t, svc, store)

	if _, err := svc.AcceptBid(context.Background(), poster(), bidB.BidID); err != nil {
		t.Fatalf("AcceptBid failed: %v", err)
	}

	job, err := svc.AssignJob(context.Background(), poster(), auctionJobID, AssignJobInput{
		TransporterID: transporterB,
		VehicleID:     "VEH-TRUCK001",
	})
	if err != nil {
		t.Fatalf("AssignJob failed: %v", err)
	}
	if job.Status != models.JobAssigned {
		t.Errorf("job status = %s, want ASSIGNED", job.Status)
	}
	if job.TransporterID != transporterB || job.VehicleID != "VEH-TRUCK001" {
		t.Errorf("assignment not recorded: transporter=%s vehicle=%s", job.TransporterID, job.VehicleID)
	}

	if notifier.countFor(transporterB, models.NotifyJobAssigned) != 1 {
		t.Error("assigned transporter should be notified")
	}
	if notifier.countFor(posterID, models.NotifyJobAssigned) != 1 {
		t.Error("poster should be notified about assignment")
	}
}

func TestAssignJobDirectFromPending(t *testing.T) {
	// Job STANDARD có thể được gán thẳng từ PENDING không qua đấu giá.
	store := newFakeStore()
	addStandardJob(store)
	svc, _ := newTestService(store)

	job, err := svc.AssignJob(context.Background(), poster(), standardJobID, AssignJobInput{
		TransporterID: transporterA,
	})
	if err != nil {
		t.Fatalf("AssignJob failed: %v", err)
	}
	if job.Status != models.JobAssigned {
		t.Errorf("job status = %s, want ASSIGNED", job.Status)
	}
}

func TestAssignJobInvalidTransition(t *testing.T) {
	store := newFakeStore()
	job := addStandardJob(store)
	job.Status = models.JobDelivered
	svc, _ := newTestService(store)

	_, err := svc.AssignJob(context.Background(), poster(), standardJobID, AssignJobInput{
		TransporterID: transporterA,
	})
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 for transition out of DELIVERED, got %v", err)
	}
}

// --- Listing ---

func TestListBidsForJobPosterOnly(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)
	submitThree(t, svc, store)

	bids, err := svc.ListBidsForJob(context.Background(), poster(), auctionJobID)
	if err != nil {
		t.Fatalf("ListBidsForJob failed: %v", err)
	}
	if len(bids) != 3 {
		t.Errorf("got %d bids, want 3", len(bids))
	}

	_, err = svc.ListBidsForJob(context.Background(), transporter(transporterA), auctionJobID)
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 403 {
		t.Fatalf("expected 403 for non-poster, got %v", err)
	}
}

func TestListMyBids(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)
	submitThree(t, svc, store)

	bids, err := svc.ListMyBids(context.Background(), transporter(transporterA))
	if err != nil {
		t.Fatalf("ListMyBids failed: %v", err)
	}
	if len(bids) != 1 {
		t.Fatalf("got %d bids, want 1", len(bids))
	}
	if bids[0].TransporterID != transporterA {
		t.Errorf("bid belongs to %s, want %s", bids[0].TransporterID, transporterA)
	}
}
