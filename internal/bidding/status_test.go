// server/internal/bidding/status_test.go
package bidding

import (
	"errors"
	"testing"

	"cargolink-api-server/internal/models"
)

func TestCanTransitionJob(t *testing.T) {
	cases := []struct {
		from models.JobStatus
		to   models.JobStatus
		want bool
	}{
		{models.JobPending, models.JobOpenForBids, true},
		{models.JobPending, models.JobAssigned, true},
		{models.JobPending, models.JobCancelled, true},
		{models.JobPending, models.JobDelivered, false},
		{models.JobOpenForBids, models.JobBidAccepted, true},
		{models.JobOpenForBids, models.JobCancelled, true},
		{models.JobOpenForBids, models.JobAssigned, false},
		{models.JobBidAccepted, models.JobAssigned, true},
		{models.JobBidAccepted, models.JobOpenForBids, false},
		{models.JobAssigned, models.JobInTransit, true},
		{models.JobAssigned, models.JobDelivered, false},
		{models.JobInTransit, models.JobDelivered, true},
		{models.JobInTransit, models.JobCancelled, true},
		// Trạng thái cuối
		{models.JobDelivered, models.JobCancelled, false},
		{models.JobDelivered, models.JobPending, false},
		{models.JobCancelled, models.JobPending, false},
		{models.JobCancelled, models.JobOpenForBids, false},
	}

	for _, c := range cases {
		if got := CanTransitionJob(c.from, c.to); got != c.want {
			t.Errorf("CanTransitionJob(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCanTransitionBid(t *testing.T) {
	cases := []struct {
		from models.BidStatus
		to   models.BidStatus
		want bool
	}{
		{models.BidPending, models.BidAccepted, true},
		{models.BidPending, models.BidRejected, true},
		{models.BidPending, models.BidWithdrawn, true},
		// ACCEPTED/REJECTED/WITHDRAWN đều là trạng thái cuối
		{models.BidAccepted, models.BidRejected, false},
		{models.BidAccepted, models.BidPending, false},
		{models.BidRejected, models.BidPending, false},
		{models.BidRejected, models.BidAccepted, false},
		{models.BidWithdrawn, models.BidPending, false},
	}

	for _, c := range cases {
		if got := CanTransitionBid(c.from, c.to); got != c.want {
			t.Errorf("CanTransitionBid(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestValidateJobTransition(t *testing.T) {
	if err := ValidateJobTransition(models.JobAssigned, models.JobInTransit); err != nil {
		t.Fatalf("expected valid transition, got error: %v", err)
	}

	err := ValidateJobTransition(models.JobDelivered, models.JobInTransit)
	if err == nil {
		t.Fatal("expected error for transition out of DELIVERED")
	}
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 ErrorResponse, got %v", err)
	}
}

func TestJobAcceptsBids(t *testing.T) {
	accepting := []models.JobStatus{models.JobPending, models.JobOpenForBids}
	for _, s := range accepting {
		if !JobAcceptsBids(s) {
			t.Errorf("JobAcceptsBids(%s) = false, want true", s)
		}
	}

	closed := []models.JobStatus{
		models.JobBidAccepted, models.JobAssigned, models.JobInTransit,
		models.JobDelivered, models.JobCancelled,
	}
	for _, s := range closed {
		if JobAcceptsBids(s) {
			t.Errorf("JobAcceptsBids(%s) = true, want false", s)
		}
	}
}

func TestCanDeleteJob(t *testing.T) {
	if CanDeleteJob(models.JobAssigned) {
		t.Error("should not delete an ASSIGNED job")
	}
	if CanDeleteJob(models.JobInTransit) {
		t.Error("should not delete an IN_TRANSIT job")
	}
	if !CanDeleteJob(models.JobPending) {
		t.Error("should be able to delete a PENDING job")
	}
	if !CanDeleteJob(models.JobOpenForBids) {
		t.Error("should be able to delete an OPEN_FOR_BIDS job")
	}
}
