// server/internal/api/handlers/message_handler_test.go
package handlers

import (
	"errors"
	"testing"

	"cargolink-api-server/internal/models"
)

func messagingJob() *models.Job {
	return &models.Job{
		JobID:         "JOB-MSG00001",
		PosterID:      "USR-POSTER01",
		TransporterID: "USR-TRANSA01",
		Status:        models.JobAssigned,
	}
}

func TestMessageCounterparty(t *testing.T) {
	job := messagingJob()

	// Poster gửi -> transporter nhận
	receiver, err := messageCounterparty(job, "USR-POSTER01")
	if err != nil {
		t.Fatalf("poster should be able to message: %v", err)
	}
	if receiver != "USR-TRANSA01" {
		t.Errorf("receiver = %s, want USR-TRANSA01", receiver)
	}

	// Transporter gửi -> poster nhận
	receiver, err = messageCounterparty(job, "USR-TRANSA01")
	if err != nil {
		t.Fatalf("transporter should be able to message: %v", err)
	}
	if receiver != "USR-POSTER01" {
		t.Errorf("receiver = %s, want USR-POSTER01", receiver)
	}

	// Người ngoài không gửi được
	_, err = messageCounterparty(job, "USR-STRANGER")
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 403 {
		t.Fatalf("expected 403 for non-participant, got %v", err)
	}
}

func TestMessageCounterpartyNoTransporter(t *testing.T) {
	job := messagingJob()
	job.TransporterID = ""

	_, err := messageCounterparty(job, "USR-POSTER01")
	var appErr *models.ErrorResponse
	if !errors.As(err, &appErr) || appErr.StatusCode != 400 {
		t.Fatalf("expected 400 when job has no transporter, got %v", err)
	}
}

func TestIsJobParticipant(t *testing.T) {
	job := messagingJob()

	if !isJobParticipant(job, "USR-POSTER01") {
		t.Error("poster is a participant")
	}
	if !isJobParticipant(job, "USR-TRANSA01") {
		t.Error("assigned transporter is a participant")
	}
	if isJobParticipant(job, "USR-STRANGER") {
		t.Error("stranger is not a participant")
	}

	// Job chưa gán: chuỗi rỗng không được coi là participant
	job.TransporterID = ""
	if isJobParticipant(job, "") {
		t.Error("empty user id must not match an unassigned job")
	}
}
