// internal/services/notification_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuscell/placement-backend/internal/models"
)

func TestBuildStatusMessage(t *testing.T) {
	title, company := "SDE Intern", "Acme Corp"

	tests := []struct {
		status models.ApplicationStatus
		want   string
	}{
		{models.ApplicationStatusPendingMentorApproval, "Your application for SDE Intern at Acme Corp is awaiting mentor approval."},
		{models.ApplicationStatusApproved, "Your application for SDE Intern at Acme Corp has been approved by your mentor."},
		{models.ApplicationStatusRejected, "Your application for SDE Intern at Acme Corp has been rejected."},
		{models.ApplicationStatusInterviewScheduled, "An interview has been scheduled for your application to SDE Intern at Acme Corp."},
		{models.ApplicationStatusOffered, "Congratulations! You have received an offer for SDE Intern at Acme Corp."},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, BuildStatusMessage(tt.status, title, company))
		})
	}
}

func TestBuildStatusMessageUnknownStatusFallsBack(t *testing.T) {
	got := BuildStatusMessage(models.ApplicationStatusApplied, "SDE Intern", "Acme Corp")
	assert.Contains(t, got, "SDE Intern at Acme Corp")
	assert.Contains(t, got, "applied")
}

func TestFormatStatusDetails(t *testing.T) {
	interview := models.JSONB{
		"date":         "2026-09-15",
		"mode":         "online",
		"meeting_link": "https://meet.example.com/abc",
	}
	offer := models.JSONB{
		"stipend":    "₹30,000/month",
		"duration":   "6 months",
		"start_date": "2026-10-01",
	}

	t.Run("interview payload", func(t *testing.T) {
		got := FormatStatusDetails(models.ApplicationStatusInterviewScheduled, interview, nil)
		assert.Equal(t, "Interview details: Date: 2026-09-15, Mode: online, Meeting link: https://meet.example.com/abc", got)
	})

	t.Run("offer payload", func(t *testing.T) {
		got := FormatStatusDetails(models.ApplicationStatusOffered, nil, offer)
		assert.Equal(t, "Offer details: Stipend: ₹30,000/month, Duration: 6 months, Start date: 2026-10-01", got)
	})

	t.Run("accepted reuses the offer payload", func(t *testing.T) {
		got := FormatStatusDetails(models.ApplicationStatusAccepted, nil, offer)
		assert.Contains(t, got, "Offer details:")
	})

	t.Run("empty payloads render nothing", func(t *testing.T) {
		assert.Empty(t, FormatStatusDetails(models.ApplicationStatusInterviewScheduled, models.JSONB{}, nil))
		assert.Empty(t, FormatStatusDetails(models.ApplicationStatusOffered, nil, nil))
	})

	t.Run("other statuses carry no payload", func(t *testing.T) {
		assert.Empty(t, FormatStatusDetails(models.ApplicationStatusApproved, interview, offer))
	})
}
