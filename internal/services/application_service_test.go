// internal/services/application_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscell/placement-backend/internal/apperrors"
	"github.com/campuscell/placement-backend/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    models.ApplicationStatus
		to      models.ApplicationStatus
		allowed bool
	}{
		{models.ApplicationStatusApplied, models.ApplicationStatusPendingMentorApproval, true},
		{models.ApplicationStatusApplied, models.ApplicationStatusApproved, true},
		{models.ApplicationStatusApplied, models.ApplicationStatusRejected, true},
		{models.ApplicationStatusApplied, models.ApplicationStatusOffered, false},
		{models.ApplicationStatusPendingMentorApproval, models.ApplicationStatusApproved, true},
		{models.ApplicationStatusPendingMentorApproval, models.ApplicationStatusRejected, true},
		{models.ApplicationStatusPendingMentorApproval, models.ApplicationStatusInterviewScheduled, false},
		{models.ApplicationStatusApproved, models.ApplicationStatusInterviewScheduled, true},
		{models.ApplicationStatusApproved, models.ApplicationStatusOffered, false},
		{models.ApplicationStatusInterviewScheduled, models.ApplicationStatusInterviewCompleted, true},
		{models.ApplicationStatusInterviewCompleted, models.ApplicationStatusOffered, true},
		{models.ApplicationStatusOffered, models.ApplicationStatusAccepted, true},
		{models.ApplicationStatusOffered, models.ApplicationStatusRejected, true},
		{models.ApplicationStatusRejected, models.ApplicationStatusApplied, false},
		{models.ApplicationStatusRejected, models.ApplicationStatusApproved, false},
		{models.ApplicationStatusAccepted, models.ApplicationStatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransitionTableCoversEveryStatus(t *testing.T) {
	statuses := []models.ApplicationStatus{
		models.ApplicationStatusApplied,
		models.ApplicationStatusPendingMentorApproval,
		models.ApplicationStatusApproved,
		models.ApplicationStatusRejected,
		models.ApplicationStatusInterviewScheduled,
		models.ApplicationStatusInterviewCompleted,
		models.ApplicationStatusOffered,
		models.ApplicationStatusAccepted,
	}
	for _, status := range statuses {
		_, ok := applicationTransitions[status]
		assert.True(t, ok, "missing transition entry for %q", status)
	}
}

func TestTerminalStatusesHaveNoSuccessors(t *testing.T) {
	assert.Empty(t, applicationTransitions[models.ApplicationStatusRejected])
	assert.Empty(t, applicationTransitions[models.ApplicationStatusAccepted])
}

func TestChooseMentor(t *testing.T) {
	csMentor := models.User{Department: "Computer Science"}
	csMentor.ID = uuid.New()
	eceMentor := models.User{Department: "Electronics"}
	eceMentor.ID = uuid.New()

	t.Run("prefers same department", func(t *testing.T) {
		got := chooseMentor([]models.User{eceMentor, csMentor}, "Computer Science")
		require.NotNil(t, got)
		assert.Equal(t, csMentor.ID, *got)
	})

	t.Run("falls back to first mentor", func(t *testing.T) {
		got := chooseMentor([]models.User{eceMentor, csMentor}, "Civil Engineering")
		require.NotNil(t, got)
		assert.Equal(t, eceMentor.ID, *got)
	})

	t.Run("nil when no mentors exist", func(t *testing.T) {
		assert.Nil(t, chooseMentor(nil, "Computer Science"))
	})
}

func TestNormalizeInterviewDetails(t *testing.T) {
	t.Run("normalizes date to RFC3339 UTC", func(t *testing.T) {
		got, err := normalizeInterviewDetails(models.JSONB{
			"date": "2026-03-15T10:30",
			"mode": "online",
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-15T10:30:00Z", got["date"])
		assert.Equal(t, "online", got["mode"])
	})

	t.Run("accepts bare dates", func(t *testing.T) {
		got, err := normalizeInterviewDetails(models.JSONB{"date": "2026-03-15"})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-15T00:00:00Z", got["date"])
	})

	t.Run("passes through without a date", func(t *testing.T) {
		got, err := normalizeInterviewDetails(models.JSONB{"location": "Room 4"})
		require.NoError(t, err)
		assert.Equal(t, "Room 4", got["location"])
	})

	t.Run("rejects unparseable dates", func(t *testing.T) {
		_, err := normalizeInterviewDetails(models.JSONB{"date": "next tuesday"})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("rejects non-string dates", func(t *testing.T) {
		_, err := normalizeInterviewDetails(models.JSONB{"date": 1742034600})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		input := models.JSONB{"date": "2026-03-15"}
		_, err := normalizeInterviewDetails(input)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-15", input["date"])
	})
}

func TestParseInterviewDate(t *testing.T) {
	got, err := parseInterviewDate("2026-03-15T10:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15T05:00:00Z", got.UTC().Format(time.RFC3339))

	_, err = parseInterviewDate("")
	assert.Error(t, err)
}
