// internal/services/internship_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/campuscell/placement-backend/internal/apperrors"
	"github.com/campuscell/placement-backend/internal/models"
	"github.com/campuscell/placement-backend/internal/utils"
)

func TestParseStipendAmount(t *testing.T) {
	tests := []struct {
		stipend string
		want    int
		ok      bool
	}{
		{"₹25,000/month", 25000, true},
		{"25000 INR", 25000, true},
		{"INR 15,000 - 20,000", 15000, true},
		{"Unpaid", 0, false},
		{"", 0, false},
		{"Performance based", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.stipend, func(t *testing.T) {
			got, ok := parseStipendAmount(tt.stipend)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterBySkills(t *testing.T) {
	internships := []models.Internship{
		{Title: "Frontend", RequiredSkills: pq.StringArray{"React"}},
		{Title: "Backend", RequiredSkills: pq.StringArray{"Node.js"}, PreferredSkills: pq.StringArray{"Docker"}},
		{Title: "Data", RequiredSkills: pq.StringArray{"Python"}},
	}

	got := filterBySkills(internships, []string{"Docker"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Backend", got[0].Title)

	got = filterBySkills(internships, []string{"React", "Python"})
	assert.Len(t, got, 2)

	// Matching is a case-insensitive substring check.
	got = filterBySkills(internships, []string{"react"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Frontend", got[0].Title)

	got = filterBySkills(internships, []string{"Node"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Backend", got[0].Title)

	// No filter keeps everything.
	internships = []models.Internship{
		{Title: "Frontend", RequiredSkills: pq.StringArray{"React"}},
	}
	assert.Len(t, filterBySkills(internships, nil), 1)
}

func TestEffectiveStatusFilter(t *testing.T) {
	admin := &Actor{Role: models.RoleAdmin}
	student := &Actor{Role: models.RoleStudent}

	// Non-admin callers default to active listings.
	assert.Equal(t, models.InternshipStatusActive, effectiveStatusFilter(nil, ""))
	assert.Equal(t, models.InternshipStatusActive, effectiveStatusFilter(student, ""))

	// Admins see everything unless they ask for a status.
	assert.Equal(t, models.InternshipStatus(""), effectiveStatusFilter(admin, ""))
	assert.Equal(t, models.InternshipStatusSubmitted, effectiveStatusFilter(admin, models.InternshipStatusSubmitted))

	// An explicit filter is honored for everyone.
	assert.Equal(t, models.InternshipStatusInactive, effectiveStatusFilter(student, models.InternshipStatusInactive))
}

func TestFilterByStipend(t *testing.T) {
	internships := []models.Internship{
		{Title: "Low", Stipend: "₹10,000/month"},
		{Title: "Mid", Stipend: "₹25,000/month"},
		{Title: "High", Stipend: "₹50,000/month"},
		{Title: "Unpaid", Stipend: "Certificate only"},
	}

	got := filterByStipend(internships, 20000, 0)
	assert.Len(t, got, 2)

	internships = []models.Internship{
		{Title: "Low", Stipend: "₹10,000/month"},
		{Title: "Mid", Stipend: "₹25,000/month"},
		{Title: "High", Stipend: "₹50,000/month"},
	}
	got = filterByStipend(internships, 20000, 30000)
	assert.Len(t, got, 1)
	assert.Equal(t, "Mid", got[0].Title)

	// Free-text stipends are excluded once a range is requested.
	internships = []models.Internship{{Title: "Unpaid", Stipend: "Certificate only"}}
	assert.Empty(t, filterByStipend(internships, 1, 0))
}

func TestPaginateSlice(t *testing.T) {
	internships := []models.Internship{
		{Title: "A"}, {Title: "B"}, {Title: "C"}, {Title: "D"}, {Title: "E"},
	}

	got := paginateSlice(internships, utils.PaginationParams{Page: 2, Limit: 2})
	assert.Len(t, got, 2)
	assert.Equal(t, "C", got[0].Title)

	got = paginateSlice(internships, utils.PaginationParams{Page: 3, Limit: 2})
	assert.Len(t, got, 1)
	assert.Equal(t, "E", got[0].Title)

	assert.Empty(t, paginateSlice(internships, utils.PaginationParams{Page: 4, Limit: 2}))
}

func TestRecruiterCanEdit(t *testing.T) {
	recruiterID := uuid.New()
	otherID := uuid.New()
	recruiter := Actor{ID: recruiterID, Role: models.RoleRecruiter}

	t.Run("owner edits a published posting", func(t *testing.T) {
		internship := &models.Internship{Status: models.InternshipStatusActive, PostedBy: &recruiterID}
		assert.NoError(t, recruiterCanEdit(recruiter, internship))
	})

	t.Run("owner edits a deactivated posting", func(t *testing.T) {
		internship := &models.Internship{Status: models.InternshipStatusInactive, PostedBy: &recruiterID}
		assert.NoError(t, recruiterCanEdit(recruiter, internship))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		internship := &models.Internship{Status: models.InternshipStatusActive, PostedBy: &otherID}
		err := recruiterCanEdit(recruiter, internship)
		assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
	})

	t.Run("submission under review is locked", func(t *testing.T) {
		internship := &models.Internship{Status: models.InternshipStatusSubmitted, SubmittedBy: &recruiterID}
		err := recruiterCanEdit(recruiter, internship)
		assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
	})
}

func TestRecruiterCanDelete(t *testing.T) {
	recruiterID := uuid.New()
	otherID := uuid.New()
	recruiter := Actor{ID: recruiterID, Role: models.RoleRecruiter}

	t.Run("owner withdraws a submission", func(t *testing.T) {
		internship := &models.Internship{Status: models.InternshipStatusSubmitted, SubmittedBy: &recruiterID}
		assert.NoError(t, recruiterCanDelete(recruiter, internship))
	})

	t.Run("owner removes a deactivated posting", func(t *testing.T) {
		internship := &models.Internship{Status: models.InternshipStatusInactive, PostedBy: &recruiterID}
		assert.NoError(t, recruiterCanDelete(recruiter, internship))
	})

	t.Run("owner removes a rejected submission", func(t *testing.T) {
		internship := &models.Internship{Status: models.InternshipStatusRejected, SubmittedBy: &recruiterID}
		assert.NoError(t, recruiterCanDelete(recruiter, internship))
	})

	t.Run("live posting must be deactivated first", func(t *testing.T) {
		internship := &models.Internship{Status: models.InternshipStatusActive, PostedBy: &recruiterID}
		err := recruiterCanDelete(recruiter, internship)
		assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		internship := &models.Internship{Status: models.InternshipStatusInactive, PostedBy: &otherID}
		err := recruiterCanDelete(recruiter, internship)
		assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
	})
}

func TestActiveTransitionAllowed(t *testing.T) {
	tests := []struct {
		current models.InternshipStatus
		active  bool
		want    bool
	}{
		{models.InternshipStatusActive, false, true},
		{models.InternshipStatusInactive, true, true},
		{models.InternshipStatusRejected, true, true},
		{models.InternshipStatusSubmitted, true, false},
		{models.InternshipStatusInactive, false, false},
		{models.InternshipStatusActive, true, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, activeTransitionAllowed(tt.current, tt.active),
			"from %q active=%v", tt.current, tt.active)
	}
}

func TestBetterRecommendation(t *testing.T) {
	high := InternshipView{Eligibility: &Evaluation{RecommendationScore: 90}}
	low := InternshipView{Eligibility: &Evaluation{RecommendationScore: 60}}

	assert.True(t, betterRecommendation(high, low))
	assert.False(t, betterRecommendation(low, high))
}
