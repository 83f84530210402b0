// internal/services/visibility_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/campuscell/placement-backend/internal/models"
)

func TestInternshipVisibleTo(t *testing.T) {
	recruiterID := uuid.New()
	otherID := uuid.New()

	active := &models.Internship{Status: models.InternshipStatusActive}
	submitted := &models.Internship{Status: models.InternshipStatusSubmitted, SubmittedBy: &recruiterID}
	rejected := &models.Internship{Status: models.InternshipStatusRejected, SubmittedBy: &recruiterID}

	admin := &Actor{ID: uuid.New(), Role: models.RoleAdmin}
	owner := &Actor{ID: recruiterID, Role: models.RoleRecruiter}
	stranger := &Actor{ID: otherID, Role: models.RoleRecruiter}
	student := &Actor{ID: uuid.New(), Role: models.RoleStudent}

	tests := []struct {
		name       string
		actor      *Actor
		internship *models.Internship
		want       bool
	}{
		{"anonymous sees active", nil, active, true},
		{"anonymous cannot see submitted", nil, submitted, false},
		{"student sees active", student, active, true},
		{"student cannot see submitted", student, submitted, false},
		{"student cannot see rejected", student, rejected, false},
		{"admin sees submitted", admin, submitted, true},
		{"admin sees rejected", admin, rejected, true},
		{"submitter sees own submission", owner, submitted, true},
		{"submitter sees own rejection", owner, rejected, true},
		{"other recruiter cannot see submission", stranger, submitted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InternshipVisibleTo(tt.actor, tt.internship))
		})
	}
}

func TestScopeApplicationsRejectsUnknownRole(t *testing.T) {
	s := NewVisibilityService(nil)
	_, err := s.ScopeApplications(Actor{ID: uuid.New(), Role: models.Role("intruder")})
	assert.Error(t, err)
}
