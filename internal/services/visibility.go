// internal/services/visibility.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuscell/placement-backend/internal/models"
)

// VisibilityService derives the subset of internships, applications, and
// students a given actor may see. Every list path must pass through one of
// its scopes before returning records; it is the access-control boundary
// keeping candidate data away from recruiters with no application
// relationship to them.
type VisibilityService struct {
	db *gorm.DB
}

func NewVisibilityService(db *gorm.DB) *VisibilityService {
	return &VisibilityService{db: db}
}

// ScopeInternships hides pending submissions from everyone but admins, and
// rejected submissions from everyone but admins and their submitter.
// A nil actor is an anonymous caller.
func (s *VisibilityService) ScopeInternships(actor *Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if actor != nil && actor.Role == models.RoleAdmin {
			return db
		}
		if actor != nil && actor.Role == models.RoleRecruiter {
			return db.Where(
				"(status NOT IN ? OR submitted_by = ?)",
				[]models.InternshipStatus{models.InternshipStatusSubmitted, models.InternshipStatusRejected},
				actor.ID,
			)
		}
		return db.Where(
			"status NOT IN ?",
			[]models.InternshipStatus{models.InternshipStatusSubmitted, models.InternshipStatusRejected},
		)
	}
}

// InternshipVisibleTo is the single-record counterpart of ScopeInternships.
func InternshipVisibleTo(actor *Actor, internship *models.Internship) bool {
	if actor != nil && actor.Role == models.RoleAdmin {
		return true
	}
	switch internship.Status {
	case models.InternshipStatusSubmitted, models.InternshipStatusRejected:
		return actor != nil && internship.SubmittedBy != nil && *internship.SubmittedBy == actor.ID
	}
	return true
}

// ScopeApplications narrows application queries by role: students to their
// own, mentors to their assignments. Admins and recruiters see all matching
// applications (recruiter student enrichment is narrowed separately).
func (s *VisibilityService) ScopeApplications(actor Actor) (func(*gorm.DB) *gorm.DB, error) {
	switch actor.Role {
	case models.RoleStudent:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("student_id = ?", actor.ID)
		}, nil
	case models.RoleMentor:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("mentor_id = ?", actor.ID)
		}, nil
	case models.RoleAdmin, models.RoleRecruiter:
		return func(db *gorm.DB) *gorm.DB { return db }, nil
	}
	return nil, fmt.Errorf("unknown role %q", actor.Role)
}

// AllowedStudentIDs returns the students who applied to any internship the
// recruiter posted or submitted. A recruiter's student queries are restricted
// to exactly this set.
func (s *VisibilityService) AllowedStudentIDs(recruiterID uuid.UUID) ([]uuid.UUID, error) {
	var studentIDs []uuid.UUID
	err := s.db.Model(&models.Application{}).
		Distinct("student_id").
		Where("internship_id IN (?)",
			s.db.Model(&models.Internship{}).
				Select("id").
				Where("posted_by = ? OR submitted_by = ?", recruiterID, recruiterID),
		).
		Pluck("student_id", &studentIDs).Error
	if err != nil {
		return nil, err
	}
	return studentIDs, nil
}

// ScopeStudents restricts recruiter student queries to applicants of their
// own postings. Mentors and admins are unrestricted.
func (s *VisibilityService) ScopeStudents(actor Actor) (func(*gorm.DB) *gorm.DB, error) {
	if actor.Role != models.RoleRecruiter {
		return func(db *gorm.DB) *gorm.DB { return db }, nil
	}

	allowed, err := s.AllowedStudentIDs(actor.ID)
	if err != nil {
		return nil, err
	}
	return func(db *gorm.DB) *gorm.DB {
		if len(allowed) == 0 {
			// No applicants yet; match nothing rather than everything.
			return db.Where("1 = 0")
		}
		return db.Where("id IN ?", allowed)
	}, nil
}
