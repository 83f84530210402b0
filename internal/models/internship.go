// internal/models/internship.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Internship is either an admin-authored direct posting (PostedBy set at
// creation) or a recruiter submission pending approval (SubmittedBy set,
// status=submitted). Approval copies SubmittedBy into PostedBy.
type Internship struct {
	BaseModel
	Title               string           `json:"title" gorm:"size:255;not null"`
	Company             string           `json:"company" gorm:"size:255;not null;index"`
	CompanyLogo         string           `json:"company_logo,omitempty" gorm:"size:500"`
	CompanyDescription  string           `json:"company_description,omitempty" gorm:"type:text"`
	Description         string           `json:"description" gorm:"type:text;not null"`
	RequiredSkills      pq.StringArray   `json:"required_skills" gorm:"type:text[]"`
	PreferredSkills     pq.StringArray   `json:"preferred_skills,omitempty" gorm:"type:text[]"`
	EligibleDepartments pq.StringArray   `json:"eligible_departments" gorm:"type:text[]"`
	MinimumSemester     int              `json:"minimum_semester" gorm:"default:4"`
	MinimumCGPA         float64          `json:"minimum_cgpa" gorm:"type:decimal(4,2);default:6.0"`
	Stipend             string           `json:"stipend,omitempty" gorm:"size:100"`
	Duration            string           `json:"duration,omitempty" gorm:"size:100"`
	Location            string           `json:"location,omitempty" gorm:"size:255"`
	WorkMode            string           `json:"work_mode" gorm:"size:20;default:'On-site'"`
	Requirements        pq.StringArray   `json:"requirements,omitempty" gorm:"type:text[]"`
	Benefits            pq.StringArray   `json:"benefits,omitempty" gorm:"type:text[]"`
	ApplicationDeadline *time.Time       `json:"application_deadline,omitempty"`
	StartDate           *time.Time       `json:"start_date,omitempty"`
	MaxApplications     int              `json:"max_applications" gorm:"default:50"`
	CurrentApplications int              `json:"current_applications" gorm:"default:0"`
	Status              InternshipStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`
	PostedBy            *uuid.UUID       `json:"posted_by,omitempty" gorm:"type:uuid;index"`
	SubmittedBy         *uuid.UUID       `json:"submitted_by,omitempty" gorm:"type:uuid;index"`
	ApprovedBy          *uuid.UUID       `json:"approved_by,omitempty" gorm:"type:uuid"`
	ApprovedAt          *time.Time       `json:"approved_at,omitempty"`
	RejectionReason     string           `json:"rejection_reason,omitempty" gorm:"type:text"`
	AdminNotes          string           `json:"admin_notes,omitempty" gorm:"type:text"`

	// Relationships
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:InternshipID"`
}
