// internal/models/application.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Application links one student to one internship. The (student, internship)
// pair is unique, backed by a composite unique index so concurrent creates
// cannot slip past the duplicate read-check.
type Application struct {
	BaseModel
	StudentID    uuid.UUID         `json:"student_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_student_internship"`
	InternshipID uuid.UUID         `json:"internship_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_student_internship"`
	Status       ApplicationStatus `json:"status" gorm:"type:varchar(30);default:'applied';index"`
	CoverLetter  string            `json:"cover_letter" gorm:"type:text"`

	MentorID       *uuid.UUID      `json:"mentor_id,omitempty" gorm:"type:uuid;index"`
	MentorApproval *MentorApproval `json:"mentor_approval,omitempty" gorm:"type:varchar(20)"`
	MentorFeedback string          `json:"mentor_feedback,omitempty" gorm:"type:text"`

	InterviewScheduled JSONB  `json:"interview_scheduled,omitempty" gorm:"type:jsonb"`
	InterviewFeedback  string `json:"interview_feedback,omitempty" gorm:"type:text"`
	OfferDetails       JSONB  `json:"offer_details,omitempty" gorm:"type:jsonb"`

	AppliedAt   time.Time  `json:"applied_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`

	// Relationships
	Student    User       `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Internship Internship `json:"internship,omitempty" gorm:"foreignKey:InternshipID"`
	Mentor     *User      `json:"mentor,omitempty" gorm:"foreignKey:MentorID"`
}
