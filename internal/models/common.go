// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type Role string

const (
	RoleStudent   Role = "student"
	RoleMentor    Role = "mentor"
	RoleAdmin     Role = "admin"
	RoleRecruiter Role = "recruiter"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleMentor, RoleAdmin, RoleRecruiter:
		return true
	}
	return false
}

type PlacementStatus string

const (
	PlacementStatusActive   PlacementStatus = "active"
	PlacementStatusPlaced   PlacementStatus = "placed"
	PlacementStatusInactive PlacementStatus = "inactive"
)

type InternshipStatus string

const (
	InternshipStatusActive    InternshipStatus = "active"
	InternshipStatusInactive  InternshipStatus = "inactive"
	InternshipStatusSubmitted InternshipStatus = "submitted"
	InternshipStatusRejected  InternshipStatus = "rejected"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied               ApplicationStatus = "applied"
	ApplicationStatusPendingMentorApproval ApplicationStatus = "pending_mentor_approval"
	ApplicationStatusApproved              ApplicationStatus = "approved"
	ApplicationStatusRejected              ApplicationStatus = "rejected"
	ApplicationStatusInterviewScheduled    ApplicationStatus = "interview_scheduled"
	ApplicationStatusInterviewCompleted    ApplicationStatus = "interview_completed"
	ApplicationStatusOffered               ApplicationStatus = "offered"
	ApplicationStatusAccepted              ApplicationStatus = "accepted"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusPendingMentorApproval,
		ApplicationStatusApproved, ApplicationStatusRejected,
		ApplicationStatusInterviewScheduled, ApplicationStatusInterviewCompleted,
		ApplicationStatusOffered, ApplicationStatusAccepted:
		return true
	}
	return false
}

type MentorApproval string

const (
	MentorApprovalApproved MentorApproval = "approved"
	MentorApprovalRejected MentorApproval = "rejected"
)
