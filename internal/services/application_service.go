// internal/services/application_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campuscell/placement-backend/internal/apperrors"
	"github.com/campuscell/placement-backend/internal/models"
	"github.com/campuscell/placement-backend/internal/utils"
)

type ApplicationService struct {
	db                  *gorm.DB
	visibilityService   *VisibilityService
	notificationService *NotificationService
	auditService        *AuditService
}

func NewApplicationService(db *gorm.DB, visibilityService *VisibilityService, notificationService *NotificationService, auditService *AuditService) *ApplicationService {
	return &ApplicationService{
		db:                  db,
		visibilityService:   visibilityService,
		notificationService: notificationService,
		auditService:        auditService,
	}
}

type CreateApplicationRequest struct {
	InternshipID uuid.UUID  `json:"internship_id" validate:"required"`
	CoverLetter  string     `json:"cover_letter" validate:"required"`
	MentorID     *uuid.UUID `json:"mentor_id,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status           models.ApplicationStatus `json:"status" validate:"required"`
	Feedback         string                   `json:"feedback,omitempty"`
	InterviewDetails models.JSONB             `json:"interview_details,omitempty"`
	OfferDetails     models.JSONB             `json:"offer_details,omitempty"`
}

// applicationTransitions is the legal successor set for each status. The
// lifecycle is forward-only; rejection is reachable from any live state.
var applicationTransitions = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.ApplicationStatusApplied:               {models.ApplicationStatusPendingMentorApproval, models.ApplicationStatusApproved, models.ApplicationStatusRejected},
	models.ApplicationStatusPendingMentorApproval: {models.ApplicationStatusApproved, models.ApplicationStatusRejected},
	models.ApplicationStatusApproved:              {models.ApplicationStatusInterviewScheduled, models.ApplicationStatusRejected},
	models.ApplicationStatusInterviewScheduled:    {models.ApplicationStatusInterviewCompleted, models.ApplicationStatusRejected},
	models.ApplicationStatusInterviewCompleted:    {models.ApplicationStatusOffered, models.ApplicationStatusRejected},
	models.ApplicationStatusOffered:               {models.ApplicationStatusAccepted, models.ApplicationStatusRejected},
	models.ApplicationStatusRejected:              {},
	models.ApplicationStatusAccepted:              {},
}

// CanTransition reports whether to is a legal successor of from.
func CanTransition(from, to models.ApplicationStatus) bool {
	for _, next := range applicationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *ApplicationService) Create(actor Actor, req *CreateApplicationRequest) (*models.Application, error) {
	if actor.Role != models.RoleStudent {
		return nil, apperrors.Forbidden("only students can apply for internships")
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("internship ID and cover letter are required")
	}

	var student models.User
	if err := s.db.Where("role = ?", models.RoleStudent).First(&student, actor.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("student not found")
		}
		return nil, apperrors.Internal(err)
	}

	var internship models.Internship
	if err := s.db.First(&internship, req.InternshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("internship not found")
		}
		return nil, apperrors.Internal(err)
	}

	// Duplicate check; the unique index on (student_id, internship_id) backs
	// this up against concurrent creates.
	var existing models.Application
	err := s.db.Where("student_id = ? AND internship_id = ?", actor.ID, req.InternshipID).
		First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("you have already applied for this internship")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err)
	}

	evaluation := Evaluate(&student, &internship)
	if !evaluation.IsEligible {
		return nil, apperrors.Ineligible("you are not eligible for this internship")
	}

	if internship.MaxApplications > 0 && internship.CurrentApplications >= internship.MaxApplications {
		return nil, apperrors.Conflict("this internship has reached its application limit")
	}

	mentorID, err := s.assignMentor(&student, req.MentorID)
	if err != nil {
		return nil, err
	}

	status := models.ApplicationStatusApplied
	if mentorID != nil {
		status = models.ApplicationStatusPendingMentorApproval
	}

	now := time.Now()
	application := &models.Application{
		StudentID:    actor.ID,
		InternshipID: req.InternshipID,
		Status:       status,
		CoverLetter:  req.CoverLetter,
		MentorID:     mentorID,
		AppliedAt:    now,
	}

	// The insert and the counter increment commit or roll back together.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			return err
		}
		return tx.Model(&models.Internship{}).
			Where("id = ?", req.InternshipID).
			UpdateColumn("current_applications", gorm.Expr("current_applications + 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("you have already applied for this internship")
		}
		return nil, apperrors.Internal(err)
	}

	s.db.Preload("Internship").Preload("Mentor").First(application, application.ID)

	return application, nil
}

// assignMentor resolves the mentor for a new application: the requested
// mentor if given, else a mentor from the student's department, else the
// first mentor in the system, else none.
func (s *ApplicationService) assignMentor(student *models.User, requestedMentorID *uuid.UUID) (*uuid.UUID, error) {
	if requestedMentorID != nil {
		var mentor models.User
		err := s.db.Where("role = ?", models.RoleMentor).First(&mentor, *requestedMentorID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("mentor not found")
			}
			return nil, apperrors.Internal(err)
		}
		return requestedMentorID, nil
	}

	var mentors []models.User
	if err := s.db.Where("role = ?", models.RoleMentor).
		Order("created_at ASC").Find(&mentors).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return chooseMentor(mentors, student.Department), nil
}

func chooseMentor(mentors []models.User, department string) *uuid.UUID {
	for i := range mentors {
		if mentors[i].Department == department {
			return &mentors[i].ID
		}
	}
	if len(mentors) > 0 {
		return &mentors[0].ID
	}
	return nil
}

func (s *ApplicationService) UpdateStatus(actor Actor, applicationID uuid.UUID, req *UpdateApplicationStatusRequest) (*models.Application, error) {
	if actor.Role != models.RoleMentor && actor.Role != models.RoleAdmin {
		return nil, apperrors.Forbidden("only mentors and admins can update application status")
	}

	if !req.Status.Valid() {
		return nil, apperrors.Validation(fmt.Sprintf("unknown application status %q", req.Status))
	}

	var application models.Application
	if err := s.db.Preload("Student").Preload("Internship").
		First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, apperrors.Internal(err)
	}

	if actor.Role == models.RoleMentor {
		if application.MentorID == nil || *application.MentorID != actor.ID {
			return nil, apperrors.Forbidden("you are not assigned to this application")
		}
	}

	if !CanTransition(application.Status, req.Status) {
		return nil, apperrors.InvalidState(fmt.Sprintf(
			"cannot move application from %q to %q", application.Status, req.Status))
	}

	if actor.Role == models.RoleMentor {
		approval := models.MentorApprovalRejected
		if req.Status == models.ApplicationStatusApproved {
			approval = models.MentorApprovalApproved
		}
		application.MentorApproval = &approval
		application.MentorFeedback = req.Feedback
	}

	if req.InterviewDetails != nil {
		details, err := normalizeInterviewDetails(req.InterviewDetails)
		if err != nil {
			return nil, err
		}
		application.InterviewScheduled = details
	}

	if req.OfferDetails != nil {
		application.OfferDetails = req.OfferDetails
	}

	if req.Feedback != "" && req.Status == models.ApplicationStatusInterviewCompleted {
		application.InterviewFeedback = req.Feedback
	}

	if application.ProcessedAt == nil &&
		req.Status != models.ApplicationStatusApplied &&
		req.Status != models.ApplicationStatusPendingMentorApproval {
		now := time.Now()
		application.ProcessedAt = &now
	}

	application.Status = req.Status

	// Associations are preloaded for the notification; keep the save to the
	// application row itself.
	if err := s.db.Omit(clause.Associations).Save(&application).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	if actor.Role == models.RoleAdmin {
		s.auditService.Record(actor.ID, "application.update_status", models.JSONB{
			"application_id": applicationID.String(),
			"status":         string(req.Status),
		})
	}

	// Best-effort; delivery failure never fails the transition.
	go s.notifyStatusChange(&application, req.Feedback)

	return &application, nil
}

func (s *ApplicationService) notifyStatusChange(application *models.Application, feedback string) {
	if s.notificationService == nil {
		return
	}
	if err := s.notificationService.SendApplicationStatusNotification(application, feedback); err != nil {
		logrus.WithError(err).WithField("application_id", application.ID).
			Warn("Failed to send application status notification")
	}
}

// normalizeInterviewDetails stores interview details with the date pinned to
// an absolute RFC3339 timestamp.
func normalizeInterviewDetails(details models.JSONB) (models.JSONB, error) {
	normalized := make(models.JSONB, len(details))
	for k, v := range details {
		normalized[k] = v
	}

	raw, ok := normalized["date"]
	if !ok {
		return normalized, nil
	}
	dateStr, ok := raw.(string)
	if !ok {
		return nil, apperrors.Validation("interview date must be a string")
	}

	parsed, err := parseInterviewDate(dateStr)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid interview date %q", dateStr))
	}
	normalized["date"] = parsed.UTC().Format(time.RFC3339)
	return normalized, nil
}

func parseInterviewDate(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}

func (s *ApplicationService) Get(actor Actor, applicationID uuid.UUID) (*models.Application, error) {
	var application models.Application
	if err := s.db.Preload("Student").Preload("Internship").Preload("Mentor").
		First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, apperrors.Internal(err)
	}

	switch actor.Role {
	case models.RoleStudent:
		if application.StudentID != actor.ID {
			return nil, apperrors.Forbidden("access denied")
		}
	case models.RoleMentor:
		if application.MentorID == nil || *application.MentorID != actor.ID {
			return nil, apperrors.Forbidden("access denied")
		}
	case models.RoleAdmin, models.RoleRecruiter:
		// Unrestricted single-record access.
	default:
		return nil, apperrors.Forbidden("access denied")
	}

	return &application, nil
}

func (s *ApplicationService) List(actor Actor, params utils.PaginationParams) ([]models.Application, int64, error) {
	scope, err := s.visibilityService.ScopeApplications(actor)
	if err != nil {
		return nil, 0, apperrors.Forbidden("access denied")
	}

	query := s.db.Model(&models.Application{}).Scopes(scope).
		Preload("Student").Preload("Internship")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal(err)
	}

	allowedSortFields := []string{"created_at", "applied_at", "updated_at", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var applications []models.Application
	if err := query.Find(&applications).Error; err != nil {
		return nil, 0, apperrors.Internal(err)
	}

	return applications, total, nil
}

// PendingForMentor lists applications awaiting the mentor's approval.
func (s *ApplicationService) PendingForMentor(actor Actor) ([]models.Application, error) {
	if actor.Role != models.RoleMentor {
		return nil, apperrors.Forbidden("only mentors have a pending approval queue")
	}

	var applications []models.Application
	err := s.db.Where("mentor_id = ? AND status = ?", actor.ID, models.ApplicationStatusPendingMentorApproval).
		Preload("Student").Preload("Internship").
		Order("applied_at ASC").
		Find(&applications).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return applications, nil
}
