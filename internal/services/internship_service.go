// internal/services/internship_service.go
package services

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/campuscell/placement-backend/internal/apperrors"
	"github.com/campuscell/placement-backend/internal/models"
	"github.com/campuscell/placement-backend/internal/utils"
)

type InternshipService struct {
	db                  *gorm.DB
	visibilityService   *VisibilityService
	notificationService *NotificationService
	auditService        *AuditService
}

func NewInternshipService(db *gorm.DB, visibilityService *VisibilityService, notificationService *NotificationService, auditService *AuditService) *InternshipService {
	return &InternshipService{
		db:                  db,
		visibilityService:   visibilityService,
		notificationService: notificationService,
		auditService:        auditService,
	}
}

type CreateInternshipRequest struct {
	Title               string     `json:"title" validate:"required,min=3,max=255"`
	Company             string     `json:"company" validate:"required,max=255"`
	CompanyLogo         string     `json:"company_logo,omitempty" validate:"omitempty,url"`
	CompanyDescription  string     `json:"company_description,omitempty"`
	Description         string     `json:"description" validate:"required,min=10"`
	RequiredSkills      []string   `json:"required_skills" validate:"required,min=1"`
	PreferredSkills     []string   `json:"preferred_skills,omitempty"`
	EligibleDepartments []string   `json:"eligible_departments" validate:"required,min=1"`
	MinimumSemester     int        `json:"minimum_semester" validate:"omitempty,semester"`
	MinimumCGPA         float64    `json:"minimum_cgpa" validate:"omitempty,cgpa"`
	Stipend             string     `json:"stipend,omitempty" validate:"max=100"`
	Duration            string     `json:"duration,omitempty" validate:"max=100"`
	Location            string     `json:"location,omitempty" validate:"max=255"`
	WorkMode            string     `json:"work_mode,omitempty" validate:"omitempty,oneof=On-site Remote Hybrid"`
	Requirements        []string   `json:"requirements,omitempty"`
	Benefits            []string   `json:"benefits,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	MaxApplications     int        `json:"max_applications" validate:"omitempty,min=1,max=10000"`
}

type UpdateInternshipRequest struct {
	Title               *string    `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description         *string    `json:"description,omitempty" validate:"omitempty,min=10"`
	RequiredSkills      []string   `json:"required_skills,omitempty"`
	PreferredSkills     []string   `json:"preferred_skills,omitempty"`
	EligibleDepartments []string   `json:"eligible_departments,omitempty"`
	MinimumSemester     *int       `json:"minimum_semester,omitempty" validate:"omitempty,semester"`
	MinimumCGPA         *float64   `json:"minimum_cgpa,omitempty" validate:"omitempty,cgpa"`
	Stipend             *string    `json:"stipend,omitempty"`
	Duration            *string    `json:"duration,omitempty"`
	Location            *string    `json:"location,omitempty"`
	WorkMode            *string    `json:"work_mode,omitempty" validate:"omitempty,oneof=On-site Remote Hybrid"`
	Requirements        []string   `json:"requirements,omitempty"`
	Benefits            []string   `json:"benefits,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	MaxApplications     *int       `json:"max_applications,omitempty" validate:"omitempty,min=1,max=10000"`
}

type RejectInternshipRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

// InternshipFilters are the list-endpoint query filters. Skill and stipend
// filters are applied in memory after the database query.
type InternshipFilters struct {
	Department string
	Skills     []string
	MinStipend int
	MaxStipend int
	WorkMode   string
	Location   string
	Search     string
	Status     models.InternshipStatus
}

// InternshipView pairs an internship with the requesting student's
// eligibility verdict. Eligibility is nil for non-student callers.
type InternshipView struct {
	models.Internship
	Eligibility *Evaluation `json:"eligibility,omitempty"`
}

// CreateDirect creates an immediately active posting. Admin only.
func (s *InternshipService) CreateDirect(actor Actor, req *CreateInternshipRequest) (*models.Internship, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can post internships directly")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.ValidationMessage(err))
	}

	internship := s.fromCreateRequest(req)
	internship.Status = models.InternshipStatusActive
	internship.PostedBy = &actor.ID

	if err := s.db.Create(internship).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	s.auditService.Record(actor.ID, "internship.create", models.JSONB{
		"internship_id": internship.ID.String(),
		"title":         internship.Title,
	})

	return internship, nil
}

// Submit files a recruiter posting for admin review. The company is taken
// from the recruiter's profile so submissions cannot impersonate another
// employer.
func (s *InternshipService) Submit(actor Actor, req *CreateInternshipRequest) (*models.Internship, error) {
	if !actor.IsRecruiter() {
		return nil, apperrors.Forbidden("only recruiters can submit internships for review")
	}

	var recruiter models.User
	if err := s.db.Where("role = ?", models.RoleRecruiter).First(&recruiter, actor.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("recruiter not found")
		}
		return nil, apperrors.Internal(err)
	}
	if recruiter.Company != "" {
		req.Company = recruiter.Company
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.ValidationMessage(err))
	}

	internship := s.fromCreateRequest(req)
	internship.Status = models.InternshipStatusSubmitted
	internship.SubmittedBy = &actor.ID

	if err := s.db.Create(internship).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	return internship, nil
}

func (s *InternshipService) fromCreateRequest(req *CreateInternshipRequest) *models.Internship {
	internship := &models.Internship{
		Title:               req.Title,
		Company:             req.Company,
		CompanyLogo:         req.CompanyLogo,
		CompanyDescription:  req.CompanyDescription,
		Description:         req.Description,
		RequiredSkills:      pq.StringArray(req.RequiredSkills),
		PreferredSkills:     pq.StringArray(req.PreferredSkills),
		EligibleDepartments: pq.StringArray(req.EligibleDepartments),
		MinimumSemester:     req.MinimumSemester,
		MinimumCGPA:         req.MinimumCGPA,
		Stipend:             req.Stipend,
		Duration:            req.Duration,
		Location:            req.Location,
		WorkMode:            req.WorkMode,
		Requirements:        pq.StringArray(req.Requirements),
		Benefits:            pq.StringArray(req.Benefits),
		ApplicationDeadline: req.ApplicationDeadline,
		StartDate:           req.StartDate,
		MaxApplications:     req.MaxApplications,
	}
	if internship.MinimumSemester == 0 {
		internship.MinimumSemester = 4
	}
	if internship.MinimumCGPA == 0 {
		internship.MinimumCGPA = 6.0
	}
	if internship.WorkMode == "" {
		internship.WorkMode = "On-site"
	}
	if internship.MaxApplications == 0 {
		internship.MaxApplications = 50
	}
	return internship
}

// Approve publishes a recruiter submission. The submitter becomes the
// poster so recruiter-scoped queries keep working after approval.
func (s *InternshipService) Approve(actor Actor, internshipID uuid.UUID, adminNotes string) (*models.Internship, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can approve submissions")
	}

	internship, err := s.find(internshipID)
	if err != nil {
		return nil, err
	}
	if internship.Status != models.InternshipStatusSubmitted {
		return nil, apperrors.InvalidState(fmt.Sprintf(
			"only submitted internships can be approved, current status is %q", internship.Status))
	}

	now := time.Now()
	internship.Status = models.InternshipStatusActive
	internship.PostedBy = internship.SubmittedBy
	internship.ApprovedBy = &actor.ID
	internship.ApprovedAt = &now
	internship.AdminNotes = adminNotes
	internship.RejectionReason = ""

	if err := s.db.Save(internship).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	s.auditService.Record(actor.ID, "internship.approve", models.JSONB{
		"internship_id": internship.ID.String(),
		"title":         internship.Title,
	})
	go s.notifySubmitter(internship, true, adminNotes)

	return internship, nil
}

// Reject declines a recruiter submission with a reason.
func (s *InternshipService) Reject(actor Actor, internshipID uuid.UUID, req *RejectInternshipRequest) (*models.Internship, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can reject submissions")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("a rejection reason is required")
	}

	internship, err := s.find(internshipID)
	if err != nil {
		return nil, err
	}
	if internship.Status != models.InternshipStatusSubmitted {
		return nil, apperrors.InvalidState(fmt.Sprintf(
			"only submitted internships can be rejected, current status is %q", internship.Status))
	}

	internship.Status = models.InternshipStatusRejected
	internship.RejectionReason = req.Reason

	if err := s.db.Save(internship).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	s.auditService.Record(actor.ID, "internship.reject", models.JSONB{
		"internship_id": internship.ID.String(),
		"reason":        req.Reason,
	})
	go s.notifySubmitter(internship, false, req.Reason)

	return internship, nil
}

func (s *InternshipService) notifySubmitter(internship *models.Internship, approved bool, note string) {
	if s.notificationService == nil || internship.SubmittedBy == nil {
		return
	}
	if err := s.notificationService.SendSubmissionReviewNotification(internship, approved, note); err != nil {
		logrus.WithError(err).WithField("internship_id", internship.ID).
			Warn("Failed to send submission review notification")
	}
}

func (s *InternshipService) Update(actor Actor, internshipID uuid.UUID, req *UpdateInternshipRequest) (*models.Internship, error) {
	if !actor.IsAdmin() && !actor.IsRecruiter() {
		return nil, apperrors.Forbidden("only admins and recruiters can update internships")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.ValidationMessage(err))
	}

	internship, err := s.find(internshipID)
	if err != nil {
		return nil, err
	}
	if actor.IsRecruiter() {
		if err := recruiterCanEdit(actor, internship); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		internship.Title = *req.Title
	}
	if req.Description != nil {
		internship.Description = *req.Description
	}
	if req.RequiredSkills != nil {
		internship.RequiredSkills = pq.StringArray(req.RequiredSkills)
	}
	if req.PreferredSkills != nil {
		internship.PreferredSkills = pq.StringArray(req.PreferredSkills)
	}
	if req.EligibleDepartments != nil {
		internship.EligibleDepartments = pq.StringArray(req.EligibleDepartments)
	}
	if req.MinimumSemester != nil {
		internship.MinimumSemester = *req.MinimumSemester
	}
	if req.MinimumCGPA != nil {
		internship.MinimumCGPA = *req.MinimumCGPA
	}
	if req.Stipend != nil {
		internship.Stipend = *req.Stipend
	}
	if req.Duration != nil {
		internship.Duration = *req.Duration
	}
	if req.Location != nil {
		internship.Location = *req.Location
	}
	if req.WorkMode != nil {
		internship.WorkMode = *req.WorkMode
	}
	if req.Requirements != nil {
		internship.Requirements = pq.StringArray(req.Requirements)
	}
	if req.Benefits != nil {
		internship.Benefits = pq.StringArray(req.Benefits)
	}
	if req.ApplicationDeadline != nil {
		internship.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.StartDate != nil {
		internship.StartDate = req.StartDate
	}
	if req.MaxApplications != nil {
		internship.MaxApplications = *req.MaxApplications
	}

	if err := s.db.Save(internship).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	if actor.IsAdmin() {
		s.auditService.Record(actor.ID, "internship.update", models.JSONB{
			"internship_id": internship.ID.String(),
		})
	}

	return internship, nil
}

// recruiterCanEdit allows a recruiter to edit a posting they own once it is
// out of review.
func recruiterCanEdit(actor Actor, internship *models.Internship) error {
	if internship.Status == models.InternshipStatusSubmitted {
		return apperrors.InvalidState("submitted internships cannot be edited while under review")
	}
	if internship.PostedBy == nil || *internship.PostedBy != actor.ID {
		return apperrors.Forbidden("you can only edit your own postings")
	}
	return nil
}

// recruiterCanDelete allows a recruiter to withdraw their own submission or
// remove their own posting once it is no longer live.
func recruiterCanDelete(actor Actor, internship *models.Internship) error {
	owner := (internship.PostedBy != nil && *internship.PostedBy == actor.ID) ||
		(internship.SubmittedBy != nil && *internship.SubmittedBy == actor.ID)
	if !owner {
		return apperrors.Forbidden("you can only delete your own postings")
	}
	if internship.Status == models.InternshipStatusActive {
		return apperrors.InvalidState("deactivate an active internship before deleting it")
	}
	return nil
}

// SetActive toggles an internship between active and inactive.
func (s *InternshipService) SetActive(actor Actor, internshipID uuid.UUID, active bool) (*models.Internship, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can change internship availability")
	}

	internship, err := s.find(internshipID)
	if err != nil {
		return nil, err
	}

	target := models.InternshipStatusInactive
	if active {
		target = models.InternshipStatusActive
	}
	if !activeTransitionAllowed(internship.Status, active) {
		return nil, apperrors.InvalidState(fmt.Sprintf(
			"cannot move internship from %q to %q", internship.Status, target))
	}

	internship.Status = target
	if active {
		// Reviving a rejected submission publishes it like an approval would.
		if internship.PostedBy == nil {
			internship.PostedBy = internship.SubmittedBy
		}
		internship.RejectionReason = ""
	}
	if err := s.db.Save(internship).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	s.auditService.Record(actor.ID, "internship.set_status", models.JSONB{
		"internship_id": internship.ID.String(),
		"status":        string(target),
	})

	return internship, nil
}

// activeTransitionAllowed gates SetActive: a live posting can be paused, and
// a paused or rejected one can be brought live. Submissions under review go
// through Approve instead.
func activeTransitionAllowed(current models.InternshipStatus, active bool) bool {
	if active {
		return current == models.InternshipStatusInactive || current == models.InternshipStatusRejected
	}
	return current == models.InternshipStatusActive
}

func (s *InternshipService) Delete(actor Actor, internshipID uuid.UUID) error {
	if !actor.IsAdmin() && !actor.IsRecruiter() {
		return apperrors.Forbidden("only admins and recruiters can delete internships")
	}

	internship, err := s.find(internshipID)
	if err != nil {
		return err
	}
	if actor.IsRecruiter() {
		if err := recruiterCanDelete(actor, internship); err != nil {
			return err
		}
	}

	if err := s.db.Delete(internship).Error; err != nil {
		return apperrors.Internal(err)
	}

	if actor.IsAdmin() {
		s.auditService.Record(actor.ID, "internship.delete", models.JSONB{
			"internship_id": internship.ID.String(),
			"title":         internship.Title,
		})
	}

	return nil
}

func (s *InternshipService) find(internshipID uuid.UUID) (*models.Internship, error) {
	var internship models.Internship
	if err := s.db.First(&internship, internshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("internship not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &internship, nil
}

// ListForRecruiter returns the recruiter's own postings and submissions with
// their applicants, any status included.
func (s *InternshipService) ListForRecruiter(actor Actor) ([]models.Internship, error) {
	if !actor.IsRecruiter() {
		return nil, apperrors.Forbidden("only recruiters have a postings view")
	}

	var internships []models.Internship
	err := s.db.Where("posted_by = ? OR submitted_by = ?", actor.ID, actor.ID).
		Preload("Applications").
		Preload("Applications.Student").
		Order("created_at DESC").
		Find(&internships).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return internships, nil
}

// Get returns one internship through the visibility filter, with the
// student's eligibility verdict attached when the caller is a student.
func (s *InternshipService) Get(actor *Actor, internshipID uuid.UUID) (*InternshipView, error) {
	internship, err := s.find(internshipID)
	if err != nil {
		return nil, err
	}
	if !InternshipVisibleTo(actor, internship) {
		// Hidden records are indistinguishable from absent ones.
		return nil, apperrors.NotFound("internship not found")
	}

	view := &InternshipView{Internship: *internship}
	if actor != nil && actor.Role == models.RoleStudent {
		evaluation, err := s.evaluateFor(*actor, internship)
		if err != nil {
			return nil, err
		}
		view.Eligibility = evaluation
	}
	return view, nil
}

// List returns internships visible to the actor with filters and pagination.
// Database-expressible filters run in SQL; skill overlap and stipend range
// are applied in memory because stipend is free text.
func (s *InternshipService) List(actor *Actor, filters InternshipFilters, params utils.PaginationParams) ([]InternshipView, int64, error) {
	query := s.db.Model(&models.Internship{}).Scopes(s.visibilityService.ScopeInternships(actor))

	if status := effectiveStatusFilter(actor, filters.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if filters.Department != "" {
		query = query.Where("? = ANY(eligible_departments)", filters.Department)
	}
	if filters.WorkMode != "" {
		query = query.Where("work_mode = ?", filters.WorkMode)
	}
	if filters.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filters.Location+"%")
	}
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("title ILIKE ? OR company ILIKE ? OR description ILIKE ?", like, like, like)
	}

	allowedSortFields := []string{"created_at", "updated_at", "title", "company", "application_deadline", "minimum_cgpa"}
	query = utils.ApplySort(query, params, allowedSortFields)

	var internships []models.Internship
	if err := query.Find(&internships).Error; err != nil {
		return nil, 0, apperrors.Internal(err)
	}

	internships = filterBySkills(internships, filters.Skills)
	internships = filterByStipend(internships, filters.MinStipend, filters.MaxStipend)

	total := int64(len(internships))
	internships = paginateSlice(internships, params)

	views := make([]InternshipView, 0, len(internships))
	var student *models.User
	var appliedSet map[uuid.UUID]bool
	if actor != nil && actor.Role == models.RoleStudent {
		var err error
		student, appliedSet, err = s.loadStudentContext(actor.ID)
		if err != nil {
			return nil, 0, err
		}
	}
	for i := range internships {
		view := InternshipView{Internship: internships[i]}
		if student != nil {
			evaluation := Evaluate(student, &internships[i])
			evaluation.HasApplied = appliedSet[internships[i].ID]
			view.Eligibility = &evaluation
		}
		views = append(views, view)
	}

	return views, total, nil
}

// Recommended returns active internships the student is eligible for, best
// score first.
func (s *InternshipService) Recommended(actor Actor, limit int) ([]InternshipView, error) {
	if actor.Role != models.RoleStudent {
		return nil, apperrors.Forbidden("recommendations are for students")
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	student, appliedSet, err := s.loadStudentContext(actor.ID)
	if err != nil {
		return nil, err
	}

	var internships []models.Internship
	if err := s.db.Where("status = ?", models.InternshipStatusActive).
		Find(&internships).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	views := make([]InternshipView, 0, len(internships))
	for i := range internships {
		evaluation := Evaluate(student, &internships[i])
		if !evaluation.IsEligible || appliedSet[internships[i].ID] {
			continue
		}
		evaluation.HasApplied = false
		views = append(views, InternshipView{Internship: internships[i], Eligibility: &evaluation})
	}

	// Highest score first, newest breaking ties.
	sort.SliceStable(views, func(i, j int) bool {
		return betterRecommendation(views[i], views[j])
	})
	if len(views) > limit {
		views = views[:limit]
	}
	return views, nil
}

func betterRecommendation(a, b InternshipView) bool {
	if a.Eligibility.RecommendationScore != b.Eligibility.RecommendationScore {
		return a.Eligibility.RecommendationScore > b.Eligibility.RecommendationScore
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (s *InternshipService) loadStudentContext(studentID uuid.UUID) (*models.User, map[uuid.UUID]bool, error) {
	var student models.User
	if err := s.db.Where("role = ?", models.RoleStudent).First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NotFound("student not found")
		}
		return nil, nil, apperrors.Internal(err)
	}

	var internshipIDs []uuid.UUID
	if err := s.db.Model(&models.Application{}).
		Where("student_id = ?", studentID).
		Pluck("internship_id", &internshipIDs).Error; err != nil {
		return nil, nil, apperrors.Internal(err)
	}
	appliedSet := make(map[uuid.UUID]bool, len(internshipIDs))
	for _, id := range internshipIDs {
		appliedSet[id] = true
	}
	return &student, appliedSet, nil
}

func (s *InternshipService) evaluateFor(actor Actor, internship *models.Internship) (*Evaluation, error) {
	student, appliedSet, err := s.loadStudentContext(actor.ID)
	if err != nil {
		return nil, err
	}
	evaluation := Evaluate(student, internship)
	evaluation.HasApplied = appliedSet[internship.ID]
	return &evaluation, nil
}

func filterBySkills(internships []models.Internship, skills []string) []models.Internship {
	if len(skills) == 0 {
		return internships
	}
	filtered := internships[:0]
	for i := range internships {
		if anySkillMatches(internships[i].RequiredSkills, skills) ||
			anySkillMatches(internships[i].PreferredSkills, skills) {
			filtered = append(filtered, internships[i])
		}
	}
	return filtered
}

// anySkillMatches is a case-insensitive substring match, so a filter of
// "node" matches "Node.js".
func anySkillMatches(have []string, want []string) bool {
	for _, h := range have {
		lower := strings.ToLower(h)
		for _, w := range want {
			if strings.Contains(lower, strings.ToLower(w)) {
				return true
			}
		}
	}
	return false
}

// effectiveStatusFilter defaults listings to active postings for non-admin
// callers; admins see every status unless they ask for one.
func effectiveStatusFilter(actor *Actor, requested models.InternshipStatus) models.InternshipStatus {
	if requested != "" {
		return requested
	}
	if actor != nil && actor.Role == models.RoleAdmin {
		return ""
	}
	return models.InternshipStatusActive
}

func filterByStipend(internships []models.Internship, min, max int) []models.Internship {
	if min <= 0 && max <= 0 {
		return internships
	}
	filtered := internships[:0]
	for i := range internships {
		amount, ok := parseStipendAmount(internships[i].Stipend)
		if !ok {
			continue
		}
		if min > 0 && amount < min {
			continue
		}
		if max > 0 && amount > max {
			continue
		}
		filtered = append(filtered, internships[i])
	}
	return filtered
}

var stipendAmountPattern = regexp.MustCompile(`[0-9][0-9,]*`)

// parseStipendAmount extracts the first number from a free-text stipend
// such as "₹25,000/month" or "25000 INR". Returns false when no digits
// are present.
func parseStipendAmount(stipend string) (int, bool) {
	match := stipendAmountPattern.FindString(stipend)
	if match == "" {
		return 0, false
	}
	amount, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return 0, false
	}
	return amount, true
}

func paginateSlice(internships []models.Internship, params utils.PaginationParams) []models.Internship {
	start := (params.Page - 1) * params.Limit
	if start >= len(internships) {
		return []models.Internship{}
	}
	end := start + params.Limit
	if end > len(internships) {
		end = len(internships)
	}
	return internships[start:end]
}
