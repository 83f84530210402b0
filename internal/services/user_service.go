// internal/services/user_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/campuscell/placement-backend/internal/apperrors"
	"github.com/campuscell/placement-backend/internal/models"
	"github.com/campuscell/placement-backend/internal/utils"
)

type UserService struct {
	db                *gorm.DB
	visibilityService *VisibilityService
	auditService      *AuditService
}

func NewUserService(db *gorm.DB, visibilityService *VisibilityService, auditService *AuditService) *UserService {
	return &UserService{
		db:                db,
		visibilityService: visibilityService,
		auditService:      auditService,
	}
}

type CreateUserRequest struct {
	Name     string      `json:"name" validate:"required,min=2,max=255"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     models.Role `json:"role" validate:"required"`

	// Student fields
	Department string   `json:"department,omitempty" validate:"omitempty,max=100"`
	Semester   int      `json:"semester,omitempty" validate:"omitempty,semester"`
	CGPA       float64  `json:"cgpa,omitempty" validate:"omitempty,cgpa"`
	Skills     []string `json:"skills,omitempty"`
	ResumeLink string   `json:"resume_link,omitempty" validate:"omitempty,url"`
	Phone      string   `json:"phone,omitempty" validate:"omitempty,max=20"`

	// Mentor / recruiter fields
	Designation string `json:"designation,omitempty" validate:"omitempty,max=100"`
	Company     string `json:"company,omitempty" validate:"omitempty,max=255"`
	MaxStudents int    `json:"max_students,omitempty" validate:"omitempty,min=1,max=100"`
}

type UpdateProfileRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Department *string  `json:"department,omitempty" validate:"omitempty,max=100"`
	Semester   *int     `json:"semester,omitempty" validate:"omitempty,semester"`
	CGPA       *float64 `json:"cgpa,omitempty" validate:"omitempty,cgpa"`
	Skills     []string `json:"skills,omitempty"`
	ResumeLink *string  `json:"resume_link,omitempty" validate:"omitempty,url"`
	Phone      *string  `json:"phone,omitempty" validate:"omitempty,max=20"`

	Designation *string `json:"designation,omitempty" validate:"omitempty,max=100"`
	Company     *string `json:"company,omitempty" validate:"omitempty,max=255"`
	MaxStudents *int    `json:"max_students,omitempty" validate:"omitempty,min=1,max=100"`
}

type SetPlacementRequest struct {
	IsPlaced        bool                   `json:"is_placed"`
	PlacementStatus models.PlacementStatus `json:"placement_status" validate:"required,oneof=active placed inactive"`
	PlacedAt        models.JSONB           `json:"placed_at,omitempty"`
}

type StudentFilters struct {
	Department      string
	PlacementStatus models.PlacementStatus
	MinCGPA         float64
	Skill           string
	Search          string
}

// Create registers a portal account. Admin only; students, mentors, and
// recruiters do not self-register.
func (s *UserService) Create(actor Actor, req *CreateUserRequest) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can create accounts")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.ValidationMessage(err))
	}
	if !req.Role.Valid() {
		return nil, apperrors.Validation("unknown role")
	}

	var existing models.User
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("an account with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err)
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		Department:  req.Department,
		Semester:    req.Semester,
		CGPA:        req.CGPA,
		Skills:      pq.StringArray(req.Skills),
		ResumeLink:  req.ResumeLink,
		Phone:       req.Phone,
		Designation: req.Designation,
		Company:     req.Company,
		MaxStudents: req.MaxStudents,
	}
	if user.Role == models.RoleStudent {
		user.PlacementStatus = models.PlacementStatusActive
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.db.Create(user).Error; err != nil {
		// The unique index on email closes the race the read-check leaves open.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("an account with this email already exists")
		}
		return nil, apperrors.Internal(err)
	}

	s.auditService.Record(actor.ID, "user.create", models.JSONB{
		"user_id": user.ID.String(),
		"role":    string(user.Role),
	})

	return user, nil
}

// ListStudents returns students visible to the actor. Recruiters only see
// applicants to their own postings; students have no student directory.
func (s *UserService) ListStudents(actor Actor, filters StudentFilters, params utils.PaginationParams) ([]models.User, int64, error) {
	if actor.IsStudent() {
		return nil, 0, apperrors.Forbidden("students cannot browse the student directory")
	}

	scope, err := s.visibilityService.ScopeStudents(actor)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}

	query := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleStudent).
		Scopes(scope)

	if filters.Department != "" {
		query = query.Where("department = ?", filters.Department)
	}
	if filters.PlacementStatus != "" {
		query = query.Where("placement_status = ?", filters.PlacementStatus)
	}
	if filters.MinCGPA > 0 {
		query = query.Where("cgpa >= ?", filters.MinCGPA)
	}
	if filters.Skill != "" {
		query = query.Where("? = ANY(skills)", filters.Skill)
	}
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal(err)
	}

	allowedSortFields := []string{"created_at", "name", "cgpa", "semester", "department"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var students []models.User
	if err := query.Find(&students).Error; err != nil {
		return nil, 0, apperrors.Internal(err)
	}

	return students, total, nil
}

// GetStudent returns one student record under the same visibility rules as
// the directory, except that a student may read their own record.
func (s *UserService) GetStudent(actor Actor, studentID uuid.UUID) (*models.User, error) {
	if actor.IsStudent() && actor.ID != studentID {
		return nil, apperrors.Forbidden("students can only view their own record")
	}
	if actor.IsRecruiter() {
		allowed, err := s.visibilityService.AllowedStudentIDs(actor.ID)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		permitted := false
		for _, id := range allowed {
			if id == studentID {
				permitted = true
				break
			}
		}
		if !permitted {
			return nil, apperrors.NotFound("student not found")
		}
	}

	var student models.User
	if err := s.db.Where("role = ?", models.RoleStudent).First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("student not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &student, nil
}

// UpdateProfile updates mutable profile fields. Identity fields (id, email,
// role) never change through this path. Users edit themselves; admins can
// edit anyone.
func (s *UserService) UpdateProfile(actor Actor, userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	if !actor.IsAdmin() && actor.ID != userID {
		return nil, apperrors.Forbidden("you can only update your own profile")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.ValidationMessage(err))
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Semester != nil {
		user.Semester = *req.Semester
	}
	if req.CGPA != nil {
		user.CGPA = *req.CGPA
	}
	if req.Skills != nil {
		user.Skills = pq.StringArray(req.Skills)
	}
	if req.ResumeLink != nil {
		user.ResumeLink = *req.ResumeLink
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Designation != nil {
		user.Designation = *req.Designation
	}
	if req.Company != nil {
		user.Company = *req.Company
	}
	if req.MaxStudents != nil {
		user.MaxStudents = *req.MaxStudents
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	if actor.IsAdmin() && actor.ID != userID {
		s.auditService.Record(actor.ID, "user.update_profile", models.JSONB{
			"user_id": userID.String(),
		})
	}

	return &user, nil
}

// SetPlacement records a student's placement outcome. A placed student must
// carry the placement details.
func (s *UserService) SetPlacement(actor Actor, studentID uuid.UUID, req *SetPlacementRequest) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can update placement status")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.ValidationMessage(err))
	}
	if req.IsPlaced && len(req.PlacedAt) == 0 {
		return nil, apperrors.Validation("placement details are required when marking a student as placed")
	}
	if req.IsPlaced != (req.PlacementStatus == models.PlacementStatusPlaced) {
		return nil, apperrors.Validation("is_placed and placement_status disagree")
	}

	var student models.User
	if err := s.db.Where("role = ?", models.RoleStudent).First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("student not found")
		}
		return nil, apperrors.Internal(err)
	}

	student.IsPlaced = req.IsPlaced
	student.PlacementStatus = req.PlacementStatus
	if req.IsPlaced {
		student.PlacedAt = req.PlacedAt
	} else {
		student.PlacedAt = nil
	}

	if err := s.db.Save(&student).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	s.auditService.Record(actor.ID, "student.set_placement", models.JSONB{
		"student_id": studentID.String(),
		"status":     string(req.PlacementStatus),
	})

	return &student, nil
}

// ListMentors returns the mentor directory. Students use it to request a
// mentor on their applications.
func (s *UserService) ListMentors(actor Actor) ([]models.User, error) {
	if actor.IsRecruiter() {
		return nil, apperrors.Forbidden("recruiters cannot browse mentors")
	}

	var mentors []models.User
	err := s.db.Where("role = ?", models.RoleMentor).
		Order("created_at ASC").
		Find(&mentors).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return mentors, nil
}
