// internal/services/admin_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/campuscell/placement-backend/internal/apperrors"
	"github.com/campuscell/placement-backend/internal/models"
)

// AdminService serves the placement cell dashboard aggregates.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

type DashboardStats struct {
	TotalStudents      int64   `json:"total_students"`
	PlacedStudents     int64   `json:"placed_students"`
	PlacementRate      float64 `json:"placement_rate"`
	TotalInternships   int64   `json:"total_internships"`
	ActiveInternships  int64   `json:"active_internships"`
	PendingSubmissions int64   `json:"pending_submissions"`
	TotalApplications  int64   `json:"total_applications"`
	PendingApprovals   int64   `json:"pending_approvals"`
	OffersExtended     int64   `json:"offers_extended"`

	RecentApplications []models.Application `json:"recent_applications"`
	UpcomingInterviews []models.Application `json:"upcoming_interviews"`
}

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type departmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type ApplicationAnalytics struct {
	ByStatus             []statusCount     `json:"by_status"`
	ByDepartment         []departmentCount `json:"by_department"`
	StudentsByDepartment []departmentCount `json:"students_by_department"`
}

type InternshipStats struct {
	InternshipID string `json:"internship_id"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Applications int64  `json:"applications"`
	Offers       int64  `json:"offers"`
}

func (s *AdminService) GetDashboardStats(actor Actor) (*DashboardStats, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can view dashboard statistics")
	}

	stats := &DashboardStats{}

	type count struct {
		dest  *int64
		query *gorm.DB
	}
	counts := []count{
		{&stats.TotalStudents, s.db.Model(&models.User{}).Where("role = ?", models.RoleStudent)},
		{&stats.PlacedStudents, s.db.Model(&models.User{}).Where("role = ? AND is_placed = ?", models.RoleStudent, true)},
		{&stats.TotalInternships, s.db.Model(&models.Internship{})},
		{&stats.ActiveInternships, s.db.Model(&models.Internship{}).Where("status = ?", models.InternshipStatusActive)},
		{&stats.PendingSubmissions, s.db.Model(&models.Internship{}).Where("status = ?", models.InternshipStatusSubmitted)},
		{&stats.TotalApplications, s.db.Model(&models.Application{})},
		{&stats.PendingApprovals, s.db.Model(&models.Application{}).Where("status = ?", models.ApplicationStatusPendingMentorApproval)},
		{&stats.OffersExtended, s.db.Model(&models.Application{}).Where("status IN ?", []models.ApplicationStatus{models.ApplicationStatusOffered, models.ApplicationStatusAccepted})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	if stats.TotalStudents > 0 {
		stats.PlacementRate = float64(stats.PlacedStudents) / float64(stats.TotalStudents) * 100
	}

	var err error
	if stats.RecentApplications, err = s.recentApplications(10); err != nil {
		return nil, apperrors.Internal(err)
	}
	if stats.UpcomingInterviews, err = s.upcomingInterviews(10); err != nil {
		return nil, apperrors.Internal(err)
	}

	return stats, nil
}

func (s *AdminService) recentApplications(limit int) ([]models.Application, error) {
	var applications []models.Application
	err := s.db.Preload("Student").Preload("Internship").
		Order("applied_at DESC").
		Limit(limit).
		Find(&applications).Error
	return applications, err
}

func (s *AdminService) upcomingInterviews(limit int) ([]models.Application, error) {
	var applications []models.Application
	// The interview date is stored as an RFC3339 string inside the jsonb blob.
	err := s.db.Preload("Student").Preload("Internship").
		Where("status = ?", models.ApplicationStatusInterviewScheduled).
		Where("(interview_scheduled->>'date')::timestamptz >= NOW()").
		Order("interview_scheduled->>'date' ASC").
		Limit(limit).
		Find(&applications).Error
	return applications, err
}

func (s *AdminService) GetApplicationAnalytics(actor Actor) (*ApplicationAnalytics, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can view application analytics")
	}

	analytics := &ApplicationAnalytics{}

	err := s.db.Model(&models.Application{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Order("count DESC").
		Scan(&analytics.ByStatus).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	err = s.db.Model(&models.Application{}).
		Select("users.department as department, COUNT(*) as count").
		Joins("JOIN users ON users.id = applications.student_id").
		Group("users.department").
		Order("count DESC").
		Scan(&analytics.ByDepartment).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	err = s.db.Model(&models.User{}).
		Select("department, COUNT(*) as count").
		Where("role = ?", models.RoleStudent).
		Group("department").
		Order("count DESC").
		Scan(&analytics.StudentsByDepartment).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return analytics, nil
}

// GetInternshipStats lists per-posting application and offer volumes,
// busiest postings first.
func (s *AdminService) GetInternshipStats(actor Actor, limit int) ([]InternshipStats, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can view internship statistics")
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var stats []InternshipStats
	err := s.db.Model(&models.Internship{}).
		Select(`internships.id as internship_id,
			internships.title,
			internships.company,
			COUNT(applications.id) as applications,
			COUNT(applications.id) FILTER (WHERE applications.status IN ('offered', 'accepted')) as offers`).
		Joins("LEFT JOIN applications ON applications.internship_id = internships.id AND applications.deleted_at IS NULL").
		Group("internships.id, internships.title, internships.company").
		Order("applications DESC").
		Limit(limit).
		Scan(&stats).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return stats, nil
}
