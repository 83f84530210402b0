// internal/handlers/admin.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscell/placement-backend/internal/services"
	"github.com/campuscell/placement-backend/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
	userService  *services.UserService
	auditService *services.AuditService
}

func NewAdminHandler(adminService *services.AdminService, userService *services.UserService, auditService *services.AuditService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		userService:  userService,
		auditService: auditService,
	}
}

// CreateUser handles POST /admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload", nil)
		return
	}

	user, err := h.userService.Create(actor, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, user)
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	stats, err := h.adminService.GetDashboardStats(actor)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}

// ApplicationAnalytics handles GET /admin/analytics/applications
func (h *AdminHandler) ApplicationAnalytics(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	analytics, err := h.adminService.GetApplicationAnalytics(actor)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, analytics)
}

// InternshipStats handles GET /admin/analytics/internships
func (h *AdminHandler) InternshipStats(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	stats, err := h.adminService.GetInternshipStats(actor, limit)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}

// AuditLog handles GET /admin/audit
func (h *AdminHandler) AuditLog(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := h.auditService.Recent(actor, limit)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, entries)
}
