// internal/handlers/internship.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campuscell/placement-backend/internal/models"
	"github.com/campuscell/placement-backend/internal/services"
	"github.com/campuscell/placement-backend/internal/utils"
)

type InternshipHandler struct {
	internshipService *services.InternshipService
}

func NewInternshipHandler(internshipService *services.InternshipService) *InternshipHandler {
	return &InternshipHandler{internshipService: internshipService}
}

// List handles GET /internships
func (h *InternshipHandler) List(c *gin.Context) {
	actor := optionalActor(c)
	params := utils.GetPaginationParams(c)
	filters := parseInternshipFilters(c)

	views, total, err := h.internshipService.List(actor, filters, params)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(views, total, params))
}

func parseInternshipFilters(c *gin.Context) services.InternshipFilters {
	filters := services.InternshipFilters{
		Department: c.Query("department"),
		WorkMode:   c.Query("work_mode"),
		Location:   c.Query("location"),
		Search:     c.Query("search"),
		Status:     models.InternshipStatus(c.Query("status")),
	}
	if skills := c.Query("skills"); skills != "" {
		for _, skill := range strings.Split(skills, ",") {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				filters.Skills = append(filters.Skills, trimmed)
			}
		}
	}
	filters.MinStipend, _ = strconv.Atoi(c.Query("min_stipend"))
	filters.MaxStipend, _ = strconv.Atoi(c.Query("max_stipend"))
	return filters
}

// Get handles GET /internships/:id
func (h *InternshipHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.internshipService.Get(optionalActor(c), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, view)
}

// Recommended handles GET /internships/recommended
func (h *InternshipHandler) Recommended(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	views, err := h.internshipService.Recommended(actor, limit)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, views)
}

// Create handles POST /internships (admin direct posting)
func (h *InternshipHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload", nil)
		return
	}

	internship, err := h.internshipService.CreateDirect(actor, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, internship)
}

// Submit handles POST /internships/submit (recruiter submission)
func (h *InternshipHandler) Submit(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload", nil)
		return
	}

	internship, err := h.internshipService.Submit(actor, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, internship)
}

// Update handles PUT /internships/:id
func (h *InternshipHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload", nil)
		return
	}

	internship, err := h.internshipService.Update(actor, id, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, internship)
}

// Delete handles DELETE /internships/:id
func (h *InternshipHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.internshipService.Delete(actor, id); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Internship deleted"})
}

// Approve handles POST /internships/:id/approve
func (h *InternshipHandler) Approve(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		AdminNotes string `json:"admin_notes"`
	}
	// Body is optional for approvals.
	c.ShouldBindJSON(&req)

	internship, err := h.internshipService.Approve(actor, id, req.AdminNotes)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, internship)
}

// Reject handles POST /internships/:id/reject
func (h *InternshipHandler) Reject(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.RejectInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload", nil)
		return
	}

	internship, err := h.internshipService.Reject(actor, id, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, internship)
}

// Deactivate handles POST /internships/:id/deactivate
func (h *InternshipHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

// Reactivate handles POST /internships/:id/reactivate
func (h *InternshipHandler) Reactivate(c *gin.Context) {
	h.setActive(c, true)
}

func (h *InternshipHandler) setActive(c *gin.Context, active bool) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	internship, err := h.internshipService.SetActive(actor, id, active)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, internship)
}
