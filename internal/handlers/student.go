// internal/handlers/student.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscell/placement-backend/internal/models"
	"github.com/campuscell/placement-backend/internal/services"
	"github.com/campuscell/placement-backend/internal/utils"
)

type StudentHandler struct {
	userService *services.UserService
}

func NewStudentHandler(userService *services.UserService) *StudentHandler {
	return &StudentHandler{userService: userService}
}

// List handles GET /students
func (h *StudentHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	params := utils.GetPaginationParams(c)

	minCGPA, _ := strconv.ParseFloat(c.Query("min_cgpa"), 64)
	filters := services.StudentFilters{
		Department:      c.Query("department"),
		PlacementStatus: models.PlacementStatus(c.Query("placement_status")),
		MinCGPA:         minCGPA,
		Skill:           c.Query("skill"),
		Search:          c.Query("search"),
	}

	students, total, err := h.userService.ListStudents(actor, filters, params)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(students, total, params))
}

// Get handles GET /students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	student, err := h.userService.GetStudent(actor, id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, student)
}

// Update handles PUT /students/:id (admin edits a student record)
func (h *StudentHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload", nil)
		return
	}

	student, err := h.userService.UpdateProfile(actor, id, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, student)
}

// SetPlacement handles PUT /students/:id/placement
func (h *StudentHandler) SetPlacement(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.SetPlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload", nil)
		return
	}

	student, err := h.userService.SetPlacement(actor, id, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, student)
}
