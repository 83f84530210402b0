// internal/handlers/recruiter.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/campuscell/placement-backend/internal/services"
	"github.com/campuscell/placement-backend/internal/utils"
)

type RecruiterHandler struct {
	internshipService *services.InternshipService
}

func NewRecruiterHandler(internshipService *services.InternshipService) *RecruiterHandler {
	return &RecruiterHandler{internshipService: internshipService}
}

// Internships handles GET /recruiters/internships (own postings with applicants)
func (h *RecruiterHandler) Internships(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	internships, err := h.internshipService.ListForRecruiter(actor)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, internships)
}
