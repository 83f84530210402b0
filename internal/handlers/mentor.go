// internal/handlers/mentor.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/campuscell/placement-backend/internal/services"
	"github.com/campuscell/placement-backend/internal/utils"
)

type MentorHandler struct {
	userService *services.UserService
}

func NewMentorHandler(userService *services.UserService) *MentorHandler {
	return &MentorHandler{userService: userService}
}

// List handles GET /mentors
func (h *MentorHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	mentors, err := h.userService.ListMentors(actor)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, mentors)
}
