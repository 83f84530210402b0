// internal/handlers/context.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campuscell/placement-backend/internal/models"
	"github.com/campuscell/placement-backend/internal/services"
	"github.com/campuscell/placement-backend/internal/utils"
)

// currentActor resolves the authenticated identity set by the auth
// middleware. Returns false when the request is unauthenticated or the
// claims are malformed.
func currentActor(c *gin.Context) (services.Actor, bool) {
	idStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		return services.Actor{}, false
	}
	roleStr, ok := utils.GetRoleFromContext(c)
	if !ok {
		return services.Actor{}, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return services.Actor{}, false
	}
	role := models.Role(roleStr)
	if !role.Valid() {
		return services.Actor{}, false
	}

	return services.Actor{ID: id, Role: role}, true
}

// optionalActor is currentActor for routes behind OptionalAuth; nil means
// anonymous.
func optionalActor(c *gin.Context) *services.Actor {
	actor, ok := currentActor(c)
	if !ok {
		return nil
	}
	return &actor
}

// parseIDParam reads a uuid path parameter; replies 400 and returns false
// on a malformed value.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
