// internal/services/actor.go
package services

import (
	"github.com/google/uuid"

	"github.com/campuscell/placement-backend/internal/models"
)

// Actor is the resolved identity a request acts as. Services re-check role
// and ownership against it even when the router already gated the route.
type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

func (a Actor) IsAdmin() bool     { return a.Role == models.RoleAdmin }
func (a Actor) IsStudent() bool   { return a.Role == models.RoleStudent }
func (a Actor) IsMentor() bool    { return a.Role == models.RoleMentor }
func (a Actor) IsRecruiter() bool { return a.Role == models.RoleRecruiter }
