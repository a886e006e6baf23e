package services

import (
	"github.com/google/uuid"

	"sakecha-backend/models"
)

// Actor is the authenticated identity a request runs as.
type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdministrator
}

// Authorize is the single access predicate applied before every gated
// operation. Administrators pass everything; everyone else needs the
// required role and, when owner is set, must own the resource.
// Failures are ErrUnauthorized and never reveal whether the resource exists.
func Authorize(actor Actor, required models.Role, owner uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	if required == models.RoleAdministrator {
		return ErrUnauthorized
	}
	if owner != uuid.Nil && actor.ID != owner {
		return ErrUnauthorized
	}
	return nil
}
