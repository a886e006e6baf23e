package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sakecha-backend/models"
	"sakecha-backend/services"
	"sakecha-backend/utils"
)

// currentActor resolves the acting identity from the claims the auth
// middleware stored on the context.
func currentActor(c *gin.Context) (services.Actor, bool) {
	rawID, exists := c.Get("franchiseeId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Identity not found in context")
		return services.Actor{}, false
	}
	idStr, ok := rawID.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid identity claim")
		return services.Actor{}, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid identity claim")
		return services.Actor{}, false
	}

	role := models.RoleFranchisee
	if rawRole, exists := c.Get("role"); exists {
		if roleStr, ok := rawRole.(string); ok && models.Role(roleStr).Valid() {
			role = models.Role(roleStr)
		}
	}

	return services.Actor{ID: id, Role: role}, true
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Unrecognized errors are storage failures: generic message, no internals.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reorder status")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, services.ErrUnauthorized):
		utils.RespondWithError(c, http.StatusForbidden, "You do not have permission to perform this action")
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrDuplicateHandle):
		utils.RespondWithError(c, http.StatusConflict, "Username already registered")
	case errors.Is(err, services.ErrDuplicateReport):
		utils.RespondWithError(c, http.StatusConflict, "A report for this date already exists")
	case errors.Is(err, services.ErrRenderingUnavailable):
		utils.RespondWithError(c, http.StatusServiceUnavailable, "PDF export is currently unavailable")
	case errors.Is(err, services.ErrRenderingFailed):
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate PDF")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
