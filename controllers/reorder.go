// controllers/reorder.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sakecha-backend/models"
	"sakecha-backend/services"
	"sakecha-backend/utils"
)

type ReorderController struct {
	reorders *services.ReorderService
}

func NewReorderController(reorders *services.ReorderService) *ReorderController {
	return &ReorderController{reorders: reorders}
}

type RequestReorderInput struct {
	IngredientName string `json:"ingredientName" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
}

type UpdateReorderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

func (roc *ReorderController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var input RequestReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reorder, err := roc.reorders.Request(actor, input.IngredientName, input.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reorder)
}

func (roc *ReorderController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	owner := uuid.Nil
	if raw := c.Query("franchiseeId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid franchisee ID format")
			return
		}
		owner = parsed
	}

	reorders, err := roc.reorders.List(actor, owner)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reorders)
}

func (roc *ReorderController) UpdateStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateReorderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reorder, err := roc.reorders.UpdateStatus(actor, id, models.ReorderStatus(input.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reorder)
}

func (roc *ReorderController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := roc.reorders.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reorder request deleted successfully"})
}
