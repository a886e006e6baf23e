// controllers/franchisee.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sakecha-backend/models"
	"sakecha-backend/services"
	"sakecha-backend/utils"
)

// FranchiseeController is the administrative account-management surface.
type FranchiseeController struct {
	franchisees *services.FranchiseeService
}

func NewFranchiseeController(franchisees *services.FranchiseeService) *FranchiseeController {
	return &FranchiseeController{franchisees: franchisees}
}

type CreateFranchiseeInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type UpdateFranchiseeInput struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (fc *FranchiseeController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	franchisees, err := fc.franchisees.List(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, franchisees)
}

func (fc *FranchiseeController) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	franchisee, err := fc.franchisees.Get(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, franchisee)
}

func (fc *FranchiseeController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var input CreateFranchiseeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	franchisee, err := fc.franchisees.Create(actor, input.Username, input.Password,
		input.Name, input.Location, input.Phone, models.Role(input.Role))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, franchisee)
}

func (fc *FranchiseeController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateFranchiseeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svcInput := services.UpdateFranchiseeInput{
		Name:     input.Name,
		Location: input.Location,
		Phone:    input.Phone,
		Password: input.Password,
	}
	if input.Role != nil {
		role := models.Role(*input.Role)
		svcInput.Role = &role
	}

	franchisee, err := fc.franchisees.Update(actor, id, svcInput)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, franchisee)
}

func (fc *FranchiseeController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := fc.franchisees.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Franchisee deleted successfully"})
}
