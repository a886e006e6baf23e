// controllers/auth.go
package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"sakecha-backend/services"
	"sakecha-backend/utils"
)

// secureCookies defaults to on; COOKIE_SECURE=false allows plain-HTTP
// local setups to keep the session cookie.
func secureCookies() bool {
	return os.Getenv("COOKIE_SECURE") != "false"
}

type AuthController struct {
	franchisees *services.FranchiseeService
}

func NewAuthController(franchisees *services.FranchiseeService) *AuthController {
	return &AuthController{franchisees: franchisees}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	franchisee, err := ac.franchisees.Register(input.Username, input.Password, input.Name, input.Location)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user": gin.H{
			"id":       franchisee.ID,
			"username": franchisee.Username,
			"name":     franchisee.Name,
			"location": franchisee.Location,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	franchisee, err := ac.franchisees.Authenticate(input.Username, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := utils.GenerateToken(franchisee.ID.String(), string(franchisee.Role))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	maxAge := utils.TokenExpiryHours() * 3600
	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		secureCookies(),
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       franchisee.ID,
			"username": franchisee.Username,
			"name":     franchisee.Name,
			"location": franchisee.Location,
			"role":     franchisee.Role,
		},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", secureCookies(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	franchisee, err := ac.franchisees.Get(actor, actor.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       franchisee.ID,
			"username": franchisee.Username,
			"name":     franchisee.Name,
			"location": franchisee.Location,
			"role":     franchisee.Role,
		},
	})
}
