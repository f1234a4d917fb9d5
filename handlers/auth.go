package handlers

import (
	"net/http"

	userService "jobmate/services/user"
	"jobmate/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration and sign-in endpoints.
type AuthHandler struct {
	Service userService.UserService
}

// NewAuthHandler creates an AuthHandler backed by the given service.
func NewAuthHandler(svc userService.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterHandler creates an account plus its role profile and returns a
// signed token.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input userService.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Register(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// SignInHandler verifies credentials and returns a signed token.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
