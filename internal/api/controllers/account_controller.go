package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelsurvey/internal/models/request_models"
	"travelsurvey/internal/services"
	"travelsurvey/pkg/middleware"
	"travelsurvey/pkg/utils"
)

type AccountController struct {
	loginService services.LoginServiceInterface
}

func NewAccountController(loginService services.LoginServiceInterface) *AccountController {
	return &AccountController{
		loginService: loginService,
	}
}

// Login godoc
// @Summary Sign in
// @Description Validate the login form and return a session token carrying the identity
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.loginService.Login(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// Logout godoc
// @Summary Sign out
// @Description Revoke the presented session token
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	if err := a.loginService.Logout(claims); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out")
}
