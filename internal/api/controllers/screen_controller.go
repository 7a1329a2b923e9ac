package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelsurvey/internal/models/request_models"
	"travelsurvey/internal/services"
	"travelsurvey/pkg/middleware"
	"travelsurvey/pkg/utils"
)

type ScreenController struct {
	screenService services.ScreenServiceInterface
}

func NewScreenController(screenService services.ScreenServiceInterface) *ScreenController {
	return &ScreenController{
		screenService: screenService,
	}
}

// Home godoc
// @Summary Home screen
// @Tags Screens
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /screens/home [get]
func (s *ScreenController) Home(c *gin.Context) {
	view, err := s.screenService.Home(middleware.IdentityFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "")
}

// Profile godoc
// @Summary Profile screen
// @Tags Screens
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /screens/profile [get]
func (s *ScreenController) Profile(c *gin.Context) {
	utils.RespondSuccess(c, s.screenService.Profile(middleware.IdentityFrom(c)), "")
}

// Settings godoc
// @Summary Settings screen
// @Tags Screens
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /screens/settings [get]
func (s *ScreenController) Settings(c *gin.Context) {
	utils.RespondSuccess(c, s.screenService.Settings(middleware.IdentityFrom(c)), "")
}

// Results godoc
// @Summary Survey results screen
// @Description Render the result the screen was opened with; an empty body renders the empty state
// @Tags Screens
// @Accept json
// @Produce json
// @Param request body request_models.ResultsRequest false "Forwarded route params"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /screens/results [post]
func (s *ScreenController) Results(c *gin.Context) {
	var req request_models.ResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	utils.RespondSuccess(c, s.screenService.Results(middleware.IdentityFrom(c), req.Result), "")
}
