package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelsurvey/internal/models/request_models"
	"travelsurvey/internal/services"
	"travelsurvey/pkg/middleware"
	"travelsurvey/pkg/utils"
)

type SurveyController struct {
	surveyService services.SurveyServiceInterface
}

func NewSurveyController(surveyService services.SurveyServiceInterface) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
	}
}

// Form godoc
// @Summary Survey form
// @Description The blank survey with its options and the name prefilled
// @Tags Survey
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /screens/survey [get]
func (s *SurveyController) Form(c *gin.Context) {
	utils.RespondSuccess(c, s.surveyService.Form(middleware.IdentityFrom(c)), "")
}

// Submit godoc
// @Summary Submit the survey
// @Description Validate the survey, look up a recommendation and return the params for the results and nearby screens
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body request_models.SurveyRequest true "Survey payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /survey [post]
func (s *SurveyController) Submit(c *gin.Context) {
	var req request_models.SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := s.surveyService.Submit(c.Request.Context(), middleware.IdentityFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Survey submitted successfully")
}
