package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/models/request_models"
	"travelsurvey/internal/services"
	"travelsurvey/pkg/middleware"
	"travelsurvey/pkg/utils"
)

type NearbyController struct {
	nearbyService services.NearbyServiceInterface
}

func NewNearbyController(nearbyService services.NearbyServiceInterface) *NearbyController {
	return &NearbyController{
		nearbyService: nearbyService,
	}
}

// Nearby godoc
// @Summary Nearby destinations screen
// @Description Rank the destinations by distance from the reported position. A denied or failed location comes back as a view with status "error"
// @Tags Nearby
// @Accept json
// @Produce json
// @Param request body request_models.NearbyRequest true "Location outcome and forwarded travel type"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /screens/nearby [post]
func (n *NearbyController) Nearby(c *gin.Context) {
	var req request_models.NearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	view, err := n.nearbyService.Nearby(c.Request.Context(), middleware.IdentityFrom(c), req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// the client went away; there is nobody to render for
			c.Abort()
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "")
}

// Destinations godoc
// @Summary Destination catalog
// @Tags Nearby
// @Produce json
// @Param travelType query string false "Exact travel type filter"
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (n *NearbyController) Destinations(c *gin.Context) {
	travelType := dm.TravelType(c.Query("travelType"))
	utils.RespondSuccess(c, n.nearbyService.Destinations(travelType), "Destinations fetched successfully")
}
