package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/navigation"
	"travelsurvey/pkg/middleware"
	"travelsurvey/pkg/utils"
)

type NavigationController struct{}

func NewNavigationController() *NavigationController {
	return &NavigationController{}
}

// Tree godoc
// @Summary Mounted navigation tree
// @Description The screen tree with the caller's identity in the initial params of every route
// @Tags Navigation
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /navigation [get]
func (n *NavigationController) Tree(c *gin.Context) {
	utils.RespondSuccess(c, navigation.Mount(middleware.IdentityFrom(c)), "Navigation tree fetched successfully")
}

// Resolve godoc
// @Summary Resolve one route
// @Description Return a route and the params it opens with
// @Tags Navigation
// @Produce json
// @Param path query string true "Slash separated route path, e.g. DrawerNavigator/Home/TabNavigator/Nearby"
// @Param travelType query string false "Travel type to forward"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /navigation/resolve [get]
func (n *NavigationController) Resolve(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		utils.RespondError(c, http.StatusBadRequest, "Route path is required")
		return
	}

	var opts []navigation.Option
	if travelType := c.Query("travelType"); travelType != "" {
		opts = append(opts, navigation.WithTravelType(dm.TravelType(travelType)))
	}

	route, err := navigation.Navigate(middleware.IdentityFrom(c), path, opts...)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route resolved successfully")
}
