package controllers_fx

import (
	"go.uber.org/fx"

	"travelsurvey/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewNavigationController),
	fx.Provide(controllers.NewScreenController),
	fx.Provide(controllers.NewSurveyController),
	fx.Provide(controllers.NewNearbyController))
