package survey_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelsurvey/internal/metrics"
	"travelsurvey/internal/services"
	"travelsurvey/pkg/utils"
)

var Module = fx.Provide(
	provideSurveyService,
	provideScreenService)

func provideSurveyService(clock utils.Clock, m *metrics.Metrics, logger *zap.Logger) services.SurveyServiceInterface {
	return services.NewSurveyService(clock, m, logger.Named("survey"))
}

func provideScreenService(clock utils.Clock) services.ScreenServiceInterface {
	return services.NewScreenService(clock)
}
