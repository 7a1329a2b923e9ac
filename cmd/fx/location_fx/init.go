package location_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelsurvey/internal/metrics"
	"travelsurvey/internal/services"
)

var Module = fx.Provide(provideNearbyService)

// provideNearbyService ranks from the position the device reports. IP
// geolocation is left to the nearby command: from here it would find the
// server.
func provideNearbyService(m *metrics.Metrics, logger *zap.Logger) services.NearbyServiceInterface {
	return services.NewNearbyService(m, logger.Named("nearby"))
}
