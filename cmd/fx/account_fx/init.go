package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelsurvey/internal/config"
	"travelsurvey/internal/metrics"
	"travelsurvey/internal/services"
	mem "travelsurvey/pkg/memcache"
	"travelsurvey/pkg/utils"
)

var Module = fx.Provide(
	provideLoginService, provideTokenIssuer)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL)
}

func provideLoginService(tokens *utils.TokenIssuer, revoked mem.RevokedTokenStore, m *metrics.Metrics, logger *zap.Logger) services.LoginServiceInterface {
	return services.NewLoginService(tokens, revoked, m, logger.Named("login"))
}
