package memcache_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"travelsurvey/internal/metrics"
	mem "travelsurvey/pkg/memcache"
)

var Module = fx.Provide(provideRevokedTokens)

func provideRevokedTokens(reg *prometheus.Registry) mem.RevokedTokenStore {
	store := mem.NewRevokedTokens()
	metrics.RegisterRevokedTokens(reg, store.Len)
	return store
}
