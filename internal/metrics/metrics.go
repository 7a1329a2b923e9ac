package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the app.
type Metrics struct {
	LoginAttempts     *prometheus.CounterVec
	Logouts           prometheus.Counter
	SurveySubmissions *prometheus.CounterVec
	NearbyRankings    *prometheus.CounterVec
	LocationLookups   *prometheus.HistogramVec
	EndpointLatency   *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "travelsurvey_login_attempts_total",
			Help: "Login attempts, labeled by outcome",
		}, []string{"outcome"}),
		Logouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "travelsurvey_logouts_total",
			Help: "Session tokens revoked through logout",
		}),
		SurveySubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "travelsurvey_survey_submissions_total",
			Help: "Accepted survey submissions, labeled by travel type",
		}, []string{"travel_type"}),
		NearbyRankings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "travelsurvey_nearby_rankings_total",
			Help: "Nearby screen renders, labeled by status",
		}, []string{"status"}),
		LocationLookups: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travelsurvey_location_lookup_seconds",
			Help:    "Latency of IP based position lookups",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travelsurvey_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

// RegisterRevokedTokens exposes the size of the logout denylist, read from
// size at scrape time.
func RegisterRevokedTokens(reg prometheus.Registerer, size func() int) prometheus.GaugeFunc {
	return promauto.With(reg).NewGaugeFunc(prometheus.GaugeOpts{
		Name: "travelsurvey_revoked_tokens",
		Help: "Logged out tokens still inside their lifetime",
	}, func() float64 {
		return float64(size())
	})
}

// ObserveEndpoint records how long a request to endpoint took.
func (m *Metrics) ObserveEndpoint(endpoint string, d time.Duration) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(d.Seconds())
}
