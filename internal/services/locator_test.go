package services

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelsurvey/internal/infra"
	"travelsurvey/internal/metrics"
	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/models/request_models"
	"travelsurvey/pkg/utils"
)

func TestReportedLocator(t *testing.T) {
	ctx := context.Background()
	position := dm.Coordinates{Latitude: 1, Longitude: 2}

	t.Run("denied wins over a position", func(t *testing.T) {
		_, err := ReportedLocator{Permission: request_models.PermissionDenied, Position: &position}.Locate(ctx)
		assert.ErrorIs(t, err, utils.ErrPermissionDenied)
	})

	t.Run("device error", func(t *testing.T) {
		_, err := ReportedLocator{Permission: request_models.PermissionGranted, PositionError: "GPS off"}.Locate(ctx)
		assert.EqualError(t, err, "GPS off")
	})

	t.Run("reported position", func(t *testing.T) {
		got, err := ReportedLocator{Permission: request_models.PermissionGranted, Position: &position}.Locate(ctx)
		require.NoError(t, err)
		assert.Equal(t, position, got)
	})

	t.Run("nothing reported", func(t *testing.T) {
		_, err := ReportedLocator{Permission: request_models.PermissionGranted}.Locate(ctx)
		assert.ErrorIs(t, err, utils.ErrPositionUnavailable)
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := ReportedLocator{Permission: request_models.PermissionGranted, Position: &position}.Locate(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

type stubLookup struct {
	loc *infra.IPLocation
	err error
}

func (s stubLookup) Lookup(context.Context) (*infra.IPLocation, error) {
	return s.loc, s.err
}

func TestIPLocator(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	t.Run("maps the lookup to coordinates", func(t *testing.T) {
		l := &IPLocator{client: stubLookup{loc: &infra.IPLocation{Latitude: 52.37, Longitude: 4.89}}, metrics: m}
		got, err := l.Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dm.Coordinates{Latitude: 52.37, Longitude: 4.89}, got)
	})

	t.Run("passes errors through", func(t *testing.T) {
		l := &IPLocator{client: stubLookup{err: errors.New("down")}, metrics: m}
		_, err := l.Locate(context.Background())
		assert.EqualError(t, err, "down")
	})

	assert.Equal(t, 2, testutil.CollectAndCount(m.LocationLookups))
}
