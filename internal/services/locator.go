package services

import (
	"context"
	"errors"
	"time"

	"travelsurvey/internal/infra"
	"travelsurvey/internal/metrics"
	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/models/request_models"
	"travelsurvey/pkg/utils"
)

// Locator acquires the device's current position. Any error it returns means
// the position is unavailable for this render; callers do not retry.
type Locator interface {
	Locate(ctx context.Context) (dm.Coordinates, error)
}

// ReportedLocator replays the outcome of the device's own location prompt.
// The server never looks a position up on the device's behalf: a granted
// permission without a position is unavailable.
type ReportedLocator struct {
	Permission    string
	Position      *dm.Coordinates
	PositionError string
}

func NewReportedLocator(req request_models.NearbyRequest) ReportedLocator {
	return ReportedLocator{
		Permission:    req.Permission,
		Position:      req.Position,
		PositionError: req.PositionError,
	}
}

func (l ReportedLocator) Locate(ctx context.Context) (dm.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return dm.Coordinates{}, err
	}

	switch {
	case l.Permission != request_models.PermissionGranted:
		return dm.Coordinates{}, utils.ErrPermissionDenied
	case l.PositionError != "":
		return dm.Coordinates{}, errors.New(l.PositionError)
	case l.Position != nil:
		return *l.Position, nil
	default:
		return dm.Coordinates{}, utils.ErrPositionUnavailable
	}
}

type locationLookup interface {
	Lookup(ctx context.Context) (*infra.IPLocation, error)
}

// IPLocator approximates the position of the machine this process runs on
// from its own public IP. It suits the nearby command, where that machine is
// the user's; behind the HTTP server it would locate the server.
type IPLocator struct {
	client  locationLookup
	metrics *metrics.Metrics
}

func NewIPLocator(client *infra.LocationClient, m *metrics.Metrics) *IPLocator {
	return &IPLocator{client: client, metrics: m}
}

func (l *IPLocator) Locate(ctx context.Context) (dm.Coordinates, error) {
	start := time.Now()
	loc, err := l.client.Lookup(ctx)
	if l.metrics != nil {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		l.metrics.LocationLookups.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return dm.Coordinates{}, err
	}
	return dm.Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude}, nil
}
