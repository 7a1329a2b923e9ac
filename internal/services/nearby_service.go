package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"travelsurvey/internal/catalog"
	"travelsurvey/internal/geo"
	"travelsurvey/internal/metrics"
	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/models/request_models"
	"travelsurvey/internal/models/response_models"
	"travelsurvey/pkg/utils"
)

const (
	nearbyTitle       = "Nearby Destinations"
	unknownLocation   = "Unknown location"
	orderedByDistance = " (Ordered by Distance)"
)

type NearbyServiceInterface interface {
	Nearby(ctx context.Context, identity dm.IdentityContext, req request_models.NearbyRequest) (*response_models.NearbyScreenResponse, error)
	Render(ctx context.Context, identity dm.IdentityContext, travelType dm.TravelType, locator Locator) (*response_models.NearbyScreenResponse, error)
	Destinations(travelType dm.TravelType) []dm.Destination
}

type NearbyService struct {
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewNearbyService(m *metrics.Metrics, logger *zap.Logger) NearbyServiceInterface {
	return &NearbyService{
		metrics: m,
		logger:  logger,
	}
}

func (s *NearbyService) Nearby(ctx context.Context, identity dm.IdentityContext, req request_models.NearbyRequest) (*response_models.NearbyScreenResponse, error) {
	return s.Render(ctx, identity, req.TravelType, NewReportedLocator(req))
}

// Render acquires the position once and ranks the catalog from it. A failed
// acquisition is not an error: the view comes back with status "error", a
// banner and no destinations. Only a cancelled ctx returns an error, and then
// there is no view at all.
func (s *NearbyService) Render(ctx context.Context, identity dm.IdentityContext, travelType dm.TravelType, locator Locator) (*response_models.NearbyScreenResponse, error) {
	view := &response_models.NearbyScreenResponse{
		Header:        welcomeHeader(nearbyTitle, identity.OrGuest()),
		LocationLabel: unknownLocation,
		Title:         destinationsTitle(travelType),
		Destinations:  []response_models.RankedDestination{},
	}

	position, err := locator.Locate(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		view.Status = response_models.NearbyStatusError
		view.Banner = locationBanner(err)
		view.EmptyMessage = emptyMessage(travelType)
		s.metrics.NearbyRankings.WithLabelValues(view.Status).Inc()
		s.logger.Info("location unavailable",
			zap.Error(err),
			zap.String("trace_id", utils.TraceIDFromContext(ctx)),
		)
		return view, nil
	}

	ranked := geo.Rank(position, catalog.Destinations(), travelType)

	view.Status = response_models.NearbyStatusReady
	view.Location = &position
	view.LocationLabel = fmt.Sprintf("%.4f°, %.4f°", position.Latitude, position.Longitude)
	view.Title += orderedByDistance
	for _, r := range ranked {
		view.Destinations = append(view.Destinations, response_models.RankedDestination{
			RankedDestination: r,
			DistanceLabel:     fmt.Sprintf("%.0f km", r.DistanceKm),
		})
	}
	if len(view.Destinations) == 0 {
		view.EmptyMessage = emptyMessage(travelType)
	}

	s.metrics.NearbyRankings.WithLabelValues(view.Status).Inc()
	return view, nil
}

// Destinations lists the catalog in its own order, optionally filtered by
// exact travel type.
func (s *NearbyService) Destinations(travelType dm.TravelType) []dm.Destination {
	all := catalog.Destinations()
	if travelType == "" {
		return all
	}

	out := make([]dm.Destination, 0, len(all))
	for _, d := range all {
		if d.TravelType == travelType {
			out = append(out, d)
		}
	}
	return out
}

func destinationsTitle(travelType dm.TravelType) string {
	if travelType == "" {
		return "All Destinations"
	}
	return fmt.Sprintf("%s Destinations", travelType)
}

func emptyMessage(travelType dm.TravelType) string {
	if travelType == "" {
		return "No destinations found"
	}
	return fmt.Sprintf("No destinations found for %s travel type", travelType)
}

func locationBanner(err error) string {
	if errors.Is(err, utils.ErrPermissionDenied) {
		return "Location permission was denied"
	}
	return "Error getting location: " + err.Error()
}
