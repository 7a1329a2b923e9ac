package services

import (
	"context"
	"errors"

	"go.uber.org/mock/gomock"

	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/models/request_models"
	"travelsurvey/internal/models/response_models"
	"travelsurvey/pkg/utils"
)

var nearNewYork = dm.Coordinates{Latitude: 40.0, Longitude: -74.0}

func destinationNames(view *response_models.NearbyScreenResponse) []string {
	out := make([]string, 0, len(view.Destinations))
	for _, d := range view.Destinations {
		out = append(out, d.Name)
	}
	return out
}

func (s *ServiceSuite) TestNearby_Ready() {
	ctx := context.Background()

	s.Run("Given a reported position When nearby Then all destinations ordered by distance", func() {
		view, err := s.nearby.Nearby(ctx, ana, request_models.NearbyRequest{
			Permission: request_models.PermissionGranted,
			Position:   &nearNewYork,
		})
		s.Require().NoError(err)

		s.Equal(response_models.NearbyStatusReady, view.Status)
		s.Equal("All Destinations (Ordered by Distance)", view.Title)
		s.Equal("40.0000°, -74.0000°", view.LocationLabel)
		s.Equal(&nearNewYork, view.Location)
		s.Equal("Welcome, Ana", view.Header.Welcome)
		s.Empty(view.Banner)
		s.Empty(view.EmptyMessage)
		s.Equal([]string{"New York City", "Paris", "Rome", "Tokyo", "Bangkok", "Sydney"}, destinationNames(view))
		s.Equal("79 km", view.Destinations[0].DistanceLabel)
	})

	s.Run("Given a travel type When nearby Then only that type", func() {
		view, err := s.nearby.Nearby(ctx, ana, request_models.NearbyRequest{
			Permission: request_models.PermissionGranted,
			Position:   &nearNewYork,
			TravelType: dm.TravelFood,
		})
		s.Require().NoError(err)

		s.Equal("Food Destinations (Ordered by Distance)", view.Title)
		s.Equal([]string{"Tokyo", "Bangkok"}, destinationNames(view))
	})

	s.Run("Given a travel type with no destinations When nearby Then empty message", func() {
		view, err := s.nearby.Nearby(ctx, ana, request_models.NearbyRequest{
			Permission: request_models.PermissionGranted,
			Position:   &nearNewYork,
			TravelType: "Business",
		})
		s.Require().NoError(err)

		s.Equal(response_models.NearbyStatusReady, view.Status)
		s.NotNil(view.Destinations)
		s.Empty(view.Destinations)
		s.Equal("No destinations found for Business travel type", view.EmptyMessage)
	})

	s.Run("Given a locator When render Then ranked from its position", func() {
		s.mockLocator.EXPECT().Locate(gomock.Any()).Return(dm.Coordinates{Latitude: 48.85, Longitude: 2.35}, nil)

		view, err := s.nearby.Render(ctx, dm.IdentityContext{}, "", s.mockLocator)
		s.Require().NoError(err)

		s.Equal(response_models.NearbyStatusReady, view.Status)
		s.Equal("Paris", view.Destinations[0].Name)
		s.Equal("Welcome, Guest", view.Header.Welcome)
	})
}

func (s *ServiceSuite) TestNearby_LocationUnavailable() {
	ctx := context.Background()

	s.Run("Given permission denied When nearby Then banner and no destinations", func() {
		view, err := s.nearby.Nearby(ctx, ana, request_models.NearbyRequest{
			Permission: request_models.PermissionDenied,
			Position:   &nearNewYork,
			TravelType: dm.TravelFood,
		})
		s.Require().NoError(err)

		s.Equal(response_models.NearbyStatusError, view.Status)
		s.Equal("Location permission was denied", view.Banner)
		s.Equal("Food Destinations", view.Title)
		s.Equal("Unknown location", view.LocationLabel)
		s.Nil(view.Location)
		s.NotNil(view.Destinations)
		s.Empty(view.Destinations)
		s.Equal("No destinations found for Food travel type", view.EmptyMessage)
		s.Equal(1.0, s.counter(s.metrics.NearbyRankings.WithLabelValues(response_models.NearbyStatusError)))
	})

	s.Run("Given a device error When nearby Then error banner", func() {
		view, err := s.nearby.Nearby(ctx, ana, request_models.NearbyRequest{
			Permission:    request_models.PermissionGranted,
			PositionError: "Location request timed out",
		})
		s.Require().NoError(err)

		s.Equal(response_models.NearbyStatusError, view.Status)
		s.Equal("Error getting location: Location request timed out", view.Banner)
		s.Equal("All Destinations", view.Title)
	})

	s.Run("Given the locator fails When render Then error banner", func() {
		s.mockLocator.EXPECT().Locate(gomock.Any()).Return(dm.Coordinates{}, errors.New("lookup failed"))

		view, err := s.nearby.Render(ctx, ana, "", s.mockLocator)
		s.Require().NoError(err)
		s.Equal("Error getting location: lookup failed", view.Banner)
	})

	s.Run("Given permission granted without a position When nearby Then position unavailable", func() {
		view, err := s.nearby.Nearby(ctx, ana, request_models.NearbyRequest{
			Permission: request_models.PermissionGranted,
		})
		s.Require().NoError(err)

		s.Equal(response_models.NearbyStatusError, view.Status)
		s.Equal("Error getting location: "+utils.ErrPositionUnavailable.Error(), view.Banner)
		s.Nil(view.Location)
	})
}

func (s *ServiceSuite) TestNearby_Cancelled() {
	s.Run("Given a dismissed screen When the lookup returns Then no view", func() {
		ctx, cancel := context.WithCancel(context.Background())
		s.mockLocator.EXPECT().Locate(gomock.Any()).DoAndReturn(func(context.Context) (dm.Coordinates, error) {
			cancel()
			return nearNewYork, nil
		})

		view, err := s.nearby.Render(ctx, ana, "", s.mockLocator)
		s.Nil(view)
		s.ErrorIs(err, context.Canceled)
	})
}

func (s *ServiceSuite) TestDestinations() {
	s.Len(s.nearby.Destinations(""), 6)
	s.Equal([]dm.Destination{
		{Name: "New York City", Country: dm.CountryUSA, TravelType: dm.TravelCultural, Coordinates: dm.Coordinates{Latitude: 40.7128, Longitude: -74.006}},
		{Name: "Rome", Country: dm.CountryItaly, TravelType: dm.TravelCultural, Coordinates: dm.Coordinates{Latitude: 41.9028, Longitude: 12.4964}},
	}, s.nearby.Destinations(dm.TravelCultural))
	s.Empty(s.nearby.Destinations("Business"))
}
