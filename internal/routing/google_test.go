package routing_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/UnknownOlympus/compass/internal/routing"
	"github.com/UnknownOlympus/compass/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestGoogleProvider_Route(t *testing.T) {
	mockClient := mocks.NewGoogleAPIClient(t)
	provider := routing.NewGoogleProvider(mockClient, slog.Default())
	ctx := t.Context()
	start := models.GeoPoint{Latitude: 39.9062, Longitude: 116.4084}
	end := models.GeoPoint{Latitude: 39.9072, Longitude: 116.4094}
	req := &maps.DirectionsRequest{
		Origin:      "39.906200,116.408400",
		Destination: "39.907200,116.409400",
		Mode:        maps.TravelModeWalking,
	}

	t.Run("api returns error", func(t *testing.T) {
		mockClient.On("Directions", ctx, req).Return(nil, nil, assert.AnError).Once()

		path, err := provider.Route(ctx, start, end)

		require.ErrorIs(t, err, assert.AnError)
		require.Nil(t, path)
		mockClient.AssertExpectations(t)
	})

	t.Run("api returns empty response", func(t *testing.T) {
		mockClient.On("Directions", ctx, req).Return(nil, nil, nil).Once()

		path, err := provider.Route(ctx, start, end)

		require.Nil(t, path)
		require.ErrorIs(t, err, routing.ErrEmptyResponse)
		mockClient.AssertExpectations(t)
	})

	t.Run("api returns empty polyline", func(t *testing.T) {
		mockClient.On("Directions", ctx, req).Return([]maps.Route{{}}, nil, nil).Once()

		path, err := provider.Route(ctx, start, end)

		require.Nil(t, path)
		require.ErrorIs(t, err, routing.ErrInvalidGeometry)
		mockClient.AssertExpectations(t)
	})

	t.Run("successful routing", func(t *testing.T) {
		encoded := maps.Encode([]maps.LatLng{
			{Lat: 39.9062, Lng: 116.4084},
			{Lat: 39.9067, Lng: 116.4088},
			{Lat: 39.9072, Lng: 116.4094},
		})
		routes := []maps.Route{{OverviewPolyline: maps.Polyline{Points: encoded}}}

		mockClient.On("Directions", ctx, req).Return(routes, nil, nil).Once()

		path, err := provider.Route(ctx, start, end)

		require.NoError(t, err)
		require.Len(t, path, 3)
		assert.InDelta(t, 39.9062, path[0].Latitude, 1e-5)
		assert.InDelta(t, 116.4084, path[0].Longitude, 1e-5)
		assert.InDelta(t, 39.9072, path[2].Latitude, 1e-5)
		assert.InDelta(t, 116.4094, path[2].Longitude, 1e-5)
		mockClient.AssertExpectations(t)
	})
}
