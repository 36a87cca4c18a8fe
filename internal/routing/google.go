package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/compass/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider resolves walking routes with the Google Maps Directions API.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with no routes.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// NewGoogleProvider initializes a new GoogleProvider with the given client and logger.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Route asks the Directions API for a walking route and decodes the overview polyline of the first result.
func (gp *GoogleProvider) Route(ctx context.Context, start, end models.GeoPoint) (models.RoutePath, error) {
	gp.log.DebugContext(ctx, "Routing using Google Maps", "start", start, "end", end)

	req := maps.DirectionsRequest{
		Origin:      latLng(start),
		Destination: latLng(end),
		Mode:        maps.TravelModeWalking,
	}
	routes, _, err := gp.client.Directions(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to request directions: %w", err)
	}

	if len(routes) == 0 {
		return nil, ErrEmptyResponse
	}

	points, err := routes[0].OverviewPolyline.Decode()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: empty polyline", ErrInvalidGeometry)
	}

	path := make(models.RoutePath, 0, len(points))
	for _, p := range points {
		path = append(path, models.GeoPoint{Latitude: p.Lat, Longitude: p.Lng})
	}

	return path, nil
}

func latLng(p models.GeoPoint) string {
	return fmt.Sprintf("%f,%f", p.Latitude, p.Longitude)
}
