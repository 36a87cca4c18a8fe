package routing

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/compass/internal/models"
)

// Provider is an interface that defines a method for resolving a walking route between two points.
// The Route method takes a context, a start and an end point, and returns the route geometry in
// (lat, lon) order, or an error if the provider could not produce a usable route.
type Provider interface {
	Route(ctx context.Context, start, end models.GeoPoint) (models.RoutePath, error)
}

// Common errors shared by routing providers.
var (
	ErrNoRoute         = errors.New("routing API found no route")
	ErrInvalidGeometry = errors.New("routing API returned invalid geometry")
)
