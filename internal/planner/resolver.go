package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/compass/internal/geo"
	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/UnknownOlympus/compass/internal/routing"
)

// DefaultFallbackResolution is the number of points sampled along a fallback curve.
const DefaultFallbackResolution = 64

// Resolver turns a pair of points into a walkable route. It asks the routing provider first
// and falls back to a locally generated curve when the provider fails, so it never returns an error.
type Resolver struct {
	log          *slog.Logger     // Logger for logging resolver activities
	provider     routing.Provider // Routing provider for external route services
	providerName string           // Name of the provider for metrics labeling
	metrics      *metrics.Metrics // Metrics for tracking resolver performance
	timeout      time.Duration    // Upper bound for a single provider call, 0 means none
	resolution   int              // Number of points in a fallback curve
}

// NewResolver creates a new instance of Resolver.
// A non-positive resolution selects DefaultFallbackResolution.
func NewResolver(
	log *slog.Logger,
	provider routing.Provider,
	providerName string,
	metrics *metrics.Metrics,
	timeout time.Duration,
	resolution int,
) *Resolver {
	const minResolution = 2

	if resolution < minResolution {
		resolution = DefaultFallbackResolution
	}

	return &Resolver{
		log:          log,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
		timeout:      timeout,
		resolution:   resolution,
	}
}

// Resolve returns a route from start to end. Provider failures of any kind are logged
// and replaced by a fallback curve; the route's Source tells the two apart.
func (r *Resolver) Resolve(ctx context.Context, start, end models.GeoPoint) models.Route {
	path, err := r.fetch(ctx, start, end)
	if err != nil {
		r.log.WarnContext(ctx, "Routing provider failed, using fallback curve",
			"provider", r.providerName, "start", start, "end", end, "error", err)
		r.metrics.APIErrors.Inc()
		r.metrics.RoutesResolved.WithLabelValues(string(models.RouteSourceFallback)).Inc()

		return models.Route{
			Path:   FallbackCurve(start, end, r.resolution),
			Source: models.RouteSourceFallback,
		}
	}

	r.metrics.RoutesResolved.WithLabelValues(string(models.RouteSourceService)).Inc()

	return models.Route{Path: path, Source: models.RouteSourceService}
}

// Plan resolves a route and computes its metrics once the path is complete.
func (r *Resolver) Plan(ctx context.Context, start, end models.GeoPoint) models.Plan {
	route := r.Resolve(ctx, start, end)
	pathMetrics := geo.ComputeMetrics(route.Path)
	r.metrics.RouteDistance.Observe(pathMetrics.DistanceMeters)

	r.log.DebugContext(ctx, "Route planned",
		"source", route.Source,
		"points", len(route.Path),
		"distance_m", pathMetrics.DistanceMeters,
		"eta_min", pathMetrics.ETAMinutes)

	return models.Plan{Route: route, PathMetrics: pathMetrics}
}

// fetch is the provider branch of Resolve: it either returns a usable path or an error.
func (r *Resolver) fetch(ctx context.Context, start, end models.GeoPoint) (models.RoutePath, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	startTime := time.Now()
	path, err := r.provider.Route(ctx, start, end)
	r.metrics.RequestSeconds.WithLabelValues(r.providerName).Observe(time.Since(startTime).Seconds())
	if err != nil {
		return nil, err
	}

	if len(path) == 0 {
		return nil, routing.ErrNoRoute
	}
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: %d point", routing.ErrInvalidGeometry, len(path))
	}

	return path, nil
}
