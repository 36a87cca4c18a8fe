package models

import "time"

// RoutePath is an ordered, non-empty sequence of points from the requested start to the requested end.
// A path is never mutated after it is produced.
type RoutePath []GeoPoint

// RouteSource tells where a route's geometry came from.
type RouteSource string

const (
	// RouteSourceService marks geometry returned by the external routing provider.
	RouteSourceService RouteSource = "service"
	// RouteSourceFallback marks a locally generated curve used when the provider failed.
	RouteSourceFallback RouteSource = "fallback"
	// RouteSourceClient marks geometry supplied by the caller when saving a route.
	RouteSourceClient RouteSource = "client"
)

// Route is a resolved path together with its provenance.
type Route struct {
	Path   RoutePath   `json:"points"`
	Source RouteSource `json:"source"`
}

// PathMetrics holds the derived length and walking time of a path.
type PathMetrics struct {
	DistanceMeters float64 `json:"distance"`      // Total great-circle length in meters.
	ETAMinutes     float64 `json:"estimatedTime"` // Estimated walking time in minutes.
}

// Plan is a resolved route with its metrics.
type Plan struct {
	Route
	PathMetrics
}

// SavedRoute is a planned route stored for later reuse.
type SavedRoute struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      string      `json:"type"` // Travel type, e.g. "walking".
	Start     GeoPoint    `json:"start"`
	End       GeoPoint    `json:"end"`
	Path      RoutePath   `json:"points"`
	Source    RouteSource `json:"source"`
	Metrics   PathMetrics `json:"metrics"`
	CreatedAt time.Time   `json:"createdAt"`
}
