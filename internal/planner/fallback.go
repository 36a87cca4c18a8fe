package planner

import (
	"math"

	"github.com/UnknownOlympus/compass/internal/geo"
	"github.com/UnknownOlympus/compass/internal/models"
)

// fallbackBow is the sideways offset of the curve's middle control point, relative to the chord length.
const fallbackBow = 0.2

// FallbackCurve builds a smooth curve of n points from start to end. It bears no relation to
// walkable surfaces; it only keeps a plausible path on screen when routing is unavailable.
//
// The curve runs through a control point pushed sideways from the chord midpoint, so it is
// never a straight line for distinct endpoints. Endpoints are exact. Identical endpoints
// yield a two-point path.
func FallbackCurve(start, end models.GeoPoint, n int) models.RoutePath {
	if start == end {
		return models.RoutePath{start, end}
	}

	dLon := end.Longitude - start.Longitude
	dLat := end.Latitude - start.Latitude
	chord := math.Hypot(dLon, dLat)

	// Unit normal to the chord, scaled by the bow.
	offset := fallbackBow * chord
	midLat := start.Latitude + dLat/2
	midLon := start.Longitude + dLon/2
	control := models.GeoPoint{
		Latitude:  midLat + dLon/chord*offset,
		Longitude: midLon - dLat/chord*offset,
	}

	return geo.BezierSpline([]models.GeoPoint{start, control, end}, n, geo.DefaultSharpness)
}
