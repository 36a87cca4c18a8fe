package geo

import (
	"math"

	"github.com/UnknownOlympus/compass/internal/models"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371008.8

// Haversine calculates the great-circle distance in meters between two points.
func Haversine(from, to models.GeoPoint) float64 {
	dLat := toRad(to.Latitude - from.Latitude)
	dLon := toRad(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(from.Latitude))*math.Cos(toRad(to.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
