package geo

import (
	"cmp"
	"slices"

	"github.com/UnknownOlympus/compass/internal/models"
)

// DefaultSearchRadius is the radius used for nearby lookups when the caller gives none.
const DefaultSearchRadius = 1000.0

// Nearby returns the facilities within maxDistance meters of origin, closest first.
// Facilities at equal distance keep their input order.
func Nearby(facilities []models.Facility, origin models.GeoPoint, maxDistance float64) []models.NearbyFacility {
	found := []models.NearbyFacility{}
	for _, f := range facilities {
		d := Haversine(origin, f.Location)
		if d <= maxDistance {
			found = append(found, models.NearbyFacility{Facility: f, DistanceMeters: d})
		}
	}

	slices.SortStableFunc(found, func(a, b models.NearbyFacility) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})

	return found
}
