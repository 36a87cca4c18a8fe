package geo

import "github.com/UnknownOlympus/compass/internal/models"

// WalkingSpeed is the assumed walking speed in meters per second.
const WalkingSpeed = 1.2

// PathDistance sums the great-circle lengths of consecutive segments of path.
// Paths with fewer than two points have zero length.
func PathDistance(path models.RoutePath) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += Haversine(path[i-1], path[i])
	}

	return total
}

const secondsPerMinute = 60

// ETAMinutes converts a walking distance in meters to minutes at WalkingSpeed.
func ETAMinutes(distanceMeters float64) float64 {
	return distanceMeters / (WalkingSpeed * secondsPerMinute)
}

// ComputeMetrics returns the length and walking time of path. The result is not rounded.
func ComputeMetrics(path models.RoutePath) models.PathMetrics {
	distance := PathDistance(path)

	return models.PathMetrics{
		DistanceMeters: distance,
		ETAMinutes:     ETAMinutes(distance),
	}
}
