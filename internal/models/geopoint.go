package models

// GeoPoint represents a geographical point defined by its latitude and longitude in degrees.
// Values are taken as-is; no range normalization is applied.
type GeoPoint struct {
	Latitude  float64 `json:"lat"` // Latitude of the geographical point.
	Longitude float64 `json:"lng"` // Longitude of the geographical point.
}

// LonLat returns the point as a [lon, lat] pair, the order used by GeoJSON and OSRM.
func (p GeoPoint) LonLat() [2]float64 { return [2]float64{p.Longitude, p.Latitude} }

// FromLonLat builds a GeoPoint from a [lon, lat] pair.
func FromLonLat(lon, lat float64) GeoPoint { return GeoPoint{Latitude: lat, Longitude: lon} }
