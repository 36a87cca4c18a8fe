package models

// FacilityType is the category of a monitored campus facility.
type FacilityType string

const (
	FacilityLibrary FacilityType = "library"
	FacilityCanteen FacilityType = "canteen"
	FacilityExpress FacilityType = "express"
)

// Facility is a campus location whose occupancy is monitored.
type Facility struct {
	ID       string       `json:"id"`
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	Type     FacilityType `json:"type"`
	MaxCount int          `json:"maxCount"`
	Location GeoPoint     `json:"location"`
}

// NearbyFacility is a facility annotated with its distance from a query point.
type NearbyFacility struct {
	Facility
	DistanceMeters float64 `json:"distance"`
}

// OccupancyReading is a single count sample for a facility.
type OccupancyReading struct {
	FacilityID   string `json:"facilityId"`
	CurrentCount int    `json:"currentCount"`
	MaxCount     int    `json:"maxCount"`
}
