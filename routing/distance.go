package routing

import "math"

const (
	// earthRadiusM is the mean Earth radius used by the haversine formula.
	earthRadiusM = 6371000.0

	// walkingSpeedMS is the assumed walking speed (5 km/h).
	walkingSpeedMS = 1.39

	// Fixed interior edge costs. Vertical hops are not distance-derived:
	// stairs are weighted heavier than elevators.
	StairsCost           = 15.0
	ElevatorCost         = 5.0
	DefaultHallwayMeters = 10.0
)

// Haversine returns the great-circle distance in meters between two
// [latitude, longitude] coordinates in degrees.
func Haversine(a, b [2]float64) float64 {
	lat1 := a[0] * math.Pi / 180
	lon1 := a[1] * math.Pi / 180
	lat2 := b[0] * math.Pi / 180
	lon2 := b[1] * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return earthRadiusM * c
}

// WalkTimeMinutes estimates walking time for a distance in meters, clamped
// to a minimum of one minute for any positive distance.
func WalkTimeMinutes(meters float64) int {
	if meters <= 0 {
		return 0
	}
	minutes := int(meters / walkingSpeedMS / 60)
	if minutes < 1 {
		return 1
	}
	return minutes
}

// round1 rounds to one decimal place, the precision reported for distances.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
