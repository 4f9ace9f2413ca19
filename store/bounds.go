package store

import "math"

// kmPerDegree is the approximate ground distance of one degree of latitude.
const kmPerDegree = 111.0

// Bounds is the rectangular coordinate box every building and intersection
// must fall inside.
type Bounds struct {
	South float64
	West  float64
	North float64
	East  float64
}

// NewBounds derives the box from a center coordinate and a square side
// length in kilometers. Longitude degrees shrink with latitude, so the
// east-west offset is widened by cos(latitude).
func NewBounds(center [2]float64, sideKm float64) Bounds {
	lat, lon := center[0], center[1]
	latOffset := sideKm / 2 / kmPerDegree
	lonOffset := sideKm / 2 / (kmPerDegree * math.Cos(lat*math.Pi/180))
	return Bounds{
		South: lat - latOffset,
		West:  lon - lonOffset,
		North: lat + latOffset,
		East:  lon + lonOffset,
	}
}

func (b Bounds) Contains(lat, lon float64) bool {
	return b.South <= lat && lat <= b.North && b.West <= lon && lon <= b.East
}
