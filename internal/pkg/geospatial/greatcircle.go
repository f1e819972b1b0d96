package geospatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/fhausmann/track2route/internal/core/domain"
)

const earthRadiusKm = 6371.0

// GreatCircleDistance returns the great-circle distance in meters
// between two coordinates.
func GreatCircleDistance(a, b domain.Coordinate) float64 {
	p := s2.LatLngFromDegrees(a.Lat, a.Lon)
	q := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p.Distance(q).Radians() * earthRadiusKm * 1000
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
