package geospatial

import (
	"math"

	"github.com/fhausmann/track2route/internal/core/domain"
)

// metersPerDegree is the length of one degree of latitude. A degree of
// longitude shrinks with the cosine of the latitude.
const metersPerDegree = 111320.0

// Simplifier implements ports.Simplifier using Ramer-Douglas-Peucker:
// every point that stays within the tolerance of the line between its
// surviving neighbors is dropped.
type Simplifier struct{}

// Simplify thins the points with the given tolerance in meters. The
// first and last point always survive; inputs of two or fewer points
// come back unchanged.
func (Simplifier) Simplify(points []domain.TrackPoint, maxDistance float64) []domain.TrackPoint {
	if len(points) <= 2 {
		return points
	}

	// Deviations are measured on a local plane anchored at the first
	// point, in meters.
	proj := make([]planePoint, len(points))
	lonScale := metersPerDegree * math.Cos(toRad(points[0].Lat))
	for i, p := range points {
		proj[i] = planePoint{
			x: (p.Lon - points[0].Lon) * lonScale,
			y: (p.Lat - points[0].Lat) * metersPerDegree,
		}
	}

	keep := make([]bool, len(points))
	keep[0], keep[len(points)-1] = true, true
	douglasPeucker(proj, 0, len(points)-1, maxDistance, keep)

	out := make([]domain.TrackPoint, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

type planePoint struct {
	x, y float64
}

// douglasPeucker marks the points of proj[start..end] that must stay:
// the point farthest from the start-end chord splits the range when it
// deviates more than tol.
func douglasPeucker(proj []planePoint, start, end int, tol float64, keep []bool) {
	if end-start < 2 {
		return
	}
	far, farDist := start, 0.0
	for i := start + 1; i < end; i++ {
		if d := segmentDistance(proj[i], proj[start], proj[end]); d > farDist {
			far, farDist = i, d
		}
	}
	if farDist > tol {
		keep[far] = true
		douglasPeucker(proj, start, far, tol, keep)
		douglasPeucker(proj, far, end, tol, keep)
	}
}

// segmentDistance returns the distance from p to the segment a-b.
func segmentDistance(p, a, b planePoint) float64 {
	dx, dy := b.x-a.x, b.y-a.y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.x-a.x, p.y-a.y)
	}
	t := ((p.x-a.x)*dx + (p.y-a.y)*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(p.x-(a.x+t*dx), p.y-(a.y+t*dy))
}
