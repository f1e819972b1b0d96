package domain

import "math"

// nanRank sorts below every real removal rank, so a point whose turn
// angle came out NaN is the first candidate to leave.
const nanRank = -1

// geoPoint is one slot of a path's point arena. Neighbor links are arena
// indices; -1 means the point is first, last, or removed.
type geoPoint struct {
	pt   TrackPoint
	prev int
	next int

	// Cached turn angle, meaningful only while angleOK is set. Any
	// relink of prev or next clears it.
	angle   float64
	angleOK bool
}

// interior reports whether the point has neighbors on both sides. Only
// interior points are removable.
func (g *geoPoint) interior() bool {
	return g.prev >= 0 && g.next >= 0
}

// removalRank maps a turn angle to the priority key the index sorts by.
// Straight points (angle near pi) rank lowest and leave first, hairpins
// rank highest, NaN ranks below everything.
func removalRank(angle float64) float64 {
	if math.IsNaN(angle) {
		return nanRank
	}
	return math.Pi - angle
}
