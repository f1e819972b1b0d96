package domain

import (
	"errors"
	"fmt"
	"math"
)

// Path is a reducible chain of track points. The points live in a fixed
// arena and are threaded into a doubly-linked list, so removing one only
// relinks its neighbors and every surviving TrackPoint leaves exactly as
// it came in, payload included. A Path is not safe for concurrent use;
// build one per goroutine.
type Path struct {
	nodes []geoPoint
	head  int
	size  int
	index *angleIndex
	dist  DistanceFunc
	meta  Metadata
}

// NewPath links the points of a track into a reducible chain. At least
// three points are required: endpoints are never removed, so shorter
// input has no interior to reduce. dist supplies the metric that scores
// turn angles.
func NewPath(track Track, dist DistanceFunc) (*Path, error) {
	if len(track.Points) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(track.Points))
	}
	if dist == nil {
		return nil, errors.New("nil distance function")
	}
	p := &Path{
		nodes: make([]geoPoint, len(track.Points)),
		head:  0,
		size:  len(track.Points),
		index: newAngleIndex(len(track.Points)),
		dist:  dist,
		meta:  track.Metadata,
	}
	last := len(track.Points) - 1
	for i, tp := range track.Points {
		p.nodes[i] = geoPoint{pt: tp, prev: i - 1, next: i + 1}
	}
	p.nodes[last].next = -1
	for i := 1; i < last; i++ {
		p.index.insert(i, removalRank(p.turnAngle(i)))
	}
	return p, nil
}

// Len reports how many points the chain currently holds.
func (p *Path) Len() int { return p.size }

// RemoveLeastSignificant removes the interior point contributing least
// to the path's shape, the one whose turn angle is closest to a straight
// line, and re-scores its two neighbors. Once only the endpoints remain
// it fails with ErrNoInteriorPoints.
func (p *Path) RemoveLeastSignificant() error {
	if p.index.Len() == 0 {
		return ErrNoInteriorPoints
	}
	id := p.index.popMin()
	left, right := p.nodes[id].prev, p.nodes[id].next

	// Neighbors leave the index while their geometry changes; for
	// endpoints this is a no-op, they were never in it.
	p.index.remove(left)
	p.index.remove(right)

	p.setNext(left, right)
	p.setPrev(right, left)
	p.setPrev(id, -1)
	p.setNext(id, -1)
	p.size--

	if p.nodes[left].interior() {
		p.index.insert(left, removalRank(p.turnAngle(left)))
	}
	if p.nodes[right].interior() {
		p.index.insert(right, removalRank(p.turnAngle(right)))
	}
	return nil
}

// ReduceTo removes points until exactly target remain. target must lie
// in [2, Len()]; the bounds are checked before the first removal, so a
// rejected call leaves the chain untouched.
func (p *Path) ReduceTo(target int) error {
	if target < 2 || target > p.size {
		return fmt.Errorf("%w: %d requested, chain has %d", ErrInvalidTarget, target, p.size)
	}
	for p.size > target {
		if err := p.RemoveLeastSignificant(); err != nil {
			return err
		}
	}
	return nil
}

// Points returns the surviving track points in their original order.
func (p *Path) Points() []TrackPoint {
	out := make([]TrackPoint, 0, p.size)
	for i := p.head; i >= 0; i = p.nodes[i].next {
		out = append(out, p.nodes[i].pt)
	}
	return out
}

// Route pairs the surviving points with the track's metadata.
func (p *Path) Route() Route {
	return Route{Metadata: p.meta, Points: p.Points()}
}

// turnAngle returns the angle at point i between its two neighbors, in
// radians within [0, pi]. Endpoints have no angle and always yield NaN.
// Interior angles are cached until a relink invalidates them.
func (p *Path) turnAngle(i int) float64 {
	n := &p.nodes[i]
	if !n.interior() {
		return math.NaN()
	}
	if !n.angleOK {
		n.angle = p.computeAngle(i)
		n.angleOK = true
	}
	return n.angle
}

// computeAngle applies the law of cosines to the triangle spanned by
// point i and its neighbors. A coincident neighbor gives exactly pi: a
// zero-length segment adds no direction, so its point goes first. The
// acos argument is left unclamped; rounding can push it outside [-1, 1]
// for near-straight triples and the resulting NaN ranks first out.
func (p *Path) computeAngle(i int) float64 {
	n := &p.nodes[i]
	a := p.between(n.prev, i)
	b := p.between(i, n.next)
	if a == 0 || b == 0 {
		return math.Pi
	}
	c := p.between(n.prev, n.next)
	return math.Acos((a*a + b*b - c*c) / (2 * a * b))
}

// between returns the metric distance between two arena slots.
func (p *Path) between(i, j int) float64 {
	return p.dist(p.nodes[i].pt.Coordinate, p.nodes[j].pt.Coordinate)
}

// setPrev relinks the previous neighbor of i and drops its cached angle.
func (p *Path) setPrev(i, prev int) {
	p.nodes[i].prev = prev
	p.nodes[i].angleOK = false
}

// setNext relinks the next neighbor of i and drops its cached angle.
func (p *Path) setNext(i, next int) {
	p.nodes[i].next = next
	p.nodes[i].angleOK = false
}
