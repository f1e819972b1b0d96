package domain

import (
	"math"
	"testing"
)

func planarDist(a, b Coordinate) float64 {
	return math.Hypot(b.Lat-a.Lat, b.Lon-a.Lon)
}

func coords(cs ...[2]float64) []TrackPoint {
	pts := make([]TrackPoint, len(cs))
	for i, c := range cs {
		pts[i] = TrackPoint{Coordinate: Coordinate{Lat: c[0], Lon: c[1]}}
	}
	return pts
}

func TestTurnAngle_RightAngle(t *testing.T) {
	p, err := NewPath(Track{Points: coords([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{1, 1})}, planarDist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.turnAngle(1); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("expected pi/2, got %v", got)
	}
}

func TestTurnAngle_CollinearIsPi(t *testing.T) {
	p, err := NewPath(Track{Points: coords([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{0, 2})}, planarDist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.turnAngle(1); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("expected pi, got %v", got)
	}
}

func TestTurnAngle_CoincidentNeighborIsPi(t *testing.T) {
	p, err := NewPath(Track{Points: coords([2]float64{0, 0}, [2]float64{0, 0}, [2]float64{1, 0})}, planarDist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The zero-length segment short-circuits the triangle entirely.
	if got := p.turnAngle(1); got != math.Pi {
		t.Errorf("expected exactly pi, got %v", got)
	}
}

func TestTurnAngle_EndpointIsNaN(t *testing.T) {
	p, err := NewPath(Track{Points: coords([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{0, 2})}, planarDist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.turnAngle(0); !math.IsNaN(got) {
		t.Errorf("expected NaN for first point, got %v", got)
	}
	if got := p.turnAngle(2); !math.IsNaN(got) {
		t.Errorf("expected NaN for last point, got %v", got)
	}
	if p.nodes[0].angleOK || p.nodes[2].angleOK {
		t.Error("endpoint angles must never be cached")
	}
}

func TestTurnAngle_CacheInvalidatedByRelink(t *testing.T) {
	p, err := NewPath(Track{Points: coords(
		[2]float64{0, 0},
		[2]float64{0, 1},
		[2]float64{0, 2},
		[2]float64{0, 3},
	)}, planarDist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Building the index scores every interior point.
	if !p.nodes[1].angleOK {
		t.Fatal("expected angle cached after construction")
	}

	p.setNext(1, 3)
	if p.nodes[1].angleOK {
		t.Fatal("relink must drop the cached angle")
	}

	if got := p.turnAngle(1); !p.nodes[1].angleOK {
		t.Fatalf("expected recompute to cache, got %v", got)
	}

	// Even a relink to the same neighbor invalidates.
	p.setNext(1, 3)
	if p.nodes[1].angleOK {
		t.Fatal("no-op relink must still drop the cached angle")
	}
}

func TestTurnAngle_RepeatedReadsAgree(t *testing.T) {
	p, err := NewPath(Track{Points: coords(
		[2]float64{0, 0},
		[2]float64{1, 1},
		[2]float64{0, 2},
	)}, planarDist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := p.turnAngle(1)
	second := p.turnAngle(1)
	if first != second {
		t.Errorf("expected identical reads, got %v then %v", first, second)
	}
}

func TestRemovalRank(t *testing.T) {
	if got := removalRank(math.NaN()); got != nanRank {
		t.Errorf("expected %v for NaN, got %v", nanRank, got)
	}
	if got := removalRank(math.Pi); got != 0 {
		t.Errorf("expected 0 for a straight angle, got %v", got)
	}
	if got := removalRank(0); got != math.Pi {
		t.Errorf("expected pi for a hairpin, got %v", got)
	}
	if removalRank(math.NaN()) >= removalRank(math.Pi) {
		t.Error("NaN must rank below a straight angle")
	}
}
