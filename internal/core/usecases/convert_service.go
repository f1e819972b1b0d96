package usecases

import (
	"fmt"
	"io"

	"github.com/fhausmann/track2route/internal/core/domain"
	"github.com/fhausmann/track2route/internal/core/ports"
)

// ConvertService turns the tracks of a document into routes: decode,
// optionally thin each track, reduce it to the requested number of
// points, append the result as a route, encode the whole document back.
type ConvertService struct {
	decoder    ports.DocumentDecoder
	simplifier ports.Simplifier
	dist       domain.DistanceFunc
}

// NewConvertService creates a new ConvertService.
func NewConvertService(decoder ports.DocumentDecoder, simplifier ports.Simplifier, dist domain.DistanceFunc) *ConvertService {
	return &ConvertService{decoder: decoder, simplifier: simplifier, dist: dist}
}

// Options control one conversion run.
type Options struct {
	// RoutePoints is the number of points each generated route should
	// have. Tracks shorter than this come through whole.
	RoutePoints int
	// Simplify enables the pre-reduction thinning pass.
	Simplify bool
	// MaxDistance is the thinning tolerance in meters.
	MaxDistance float64
}

// TrackReport describes what conversion did to one track.
type TrackReport struct {
	Name      string
	PointsIn  int
	Dropped   int // removed by the thinning pass, before reduction
	PointsOut int
}

// Report sums up one document conversion.
type Report struct {
	Tracks []TrackReport
}

// Convert reads a document from r, appends one route per track and
// writes the extended document to w. Domain sentinels stay matchable
// through the returned error.
func (s *ConvertService) Convert(r io.Reader, w io.Writer, opts Options) (*Report, error) {
	if opts.Simplify && s.simplifier == nil {
		return nil, fmt.Errorf("simplification requested but no simplifier configured")
	}
	if opts.Simplify && opts.MaxDistance <= 0 {
		return nil, fmt.Errorf("max distance must be positive, got %v", opts.MaxDistance)
	}

	doc, err := s.decoder.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	report := &Report{}
	for i, track := range doc.Tracks() {
		pts := track.Points
		if opts.Simplify {
			pts = s.simplifier.Simplify(pts, opts.MaxDistance)
		}

		path, err := domain.NewPath(domain.Track{Metadata: track.Metadata, Points: pts}, s.dist)
		if err != nil {
			return nil, fmt.Errorf("track %d %q: %w", i+1, track.Name, err)
		}

		// A track shorter than the requested size comes through whole;
		// targets below two are still rejected by the chain.
		target := opts.RoutePoints
		if target > path.Len() {
			target = path.Len()
		}
		if err := path.ReduceTo(target); err != nil {
			return nil, fmt.Errorf("track %d %q: %w", i+1, track.Name, err)
		}

		route := path.Route()
		doc.AppendRoute(route)
		report.Tracks = append(report.Tracks, TrackReport{
			Name:      track.Name,
			PointsIn:  len(track.Points),
			Dropped:   len(track.Points) - len(pts),
			PointsOut: len(route.Points),
		})
	}

	if err := doc.Encode(w); err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	return report, nil
}
