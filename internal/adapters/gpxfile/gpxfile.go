package gpxfile

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/twpayne/go-gpx"

	"github.com/fhausmann/track2route/internal/core/domain"
	"github.com/fhausmann/track2route/internal/core/ports"
)

// Codec implements ports.DocumentDecoder for GPX files using
// twpayne/go-gpx.
type Codec struct{}

// Decode parses a GPX document. Each <trk> becomes one domain track with
// its segments concatenated in order; every point keeps its full
// waypoint element as payload.
func (Codec) Decode(r io.Reader) (ports.TrackDocument, error) {
	g, err := gpx.Read(r)
	if err != nil {
		return nil, fmt.Errorf("read gpx: %w", err)
	}
	return &Document{gpx: g}, nil
}

// Document implements ports.TrackDocument over a parsed GPX file.
type Document struct {
	gpx *gpx.GPX
}

// Tracks converts the <trk> elements to domain tracks. Segment breaks
// carry no information a route could keep, so segments are flattened.
func (d *Document) Tracks() []domain.Track {
	tracks := make([]domain.Track, 0, len(d.gpx.Trk))
	for _, trk := range d.gpx.Trk {
		var pts []domain.TrackPoint
		for _, seg := range trk.TrkSeg {
			for _, wpt := range seg.TrkPt {
				pts = append(pts, domain.TrackPoint{
					Coordinate: domain.Coordinate{Lat: wpt.Lat, Lon: wpt.Lon},
					Payload:    wpt,
				})
			}
		}
		tracks = append(tracks, domain.Track{
			Metadata: domain.Metadata{
				Name:        trk.Name,
				Comment:     trk.Cmt,
				Description: trk.Desc,
				Source:      trk.Src,
				Number:      trk.Number,
				Type:        trk.Type,
			},
			Points: pts,
		})
	}
	return tracks
}

// AppendRoute adds a <rte> to the document. Route points carrying a
// waypoint payload reuse it unchanged, so elevation, timestamps and
// extensions survive; anything else becomes a bare lat/lon point.
func (d *Document) AppendRoute(route domain.Route) {
	rte := &gpx.RteType{
		Name:   route.Name,
		Cmt:    route.Comment,
		Desc:   route.Description,
		Src:    route.Source,
		Number: route.Number,
		Type:   route.Type,
		RtePt:  make([]*gpx.WptType, 0, len(route.Points)),
	}
	for _, pt := range route.Points {
		if wpt, ok := pt.Payload.(*gpx.WptType); ok {
			rte.RtePt = append(rte.RtePt, wpt)
			continue
		}
		rte.RtePt = append(rte.RtePt, &gpx.WptType{Lat: pt.Lat, Lon: pt.Lon})
	}
	d.gpx.Rte = append(d.gpx.Rte, rte)
}

// Encode writes the whole document, tracks and appended routes included.
func (d *Document) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write gpx: %w", err)
	}
	if err := d.gpx.WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("write gpx: %w", err)
	}
	return nil
}
