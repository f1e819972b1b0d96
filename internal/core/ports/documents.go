package ports

import (
	"io"

	"github.com/fhausmann/track2route/internal/core/domain"
)

// TrackDocument is a parsed path-interchange file. It hands out the
// tracks it holds and collects the routes built from them; Encode writes
// the whole document back, original content plus appended routes.
type TrackDocument interface {
	Tracks() []domain.Track
	AppendRoute(route domain.Route)
	Encode(w io.Writer) error
}

// DocumentDecoder parses a path-interchange document from a stream.
type DocumentDecoder interface {
	Decode(r io.Reader) (TrackDocument, error)
}
