package domain

// Coordinate is a geographic position in decimal degrees (WGS 84).
type Coordinate struct {
	Lat float64
	Lon float64
}

// TrackPoint is one recorded point of a GPS track. Payload carries the
// source-document form of the point (for GPX input, the full waypoint
// element) so a reduced route keeps whatever the source knew about each
// surviving point. Reduction never inspects it.
type TrackPoint struct {
	Coordinate
	Payload any
}

// Metadata is the descriptive header a track hands over to the route
// built from it.
type Metadata struct {
	Name        string
	Comment     string
	Description string
	Source      string
	Number      int
	Type        string
}

// Track is an ordered GPS recording, typically dense: one point every
// few seconds of movement.
type Track struct {
	Metadata
	Points []TrackPoint
}

// Route is the reduced counterpart of a track: few points, same shape.
type Route struct {
	Metadata
	Points []TrackPoint
}

// DistanceFunc returns the distance in meters between two coordinates.
// Implementations must be symmetric and return 0 for identical points.
type DistanceFunc func(a, b Coordinate) float64
