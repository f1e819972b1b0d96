package ports

import "github.com/fhausmann/track2route/internal/core/domain"

// Simplifier thins a track ahead of reduction, dropping points that
// deviate less than maxDistance meters from the remaining shape.
// Implementations keep the first and last point and never reorder.
type Simplifier interface {
	Simplify(points []domain.TrackPoint, maxDistance float64) []domain.TrackPoint
}
