package domain

import "errors"

var (
	// ErrTooFewPoints reports a track too short to reduce: with fewer
	// than three points there is no interior.
	ErrTooFewPoints = errors.New("track needs at least 3 points")

	// ErrInvalidTarget reports a reduction target outside [2, length].
	ErrInvalidTarget = errors.New("invalid reduction target")

	// ErrNoInteriorPoints reports a removal from a chain already
	// stripped down to its endpoints.
	ErrNoInteriorPoints = errors.New("no removable points left")
)
