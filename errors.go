package sculpt

import "errors"

var (
	// ErrDegenerateStroke reports a stroke whose ground anchors coincide so
	// no projection plane direction can be derived from it.
	ErrDegenerateStroke = errors.New("stroke ground anchors coincide")
	// ErrVerticalStroke reports a stroke whose direction is parallel to the
	// world up axis, leaving the projection plane normal undefined.
	ErrVerticalStroke = errors.New("stroke direction parallel to world up")
	// ErrOutOfBounds reports a query position outside the terrain footprint.
	ErrOutOfBounds = errors.New("position outside terrain footprint")
	// ErrNotFinite reports NaN or Inf geometry input.
	ErrNotFinite = errors.New("non-finite geometry input")
)
