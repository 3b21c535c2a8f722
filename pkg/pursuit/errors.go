package pursuit

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every error returned while building a
// path. Match it with errors.Is to catch any configuration failure.
var ErrConfiguration = errors.New("invalid pursuit configuration")

// Configuration errors, each wrapping ErrConfiguration.
var (
	ErrNoRadius          = fmt.Errorf("%w: lookahead radius not set", ErrConfiguration)
	ErrInvalidRadius     = fmt.Errorf("%w: lookahead radius must be positive and finite", ErrConfiguration)
	ErrTooFewPoints      = fmt.Errorf("%w: path needs at least %d waypoints", ErrConfiguration, MinWaypoints)
	ErrInvalidDimension  = fmt.Errorf("%w: dimension must be at least 1", ErrConfiguration)
	ErrDimensionMismatch = fmt.Errorf("%w: waypoint dimension mismatch", ErrConfiguration)
	ErrInvalidPoint      = fmt.Errorf("%w: waypoint coordinates must be finite", ErrConfiguration)
	ErrCapacityExceeded  = fmt.Errorf("%w: fixed path capacity exceeded", ErrConfiguration)
	ErrDegenerateSegment = fmt.Errorf("%w: degenerate segment", ErrConfiguration)
)

// DegenerateSegmentError reports two identical consecutive waypoints. The
// segment starting at Index has zero length, which leaves the lookahead
// intersection undefined.
type DegenerateSegmentError struct {
	Index int
	Point string
}

func (e *DegenerateSegmentError) Error() string {
	return fmt.Sprintf("%v: waypoints %d and %d coincide at %s", ErrDegenerateSegment, e.Index, e.Index+1, e.Point)
}

func (e *DegenerateSegmentError) Unwrap() error {
	return ErrDegenerateSegment
}
