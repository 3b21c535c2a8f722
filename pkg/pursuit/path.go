package pursuit

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"

	"github.com/zeusync/purepursuit/pkg/geometry"
)

// MinWaypoints is the fewest waypoints a path may have: one segment.
const MinWaypoints = 2

// Path is the read contract shared by every waypoint storage strategy.
// Implementations are immutable once built.
type Path[T geometry.Scalar] interface {
	// Len is the number of waypoints.
	Len() int
	// At returns waypoint i, 0 <= i < Len().
	At(i int) geometry.Point[T]
	// Radius is the lookahead radius.
	Radius() T
	// Dim is the dimension shared by every waypoint.
	Dim() int
}

var (
	_ Path[float64] = (*FixedPath[float64])(nil)
	_ Path[float64] = (*DynamicPath[float64])(nil)
)

// FixedPath keeps every coordinate in one flat buffer, filled from a
// builder whose capacity was chosen up front. Reading a waypoint does not
// allocate.
type FixedPath[T geometry.Scalar] struct {
	dim    int
	radius T
	points []geometry.Point[T]
}

func (p *FixedPath[T]) Len() int                   { return len(p.points) }
func (p *FixedPath[T]) At(i int) geometry.Point[T] { return p.points[i] }

func (p *FixedPath[T]) Radius() T { return p.radius }
func (p *FixedPath[T]) Dim() int  { return p.dim }

// DynamicPath keeps its waypoints in a growable list.
type DynamicPath[T geometry.Scalar] struct {
	dim    int
	radius T
	points []geometry.Point[T]
}

func (p *DynamicPath[T]) Len() int                   { return len(p.points) }
func (p *DynamicPath[T]) At(i int) geometry.Point[T] { return p.points[i] }
func (p *DynamicPath[T]) Radius() T                  { return p.radius }
func (p *DynamicPath[T]) Dim() int                   { return p.dim }

// Points copies every waypoint of path into a new slice.
func Points[T geometry.Scalar](path Path[T]) []geometry.Point[T] {
	out := make([]geometry.Point[T], path.Len())
	for i := range out {
		out[i] = path.At(i)
	}
	return out
}

// Length returns the total length of the polyline.
func Length[T geometry.Scalar](path Path[T]) T {
	var total T
	for i := 1; i < path.Len(); i++ {
		total += path.At(i - 1).Distance(path.At(i))
	}
	return total
}

// Fingerprint hashes dimension, radius and coordinates. Two paths with
// the same fingerprint drive a pursuer identically.
func Fingerprint[T geometry.Scalar](path Path[T]) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 8*(2+path.Dim()))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(path.Dim()))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(path.Radius())))
	_, _ = d.Write(buf)
	for i := 0; i < path.Len(); i++ {
		pt := path.At(i)
		buf = buf[:0]
		for j := 0; j < pt.Dim(); j++ {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(pt.At(j))))
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

// Validate checks everything a pursuer relies on: a positive finite
// radius, at least MinWaypoints waypoints of the path's dimension with
// finite coordinates, and no zero-length segment. All violations are
// reported together.
func Validate[T geometry.Scalar](path Path[T]) error {
	if path == nil {
		return fmt.Errorf("%w: nil path", ErrConfiguration)
	}
	err := validateRadius(path.Radius())
	if path.Dim() < 1 {
		return multierr.Append(err, ErrInvalidDimension)
	}
	return multierr.Append(err, validateWaypoints(path.Dim(), path.Len(), path.At))
}

func validateRadius[T geometry.Scalar](r T) error {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) || r <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, f)
	}
	return nil
}

func validateWaypoints[T geometry.Scalar](dim, n int, at func(int) geometry.Point[T]) error {
	var err error
	if n < MinWaypoints {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrTooFewPoints, n))
	}
	for i := 0; i < n; i++ {
		pt := at(i)
		if pt.Dim() != dim {
			err = multierr.Append(err, fmt.Errorf("%w: waypoint %d has %d coordinates, want %d", ErrDimensionMismatch, i, pt.Dim(), dim))
			continue
		}
		if !pt.IsFinite() {
			err = multierr.Append(err, fmt.Errorf("%w: waypoint %d is %s", ErrInvalidPoint, i, pt))
			continue
		}
		if i > 0 {
			prev := at(i - 1)
			if prev.Dim() == dim && prev.Equal(pt) {
				err = multierr.Append(err, &DegenerateSegmentError{Index: i - 1, Point: pt.String()})
			}
		}
	}
	return err
}
