package pursuit

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/zeusync/purepursuit/pkg/geometry"
)

// Builder collects a lookahead radius and an ordered list of waypoints.
// Problems found while adding are remembered and reported by Build, so a
// whole chain can be written without intermediate error checks:
//
//	p, err := pursuit.NewDynamicBuilder[float64](2).
//		WithRadius(0.7).
//		WithPoint(geometry.NewPoint(0.0, 0.0)).
//		WithPoint(geometry.NewPoint(2.0, 0.0)).
//		Build()
//
// A Builder is not safe for concurrent use.
type Builder[T geometry.Scalar] struct {
	dim       int
	radius    T
	hasRadius bool
	store     waypointStore[T]
	added     int
	errs      error
}

type waypointStore[T geometry.Scalar] interface {
	add(p geometry.Point[T]) error
	len() int
	at(i int) geometry.Point[T]
	freeze(radius T) Path[T]
}

// NewFixedBuilder returns a builder whose storage for capacity waypoints
// of dimension dim is allocated up front. Adding more than capacity
// waypoints fails the build with ErrCapacityExceeded.
func NewFixedBuilder[T geometry.Scalar](dim, capacity int) *Builder[T] {
	b := &Builder[T]{dim: dim}
	if dim < 1 {
		b.errs = fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
		dim = 0
	}
	if capacity < 0 {
		capacity = 0
	}
	b.store = &fixedStore[T]{
		dim:      dim,
		capacity: capacity,
		coords:   make([]T, 0, capacity*dim),
	}
	return b
}

// NewDynamicBuilder returns a builder backed by a growable list.
func NewDynamicBuilder[T geometry.Scalar](dim int) *Builder[T] {
	b := &Builder[T]{dim: dim, store: &dynamicStore[T]{dim: dim}}
	if dim < 1 {
		b.errs = fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
	}
	return b
}

// WithRadius sets the lookahead radius. Calling it again replaces the
// previous value; only the last one is validated by Build.
func (b *Builder[T]) WithRadius(r T) *Builder[T] {
	b.radius = r
	b.hasRadius = true
	return b
}

// WithPoint appends p to the end of the path.
func (b *Builder[T]) WithPoint(p geometry.Point[T]) *Builder[T] {
	if err := b.store.add(p); err != nil {
		b.errs = multierr.Append(b.errs, fmt.Errorf("waypoint %d: %w", b.added, err))
	}
	b.added++
	return b
}

// WithPoints appends every point in order.
func (b *Builder[T]) WithPoints(points ...geometry.Point[T]) *Builder[T] {
	for _, p := range points {
		b.WithPoint(p)
	}
	return b
}

// Radius returns the radius set so far and whether one was set at all.
func (b *Builder[T]) Radius() (T, bool) {
	return b.radius, b.hasRadius
}

// Len is the number of waypoints accepted so far.
func (b *Builder[T]) Len() int {
	return b.store.len()
}

// Dim is the dimension every waypoint must have.
func (b *Builder[T]) Dim() int {
	return b.dim
}

// BuildPath validates the configuration and returns the immutable path.
// Waypoints added to the builder afterwards do not affect the returned
// path.
func (b *Builder[T]) BuildPath() (Path[T], error) {
	err := b.errs
	if !b.hasRadius {
		err = multierr.Append(err, ErrNoRadius)
	} else {
		err = multierr.Append(err, validateRadius(b.radius))
	}
	if b.dim >= 1 {
		err = multierr.Append(err, validateWaypoints(b.dim, b.store.len(), b.store.at))
	}
	if err != nil {
		return nil, err
	}
	return b.store.freeze(b.radius), nil
}

// Build validates the configuration and returns a pursuer that has not
// started tracking yet.
func (b *Builder[T]) Build(opts ...Option) (*Pursuer[T], error) {
	path, err := b.BuildPath()
	if err != nil {
		return nil, err
	}
	return newPursuer(path, opts...), nil
}

type fixedStore[T geometry.Scalar] struct {
	dim      int
	capacity int
	coords   []T
}

func (s *fixedStore[T]) add(p geometry.Point[T]) error {
	if s.dim < 1 {
		return ErrInvalidDimension
	}
	if p.Dim() != s.dim {
		return fmt.Errorf("%w: got %d coordinates, want %d", ErrDimensionMismatch, p.Dim(), s.dim)
	}
	if s.len() >= s.capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, s.capacity)
	}
	for i := 0; i < s.dim; i++ {
		s.coords = append(s.coords, p.At(i))
	}
	return nil
}

func (s *fixedStore[T]) len() int {
	if s.dim < 1 {
		return 0
	}
	return len(s.coords) / s.dim
}

func (s *fixedStore[T]) at(i int) geometry.Point[T] {
	return geometry.NewPoint(s.coords[i*s.dim : (i+1)*s.dim]...)
}

// The frozen path owns a copy of the buffer, so later appends to the
// builder never reach it.
func (s *fixedStore[T]) freeze(radius T) Path[T] {
	return &FixedPath[T]{dim: s.dim, radius: radius, points: geometry.Unflatten(s.coords, s.dim)}
}

type dynamicStore[T geometry.Scalar] struct {
	dim    int
	points []geometry.Point[T]
}

func (s *dynamicStore[T]) add(p geometry.Point[T]) error {
	if p.Dim() != s.dim {
		return fmt.Errorf("%w: got %d coordinates, want %d", ErrDimensionMismatch, p.Dim(), s.dim)
	}
	s.points = append(s.points, p)
	return nil
}

func (s *dynamicStore[T]) len() int                   { return len(s.points) }
func (s *dynamicStore[T]) at(i int) geometry.Point[T] { return s.points[i] }

func (s *dynamicStore[T]) freeze(radius T) Path[T] {
	n := len(s.points)
	return &DynamicPath[T]{dim: s.dim, radius: radius, points: s.points[:n:n]}
}
