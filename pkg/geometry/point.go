// Package geometry holds the waypoint primitive shared by paths and
// pursuers: an immutable point of fixed dimension over a float scalar.
package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is the coordinate type a Point can be built from.
type Scalar interface {
	constraints.Float
}

// Point is an immutable position of fixed dimension. The zero value is a
// point of dimension 0.
type Point[T Scalar] struct {
	coords []T
}

// NewPoint copies coords into a new point.
func NewPoint[T Scalar](coords ...T) Point[T] {
	c := make([]T, len(coords))
	copy(c, coords)
	return Point[T]{coords: c}
}

// Unflatten copies flat into one new buffer and returns the points of
// dimension dim laid out back to back in it. The points share that
// buffer, so reading them later does not allocate. It panics unless dim
// is positive and divides len(flat).
func Unflatten[T Scalar](flat []T, dim int) []Point[T] {
	if dim < 1 || len(flat)%dim != 0 {
		panic(fmt.Sprintf("geometry: cannot split %d coordinates into points of dimension %d", len(flat), dim))
	}
	buf := make([]T, len(flat))
	copy(buf, flat)
	points := make([]Point[T], len(flat)/dim)
	for i := range points {
		points[i] = Point[T]{coords: buf[i*dim : (i+1)*dim : (i+1)*dim]}
	}
	return points
}

// Zero returns the origin of the given dimension.
func Zero[T Scalar](dim int) Point[T] {
	return Point[T]{coords: make([]T, dim)}
}

func (p Point[T]) Dim() int { return len(p.coords) }

func (p Point[T]) At(i int) T { return p.coords[i] }

// Coords returns a copy of the coordinates.
func (p Point[T]) Coords() []T {
	c := make([]T, len(p.coords))
	copy(c, p.coords)
	return c
}

// Equal reports exact, coordinate-wise equality.
func (p Point[T]) Equal(q Point[T]) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i := range p.coords {
		if p.coords[i] != q.coords[i] {
			return false
		}
	}
	return true
}

// IsFinite reports whether every coordinate is neither NaN nor infinite.
func (p Point[T]) IsFinite() bool {
	for _, v := range p.coords {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// DistanceSquared returns the squared Euclidean distance to q.
// It panics if the dimensions differ.
func (p Point[T]) DistanceSquared(q Point[T]) T {
	mustSameDim(p, q)
	var sum T
	for i := range p.coords {
		d := p.coords[i] - q.coords[i]
		sum += d * d
	}
	return sum
}

// Distance returns the Euclidean distance to q.
// It panics if the dimensions differ.
func (p Point[T]) Distance(q Point[T]) T {
	return Sqrt(p.DistanceSquared(q))
}

// Lerp returns p + t·(q−p). t is not clamped.
func (p Point[T]) Lerp(q Point[T], t T) Point[T] {
	mustSameDim(p, q)
	out := make([]T, len(p.coords))
	for i := range p.coords {
		out[i] = p.coords[i] + t*(q.coords[i]-p.coords[i])
	}
	return Point[T]{coords: out}
}

func (p Point[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range p.coords {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Distance is the free-function form of Point.Distance.
func Distance[T Scalar](a, b Point[T]) T {
	return a.Distance(b)
}

// Sqrt is math.Sqrt for any Scalar.
func Sqrt[T Scalar](v T) T {
	return T(math.Sqrt(float64(v)))
}

func mustSameDim[T Scalar](p, q Point[T]) {
	if len(p.coords) != len(q.coords) {
		panic(fmt.Sprintf("geometry: dimension mismatch %d != %d", len(p.coords), len(q.coords)))
	}
}
