package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions to and from gonum's spatial vectors, for callers that keep
// robot state in r2/r3.

func FromR2[T Scalar](v r2.Vec) Point[T] {
	return Point[T]{coords: []T{T(v.X), T(v.Y)}}
}

func FromR3[T Scalar](v r3.Vec) Point[T] {
	return Point[T]{coords: []T{T(v.X), T(v.Y), T(v.Z)}}
}

// R2 panics unless p is two dimensional.
func (p Point[T]) R2() r2.Vec {
	mustDim(p, 2)
	return r2.Vec{X: float64(p.coords[0]), Y: float64(p.coords[1])}
}

// R3 panics unless p is three dimensional.
func (p Point[T]) R3() r3.Vec {
	mustDim(p, 3)
	return r3.Vec{X: float64(p.coords[0]), Y: float64(p.coords[1]), Z: float64(p.coords[2])}
}

func mustDim[T Scalar](p Point[T], dim int) {
	if len(p.coords) != dim {
		panic(fmt.Sprintf("geometry: want %d dimensions, point has %d", dim, len(p.coords)))
	}
}
