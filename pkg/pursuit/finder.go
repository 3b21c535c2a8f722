package pursuit

import "github.com/zeusync/purepursuit/pkg/geometry"

// TargetFinder is anything that turns the robot's current position into
// a point to steer toward. Controllers depend on it rather than on a
// concrete path-following strategy.
type TargetFinder[T geometry.Scalar] interface {
	TargetPoint(position geometry.Point[T]) geometry.Point[T]
}

// TargetFinderFunc adapts a plain function to TargetFinder.
type TargetFinderFunc[T geometry.Scalar] func(position geometry.Point[T]) geometry.Point[T]

func (f TargetFinderFunc[T]) TargetPoint(position geometry.Point[T]) geometry.Point[T] {
	return f(position)
}
