package pursuit

import (
	"github.com/zeusync/purepursuit/pkg/geometry"
)

// intersect solves |p + t·(q−p) − s| = r for t and returns the larger
// root, the crossing nearer q. ok is false when the circle misses the
// line through p and q. p and q must differ.
func intersect[T geometry.Scalar](p, q, s geometry.Point[T], r T) (t T, ok bool) {
	var a, b, c T
	for n := 0; n < p.Dim(); n++ {
		pn, qn, sn := p.At(n), q.At(n), s.At(n)
		a += (pn - qn) * (pn - qn)
		b += (pn - sn) * (qn - pn)
		c += (pn - sn) * (pn - sn)
	}
	b *= 2
	c -= r * r

	disc := b*b - 4*a*c
	// Written this way round so a NaN discriminant also reports a miss.
	if !(disc >= 0) {
		return 0, false
	}
	root := geometry.Sqrt(disc)
	return max((-b+root)/(2*a), (-b-root)/(2*a)), true
}
