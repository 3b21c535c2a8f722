package pursuit

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/zeusync/purepursuit/pkg/geometry"
	"github.com/zeusync/purepursuit/pkg/observability/log"
)

// clampTolerance is how far outside [0, 1] an intersection parameter may
// land before clamping it is worth a log entry.
const clampTolerance = 1e-9

const unstarted = -1

// State is a snapshot of what a Pursuer is tracking.
type State struct {
	Started bool
	Segment int // valid only when Started
}

func (s State) String() string {
	if !s.Started {
		return "unstarted"
	}
	return fmt.Sprintf("tracking(%d)", s.Segment)
}

// Pursuer follows a Path with the pure pursuit rule: every call to Step
// returns the point on the path one lookahead radius away from the robot,
// moving from segment to segment as the robot closes in on each waypoint.
//
// A Pursuer owns its tracking state and is not safe for concurrent use.
type Pursuer[T geometry.Scalar] struct {
	path    Path[T]
	segment int
	config  Config
	logger  log.Log
}

var _ TargetFinder[float64] = (*Pursuer[float64])(nil)

// NewPursuer validates path and returns a pursuer that has not started
// tracking yet. Use it with Path implementations that did not come from a
// Builder.
func NewPursuer[T geometry.Scalar](path Path[T], opts ...Option) (*Pursuer[T], error) {
	if err := Validate(path); err != nil {
		return nil, err
	}
	return newPursuer(path, opts...), nil
}

func newPursuer[T geometry.Scalar](path Path[T], opts ...Option) *Pursuer[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Pursuer[T]{
		path:    path,
		segment: unstarted,
		config:  cfg,
		logger: cfg.Logger.With(
			log.String("pursuer", cfg.Name),
			log.Uint64("path", Fingerprint(path)),
		),
	}
}

// Path returns the path being followed.
func (p *Pursuer[T]) Path() Path[T] { return p.path }

// Name returns the name used in log entries.
func (p *Pursuer[T]) Name() string { return p.config.Name }

// Segment returns the index of the segment being tracked. ok is false
// until the robot first comes within the lookahead radius of the start.
func (p *Pursuer[T]) Segment() (index int, ok bool) {
	if p.segment == unstarted {
		return 0, false
	}
	return p.segment, true
}

// State returns a snapshot of the tracking state.
func (p *Pursuer[T]) State() State {
	idx, ok := p.Segment()
	return State{Started: ok, Segment: idx}
}

// TargetPoint implements TargetFinder.
func (p *Pursuer[T]) TargetPoint(position geometry.Point[T]) geometry.Point[T] {
	return p.Step(position)
}

// Step returns the point to steer toward from position and advances the
// tracking state when the robot has come close enough to the next
// waypoint.
//
// Before tracking starts the first waypoint is returned until position is
// within the lookahead radius of it (inclusive). While tracking segment i,
// the segment advances once position is strictly inside the radius of
// waypoint i+1; on the last segment the final waypoint is returned from
// then on. Otherwise the target is where the lookahead circle crosses the
// segment, nearer its far end.
//
// Work per call is O(1) while the robot stays on one segment and at most
// O(N) for a path of N waypoints when several segments are skipped in the
// same tick.
//
// Step panics if position does not have the path's dimension.
func (p *Pursuer[T]) Step(position geometry.Point[T]) geometry.Point[T] {
	if position.Dim() != p.path.Dim() {
		panic(fmt.Sprintf("pursuit: position has %d coordinates, path has %d", position.Dim(), p.path.Dim()))
	}

	n := p.path.Len()
	radius := p.path.Radius()

	// Each pass either returns or advances the state, and there are at
	// most N-1 advances, so N passes always suffice.
	for pass := 0; pass < n; pass++ {
		if p.segment == unstarted {
			start := p.path.At(0)
			// Negated so a NaN position never starts tracking.
			if !(position.Distance(start) <= radius) {
				return start
			}
			p.advance(0, position)
			continue
		}

		far := p.path.At(p.segment + 1)
		if position.Distance(far) < radius {
			if p.segment < n-2 {
				p.advance(p.segment+1, position)
				continue
			}
			return p.path.At(n - 1)
		}
		return p.target(p.path.At(p.segment), far, position, radius)
	}
	return p.path.At(p.segment + 1)
}

// logs reports whether the logger keeps entries at level.
func (p *Pursuer[T]) logs(level log.Level) bool {
	return p.logger.GetLevel() <= level
}

func (p *Pursuer[T]) advance(segment int, position geometry.Point[T]) {
	p.segment = segment
	if !p.logs(log.LevelDebug) {
		return
	}
	p.logger.Debug("pursuit segment advanced",
		log.Int("segment", segment),
		log.Stringer("position", position),
	)
}

func (p *Pursuer[T]) target(from, to, position geometry.Point[T], radius T) geometry.Point[T] {
	t, ok := intersect(from, to, position, radius)
	if !ok {
		nearest := to
		if position.Distance(from) < position.Distance(to) {
			nearest = from
		}
		if !p.logs(log.LevelWarn) {
			return nearest
		}
		p.logger.Warn("lookahead circle misses segment, falling back to nearest endpoint",
			log.Int("segment", p.segment),
			log.Stringer("position", position),
			log.Stringer("target", nearest),
		)
		return nearest
	}

	if p.config.Clamp && (t < 0 || t > 1) {
		clamped := T(0)
		if t > 1 {
			clamped = 1
		}
		if p.logs(log.LevelDebug) && !scalar.EqualWithinAbs(float64(t), float64(clamped), clampTolerance) {
			p.logger.Debug("lookahead intersection clamped to segment",
				log.Int("segment", p.segment),
				log.Float64("t", float64(t)),
			)
		}
		t = clamped
	}

	switch t {
	case 0:
		return from
	case 1:
		return to
	}
	return from.Lerp(to, t)
}
