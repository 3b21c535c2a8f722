package pursuit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/purepursuit/pkg/geometry"
)

const (
	gain     = 0.15
	settle   = 0.1
	maxTicks = 10_000
)

type tick struct {
	Position geometry.Point[float64]
	Target   geometry.Point[float64]
}

// drive moves a holonomic robot a fixed fraction of the way toward the
// target every tick until it settles on it.
func drive(t *testing.T, finder TargetFinder[float64], start geometry.Point[float64], observe func(tick)) []tick {
	t.Helper()
	var trace []tick
	position := start
	target := finder.TargetPoint(position)
	for i := 0; position.Distance(target) > settle; i++ {
		require.Less(t, i, maxTicks, "robot never settled")
		target = finder.TargetPoint(position)
		trace = append(trace, tick{Position: position, Target: target})
		if observe != nil {
			observe(tick{Position: position, Target: target})
		}
		position = position.Lerp(target, gain)
	}
	return trace
}

var loop = []geometry.Point[float64]{pt(0, 0), pt(2, 0), pt(7, 4), pt(-6, 3), pt(-2, 0)}

func TestSegmentIndexNeverRegresses(t *testing.T) {
	for name, p := range pursuers(t, 0.7, loop) {
		t.Run(name, func(t *testing.T) {
			last := -1
			drive(t, p, pt(0, 0), func(tick) {
				seg, ok := p.Segment()
				require.True(t, ok)
				assert.GreaterOrEqual(t, seg, last)
				last = seg
			})
			assert.Equal(t, len(loop)-2, last)
			assertPoint(t, loop[len(loop)-1], p.Step(loop[len(loop)-1]))
		})
	}
}

func TestStorageStrategiesProduceIdenticalTraces(t *testing.T) {
	ps := pursuers(t, 0.7, loop)
	fixed := drive(t, ps["fixed"], pt(-0.5, 0.25), nil)
	dynamic := drive(t, ps["dynamic"], pt(-0.5, 0.25), nil)

	require.NotEmpty(t, fixed)
	if diff := cmp.Diff(fixed, dynamic); diff != "" {
		t.Errorf("trace mismatch (-fixed +dynamic):\n%s", diff)
	}
}

func TestTargetFinderFunc(t *testing.T) {
	hold := TargetFinderFunc[float64](func(position geometry.Point[float64]) geometry.Point[float64] {
		return position
	})

	var finder TargetFinder[float64] = hold
	assertPoint(t, pt(3, 4), finder.TargetPoint(pt(3, 4)))
	assert.Empty(t, drive(t, finder, pt(1, 1), nil))
}
