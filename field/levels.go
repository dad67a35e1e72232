package field

import (
	"fmt"
	"math"
)

// deltaDivisor scales the sample range down to the tie-break epsilon used by
// the tracer's interpolation guards.
const deltaDivisor = 10000

// LevelSet is an ordered, strictly increasing sequence of target values and
// the numeric tie-break epsilon derived from the grid's sample range.
// It is immutable once built; rebuild it whenever the grid or interval
// changes.
type LevelSet struct {
	values []float64
	delta  float64
}

// NewLevelSet derives a LevelSet from the grid extrema and a contour
// interval: nCont = ceil((maxZ-minZ)/interval) levels at minZ + i*interval,
// i = 0..nCont-1. A flat grid yields an empty (but valid) LevelSet.
// Returns ErrBadInterval if interval is zero, negative or non-finite.
// Complexity: O(nCont) time and memory.
func NewLevelSet(g *Grid, interval float64) (*LevelSet, error) {
	if interval <= 0 || math.IsNaN(interval) || math.IsInf(interval, 0) {
		return nil, fmt.Errorf("field: interval %v: %w", interval, ErrBadInterval)
	}

	minZ, maxZ := g.MinMax()
	n := int(math.Ceil((maxZ - minZ) / interval))
	values := make([]float64, n)
	for i := range values {
		values[i] = minZ + float64(i)*interval
	}

	return &LevelSet{values: values, delta: (maxZ - minZ) / deltaDivisor}, nil
}

// NewExplicitLevelSet builds a LevelSet from a caller-supplied list of target
// values. The list must be non-empty, finite and strictly increasing; Delta
// is still derived from the grid extrema so interpolation guards stay scaled
// to the data.
// Returns ErrNoLevels, ErrNonFinite or ErrUnsortedLevels on bad input.
// Complexity: O(len(values)) time and memory.
func NewExplicitLevelSet(g *Grid, values []float64) (*LevelSet, error) {
	if len(values) == 0 {
		return nil, ErrNoLevels
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("field: level %d = %v: %w", i, v, ErrNonFinite)
		}
		if i > 0 && v <= values[i-1] {
			return nil, fmt.Errorf("field: level %d (%v) after %v: %w", i, v, values[i-1], ErrUnsortedLevels)
		}
	}

	copied := make([]float64, len(values))
	copy(copied, values)
	minZ, maxZ := g.MinMax()

	return &LevelSet{values: copied, delta: (maxZ - minZ) / deltaDivisor}, nil
}

// Count returns the number of levels.
func (ls *LevelSet) Count() int { return len(ls.values) }

// Value returns the target value of level index i. The caller must keep i
// within [0, Count()).
func (ls *LevelSet) Value(i int) float64 { return ls.values[i] }

// Values returns a copy of the level values in ascending order.
func (ls *LevelSet) Values() []float64 {
	out := make([]float64, len(ls.values))
	copy(out, ls.values)
	return out
}

// Delta returns the tie-break epsilon: one ten-thousandth of the sample
// range. Interpolation uses it to keep crossings off grid vertices and away
// from degenerate denominators.
func (ls *LevelSet) Delta() float64 { return ls.delta }
