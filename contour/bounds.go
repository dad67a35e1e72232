package contour

import (
	"sort"

	"github.com/katalvlaran/isolines/field"
)

// edgeBounds is the crossing record for one grid edge: the contiguous range
// of level indices that cross it, and the sign of the value slope along the
// edge's canonical traversal direction (east for horizontal edges, north for
// vertical ones).
//
// The range is empty when bot > top. Consuming the crossing for level k
// advances bot past k, so an edge is never interpolated twice for the same
// level and a crossing claimed by a lower level cannot be reused by a higher
// one.
type edgeBounds struct {
	bot, top int32
	slope    int8
}

// available reports whether the edge still carries an unconsumed crossing
// for level index k.
func (e *edgeBounds) available(k int) bool {
	return int32(k) >= e.bot && int32(k) <= e.top
}

// consume marks the level-k crossing as used.
func (e *edgeBounds) consume(k int) {
	e.bot = int32(k) + 1
}

// boundsGrid holds one edgeBounds per outgoing edge of every grid vertex:
// hor[y*w+x] is the rightward edge (x,y)-(x+1,y), valid for x < w-1, and
// ver[y*w+x] is the upward edge (x,y)-(x,y+1), valid for y < h-1.
// It is scanned, never rebuilt, during a trace; only the bot counters mutate.
type boundsGrid struct {
	w, h     int
	hor, ver []edgeBounds
}

// buildBounds computes the crossing range and slope sign of every grid edge.
//
// A level L crosses an edge with endpoint samples u, v iff
// min(u,v) < L ≤ max(u,v): bot is the smallest level index strictly above
// the low endpoint, top the largest at or below the high endpoint.
// Monotonicity between the two samples guarantees each level in the range is
// crossed exactly once.
//
// Complexity: O(w×h × log nCont) time, O(w×h) memory.
func buildBounds(g *field.Grid, ls *field.LevelSet) *boundsGrid {
	w, h := g.Cols(), g.Rows()
	b := &boundsGrid{
		w:   w,
		h:   h,
		hor: make([]edgeBounds, w*h),
		ver: make([]edgeBounds, w*h),
	}
	levels := ls.Values()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := g.At(x, y)
			if x < w-1 {
				b.hor[y*w+x] = edgeCrossings(levels, u, g.At(x+1, y))
			}
			if y < h-1 {
				b.ver[y*w+x] = edgeCrossings(levels, u, g.At(x, y+1))
			}
		}
	}

	return b
}

// edgeCrossings computes one edge record from the sample u at the edge's
// origin vertex and the sample v at its far end along the canonical
// direction.
func edgeCrossings(levels []float64, u, v float64) edgeBounds {
	lo, hi := u, v
	if lo > hi {
		lo, hi = hi, lo
	}
	// First level strictly above the low sample, last level at or below the
	// high one; bot > top encodes "no crossing".
	bot := sort.Search(len(levels), func(i int) bool { return levels[i] > lo })
	top := sort.Search(len(levels), func(i int) bool { return levels[i] > hi }) - 1

	slope := int8(-1)
	if v > u {
		slope = 1
	}

	return edgeBounds{bot: int32(bot), top: int32(top), slope: slope}
}

// edge returns the record for the edge leaving vertex (x, y) in direction d,
// or nil when that edge would leave the grid. Westward and southward probes
// resolve to the canonical record of the neighbouring vertex.
func (b *boundsGrid) edge(x, y int, d direction) *edgeBounds {
	switch d {
	case dirEast:
		if x < b.w-1 {
			return &b.hor[y*b.w+x]
		}
	case dirNorth:
		if y < b.h-1 {
			return &b.ver[y*b.w+x]
		}
	case dirWest:
		if x > 0 {
			return &b.hor[y*b.w+x-1]
		}
	case dirSouth:
		if y > 0 {
			return &b.ver[(y-1)*b.w+x]
		}
	}
	return nil
}
