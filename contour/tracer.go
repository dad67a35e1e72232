package contour

import (
	"context"
	"fmt"

	"github.com/katalvlaran/isolines/field"
)

// Options configures a tracing session.
//   - Ctx: checked between level iterations in TraceAll; nil defaults to
//     context.Background(). Cancelling mid-curve is unsafe (a curve is only
//     valid once finalized), so the per-level boundary is the only
//     suspension point.
//   - EdgeEpsilon: coordinate tolerance for exit-edge classification
//     (default 1e-9).
type Options struct {
	Ctx         context.Context
	EdgeEpsilon float64
}

// DefaultOptions returns Options with the default epsilon and no context.
func DefaultOptions() Options {
	return Options{EdgeEpsilon: defaultEdgeEpsilon}
}

// normalize fills zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.EdgeEpsilon <= 0 {
		o.EdgeEpsilon = defaultEdgeEpsilon
	}
}

// Session owns one multi-level trace over a fixed grid and level set: the
// bounds table is built once at construction and its consumption counters
// persist across TraceLevel calls. A session must not be reused after the
// grid data changes — build a new one, which rebuilds (not resets) the
// table.
type Session struct {
	grid   *field.Grid
	levels *field.LevelSet
	bounds *boundsGrid
	opts   Options
}

// NewSession precomputes the per-edge crossing table for the given grid and
// level set.
// Returns ErrNilGrid or ErrNilLevels on missing inputs.
// Complexity: O(mf×nf × log nCont) time, O(mf×nf) memory.
func NewSession(g *field.Grid, ls *field.LevelSet, opts Options) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if ls == nil {
		return nil, ErrNilLevels
	}
	opts.normalize()

	return &Session{
		grid:   g,
		levels: ls,
		bounds: buildBounds(g, ls),
		opts:   opts,
	}, nil
}

// Trace is the one-shot convenience wrapper: build a session and trace every
// level in ascending order.
func Trace(g *field.Grid, ls *field.LevelSet, opts Options) ([]Contour, error) {
	s, err := NewSession(g, ls, opts)
	if err != nil {
		return nil, err
	}
	return s.TraceAll()
}

// TraceAll traces every level of the session's LevelSet in ascending index
// order and returns the combined curves.
//
// Options.Ctx is consulted between level iterations; on cancellation the
// context error is returned together with the curves finalized so far, and
// the remaining levels can still be traced individually via TraceLevel.
func (s *Session) TraceAll() ([]Contour, error) {
	var out []Contour
	for k := 0; k < s.levels.Count(); k++ {
		if err := s.opts.Ctx.Err(); err != nil {
			return out, err
		}
		curves, err := s.TraceLevel(k)
		if err != nil {
			return out, err
		}
		out = append(out, curves...)
	}
	return out, nil
}

// TraceLevel traces all curves of level index k, consuming their crossings
// in the session's bounds table.
//
// Steps:
//  1. Seed open curves from the grid perimeter (bottom, right, top, left).
//     The stored slope sign picks, for each boundary crossing, the end
//     whose walk heads into the grid, so every open curve is emitted as a
//     single piece.
//  2. Sweep the remaining vertices row by row upward; any crossing still
//     unconsumed belongs to a closed loop, which the walk follows back to
//     its starting state.
//
// Returns ErrLevelIndex when k is outside [0, LevelSet.Count()).
// Complexity: O(mf×nf) time; each crossing of level k is interpolated and
// consumed at most once.
func (s *Session) TraceLevel(k int) ([]Contour, error) {
	if k < 0 || k >= s.levels.Count() {
		return nil, fmt.Errorf("contour: level %d: %w", k, ErrLevelIndex)
	}

	t := &tracer{s: s, k: k, value: s.levels.Value(k)}
	t.seedPerimeter()
	t.sweepInterior()

	return t.out, nil
}

// tracer is the traversal context for a single level: the session under
// trace, the level being consumed, and the curves finalized so far.
type tracer struct {
	s     *Session
	k     int
	value float64
	out   []Contour
}

// walk is the state of one curve being followed: the cursor vertex (always
// on the higher-valued side of the curve), the probe direction, the anchor
// state at which the first crossing was consumed, the points so far and the
// running winding sum.
type walk struct {
	x, y       int
	dir        direction
	anchorX    int
	anchorY    int
	anchorDir  direction
	pts        []Point
	windingSum float64
}

// push appends a point and accumulates the shoelace cross term of the new
// segment into the winding sum.
func (w *walk) push(p Point) {
	if n := len(w.pts); n > 0 {
		q := w.pts[n-1]
		w.windingSum += q.X*p.Y - p.X*q.Y
	}
	w.pts = append(w.pts, p)
}

// seedPerimeter starts a walk at every boundary crossing whose trace heads
// into the grid. On each border that is the end where the lower-valued side
// sits to the left of the inward travel direction; the stored slope sign
// encodes exactly that.
func (t *tracer) seedPerimeter() {
	b := t.s.bounds
	w, h := b.w, b.h

	// Bottom border: rising edges walk north into the grid.
	for x := 0; x < w-1; x++ {
		if e := &b.hor[x]; e.available(t.k) && e.slope > 0 {
			t.follow(x+1, 0, dirWest)
		}
	}
	// Right border: rising edges walk west.
	for y := 0; y < h-1; y++ {
		if e := &b.ver[y*w+w-1]; e.available(t.k) && e.slope > 0 {
			t.follow(w-1, y+1, dirSouth)
		}
	}
	// Top border: falling edges walk south.
	for x := 0; x < w-1; x++ {
		if e := &b.hor[(h-1)*w+x]; e.available(t.k) && e.slope < 0 {
			t.follow(x, h-1, dirEast)
		}
	}
	// Left border: falling edges walk east.
	for y := 0; y < h-1; y++ {
		if e := &b.ver[y*w]; e.available(t.k) && e.slope < 0 {
			t.follow(0, y, dirNorth)
		}
	}
}

// sweepInterior visits every vertex row by row upward and starts a walk at
// each crossing the perimeter pass left unconsumed. Open curves have all
// been consumed by then, so these are closed loops; the slope sign selects
// the higher-valued endpoint as the cursor.
func (t *tracer) sweepInterior() {
	b := t.s.bounds
	w, h := b.w, b.h

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w-1 {
				if e := &b.hor[y*w+x]; e.available(t.k) {
					if e.slope > 0 {
						t.follow(x+1, y, dirWest)
					} else {
						t.follow(x, y, dirEast)
					}
				}
			}
			if y < h-1 {
				if e := &b.ver[y*w+x]; e.available(t.k) {
					if e.slope > 0 {
						t.follow(x, y+1, dirSouth)
					} else {
						t.follow(x, y, dirNorth)
					}
				}
			}
		}
	}
}

// follow traces one curve from a seed state: cursor (cx, cy) on the
// higher-valued endpoint of an available crossing edge, probing toward the
// lower endpoint.
//
// Each step probes the edge leaving the cursor in the current direction:
//
//   - Neighbour out of range: the curve exits the grid — finalize open.
//   - Neighbour on the high side (sample ≥ level): step onto it and turn the
//     probe counter-clockwise of the travel direction, which keeps the walk
//     hugging the lower side on its left.
//   - Neighbour on the low side: the edge carries this level's crossing.
//     Returning to the anchor state closes the loop; otherwise interpolate
//     the crossing point, consume it and rotate the probe clockwise.
func (t *tracer) follow(cx, cy int, d direction) {
	g := t.s.grid
	w := walk{x: cx, y: cy, dir: d, anchorX: cx, anchorY: cy, anchorDir: d}

	// A walk visits each vertex at most once per direction.
	maxSteps := 4*g.Cols()*g.Rows() + 8

	for step := 0; step < maxSteps; step++ {
		nx, ny := w.x+stepX[w.dir], w.y+stepY[w.dir]
		if !g.InBounds(nx, ny) {
			t.finish(&w, false)
			return
		}

		if g.At(nx, ny) >= t.value {
			w.x, w.y = nx, ny
			w.dir = w.dir.ccw()
			continue
		}

		if len(w.pts) > 0 && w.x == w.anchorX && w.y == w.anchorY && w.dir == w.anchorDir {
			w.push(w.pts[0])
			t.finish(&w, true)
			return
		}

		e := t.s.bounds.edge(w.x, w.y, w.dir)
		if !e.available(t.k) {
			// Cannot happen on a correctly seeded walk: a level's curves
			// share no edges. Close rather than loop.
			if len(w.pts) > 0 {
				w.push(w.pts[0])
			}
			t.finish(&w, true)
			return
		}

		frac := interpolate(g.At(w.x, w.y), g.At(nx, ny), t.value, t.s.levels.Delta())
		w.push(Point{
			X: float64(w.x) + frac*float64(nx-w.x),
			Y: float64(w.y) + frac*float64(ny-w.y),
		})
		e.consume(t.k)
		w.dir = w.dir.cw()
	}

	// Step budget exhausted: finalize what was gathered so the crossing
	// consumption stays consistent.
	t.finish(&w, true)
}

// finish converts a completed walk into a Contour and appends it to the
// level's output.
func (t *tracer) finish(w *walk, closed bool) {
	if len(w.pts) == 0 {
		return
	}

	c := Contour{
		Level:  t.k,
		Value:  t.value,
		Points: w.pts,
		Closed: closed,
	}
	if w.windingSum > 0 {
		c.Winding = Counterclockwise
	} else {
		c.Winding = Clockwise
	}
	if !closed {
		last := w.pts[len(w.pts)-1]
		c.Exit = classifyExitEdge(
			last.X, last.Y,
			float64(t.s.grid.Cols()-1), float64(t.s.grid.Rows()-1),
			t.s.opts.EdgeEpsilon,
		)
	}

	t.out = append(t.out, c)
}
