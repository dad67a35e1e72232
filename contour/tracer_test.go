package contour_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/isolines/contour"
	"github.com/katalvlaran/isolines/field"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, samples [][]float64) *field.Grid {
	t.Helper()
	g, err := field.NewGrid(samples)
	require.NoError(t, err)
	return g
}

// traceAt runs a full session against explicit levels.
func traceAt(t *testing.T, samples [][]float64, levels ...float64) []contour.Contour {
	t.Helper()
	g := mustGrid(t, samples)
	ls, err := field.NewExplicitLevelSet(g, levels)
	require.NoError(t, err)
	curves, err := contour.Trace(g, ls, contour.DefaultOptions())
	require.NoError(t, err)
	return curves
}

// TracerSuite exercises the tracer on small terrains with known topology.
type TracerSuite struct {
	suite.Suite
}

// TestPeak verifies that a single central peak yields exactly one closed
// clockwise diamond whose points encircle the centre vertex.
func (s *TracerSuite) TestPeak() {
	curves := traceAt(s.T(), [][]float64{
		{0, 0, 0},
		{0, 10, 0},
		{0, 0, 0},
	}, 5)

	require.Len(s.T(), curves, 1)
	c := curves[0]
	require.True(s.T(), c.Closed)
	require.Equal(s.T(), contour.Clockwise, c.Winding)
	require.Equal(s.T(), contour.ExitNone, c.Exit)
	require.True(s.T(), c.EnclosesHigher())

	// Closed curves duplicate their first point; the four crossings sit on
	// the centre vertex's edges at the midpoints.
	require.Len(s.T(), c.Points, 5)
	require.Equal(s.T(), c.Points[0], c.Points[len(c.Points)-1])
	for _, p := range c.Points {
		require.InDelta(s.T(), 1, p.X, 0.5)
		require.InDelta(s.T(), 1, p.Y, 0.5)
	}
}

// TestPit verifies that a depression yields one closed counter-clockwise
// ring that does not enclose higher ground.
func (s *TracerSuite) TestPit() {
	curves := traceAt(s.T(), [][]float64{
		{9, 9, 9},
		{9, 0, 9},
		{9, 9, 9},
	}, 5)

	require.Len(s.T(), curves, 1)
	c := curves[0]
	require.True(s.T(), c.Closed)
	require.Equal(s.T(), contour.Counterclockwise, c.Winding)
	require.False(s.T(), c.EnclosesHigher())
	require.Len(s.T(), c.Points, 5)
	require.Equal(s.T(), c.Points[0], c.Points[len(c.Points)-1])
}

// TestRamp verifies that a left-to-right ramp yields exactly one open,
// approximately vertical curve entering through the bottom boundary and
// exiting through the top — never through the sides.
func (s *TracerSuite) TestRamp() {
	curves := traceAt(s.T(), [][]float64{
		{0, 5, 10},
		{0, 5, 10},
		{0, 5, 10},
	}, 5)

	require.Len(s.T(), curves, 1)
	c := curves[0]
	require.False(s.T(), c.Closed)
	require.Equal(s.T(), contour.ExitTop, c.Exit)
	require.Len(s.T(), c.Points, 3)

	require.InDelta(s.T(), 0, c.Points[0].Y, 1e-9, "curve should enter through the bottom")
	require.InDelta(s.T(), 2, c.Points[len(c.Points)-1].Y, 1e-9, "curve should exit through the top")
	for _, p := range c.Points {
		require.InDelta(s.T(), 1, p.X, 0.01, "crossings should hug the x=1 column")
	}
}

// TestFlat verifies that a constant field produces no curves for any level
// other than its value.
func (s *TracerSuite) TestFlat() {
	curves := traceAt(s.T(), [][]float64{
		{7, 7, 7},
		{7, 7, 7},
	}, 3, 8)
	require.Empty(s.T(), curves)
}

// TestSaddle verifies the deterministic resolution of a saddle cell: two
// open two-point curves, each hugging its own high corner.
func (s *TracerSuite) TestSaddle() {
	curves := traceAt(s.T(), [][]float64{
		{0, 9},
		{9, 0},
	}, 5)

	require.Len(s.T(), curves, 2)
	for _, c := range curves {
		require.False(s.T(), c.Closed)
		require.Len(s.T(), c.Points, 2)
	}
	require.Equal(s.T(), contour.ExitRight, curves[0].Exit)
	require.Equal(s.T(), contour.ExitLeft, curves[1].Exit)
}

// TestCornerClip verifies a single high corner: one open curve from the
// left boundary to the bottom boundary.
func (s *TracerSuite) TestCornerClip() {
	curves := traceAt(s.T(), [][]float64{
		{9, 0},
		{0, 0},
	}, 5)

	require.Len(s.T(), curves, 1)
	c := curves[0]
	require.False(s.T(), c.Closed)
	require.Len(s.T(), c.Points, 2)
	require.Equal(s.T(), contour.ExitBottom, c.Exit)
	require.InDelta(s.T(), 0, c.Points[0].X, 1e-9, "curve should enter through the left boundary")
}

func TestTracerSuite(t *testing.T) {
	suite.Run(t, new(TracerSuite))
}

//----------------------------------------------------------------------------//
// Property Tests
//----------------------------------------------------------------------------//

// rollingTerrain builds a deterministic multi-feature surface with peaks,
// pits and boundary-crossing curves.
func rollingTerrain(rows, cols int) [][]float64 {
	samples := make([][]float64, rows)
	for y := range samples {
		samples[y] = make([]float64, cols)
		for x := range samples[y] {
			fx, fy := float64(x), float64(y)
			samples[y][x] = 40*math.Sin(fx/3.1)*math.Cos(fy/2.7) + 15*math.Sin(fx/11+fy/7)
		}
	}
	return samples
}

// TestTrace_PointsWithinBounds checks that every point of every curve stays
// inside [0, nf-1] × [0, mf-1].
func TestTrace_PointsWithinBounds(t *testing.T) {
	g := mustGrid(t, rollingTerrain(33, 47))
	ls, err := field.NewLevelSet(g, 10)
	require.NoError(t, err)

	curves, err := contour.Trace(g, ls, contour.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, curves)

	xmax, ymax := float64(g.Cols()-1), float64(g.Rows()-1)
	for _, c := range curves {
		for _, p := range c.Points {
			require.GreaterOrEqual(t, p.X, 0.0)
			require.LessOrEqual(t, p.X, xmax)
			require.GreaterOrEqual(t, p.Y, 0.0)
			require.LessOrEqual(t, p.Y, ymax)
		}
	}
}

// TestTrace_Deterministic checks that two independent sessions over the same
// input produce identical curves: same order, same points.
func TestTrace_Deterministic(t *testing.T) {
	samples := rollingTerrain(25, 31)

	run := func() []contour.Contour {
		g := mustGrid(t, samples)
		ls, err := field.NewLevelSet(g, 12)
		require.NoError(t, err)
		curves, err := contour.Trace(g, ls, contour.DefaultOptions())
		require.NoError(t, err)
		return curves
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("traces differ (-first +second):\n%s", diff)
	}
}

// TestTrace_ConsumptionBudget checks that for a fixed level the number of
// interpolated points never exceeds the number of edges that level crosses.
func TestTrace_ConsumptionBudget(t *testing.T) {
	samples := rollingTerrain(21, 23)
	const level = 5.0

	g := mustGrid(t, samples)
	crossings := 0
	count := func(u, v float64) {
		if math.Min(u, v) < level && level <= math.Max(u, v) {
			crossings++
		}
	}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if x < g.Cols()-1 {
				count(g.At(x, y), g.At(x+1, y))
			}
			if y < g.Rows()-1 {
				count(g.At(x, y), g.At(x, y+1))
			}
		}
	}

	curves := traceAt(t, samples, level)
	points := 0
	for _, c := range curves {
		points += len(c.Points)
		if c.Closed {
			points-- // the duplicated closing point is not a crossing
		}
	}
	require.LessOrEqual(t, points, crossings)
	require.Greater(t, points, 0)
}

// TestTrace_WindingMatchesSignedArea checks closed-curve orientation against
// the shoelace formula: Counterclockwise iff the signed area is positive.
func TestTrace_WindingMatchesSignedArea(t *testing.T) {
	g := mustGrid(t, rollingTerrain(29, 35))
	ls, err := field.NewLevelSet(g, 9)
	require.NoError(t, err)

	curves, err := contour.Trace(g, ls, contour.DefaultOptions())
	require.NoError(t, err)

	closed := 0
	for _, c := range curves {
		if !c.Closed {
			continue
		}
		closed++
		area := 0.0
		for i := 1; i < len(c.Points); i++ {
			p, q := c.Points[i-1], c.Points[i]
			area += p.X*q.Y - q.X*p.Y
		}
		if math.Abs(area) < 1e-12 {
			continue // degenerate loop, orientation unconstrained
		}
		want := contour.Clockwise
		if area > 0 {
			want = contour.Counterclockwise
		}
		require.Equal(t, want, c.Winding, "level %d curve with area %v", c.Level, area)
	}
	require.Greater(t, closed, 0, "terrain should contain closed loops")
}

//----------------------------------------------------------------------------//
// Session API Tests
//----------------------------------------------------------------------------//

// TestNewSession_Errors verifies nil-input sentinels.
func TestNewSession_Errors(t *testing.T) {
	g := mustGrid(t, [][]float64{{0, 1}, {2, 3}})
	ls, err := field.NewExplicitLevelSet(g, []float64{1.5})
	require.NoError(t, err)

	_, err = contour.NewSession(nil, ls, contour.DefaultOptions())
	require.ErrorIs(t, err, contour.ErrNilGrid)
	_, err = contour.NewSession(g, nil, contour.DefaultOptions())
	require.ErrorIs(t, err, contour.ErrNilLevels)
}

// TestTraceLevel_IndexErrors verifies range checking on the level index.
func TestTraceLevel_IndexErrors(t *testing.T) {
	g := mustGrid(t, [][]float64{{0, 1}, {2, 3}})
	ls, err := field.NewExplicitLevelSet(g, []float64{1.5})
	require.NoError(t, err)
	s, err := contour.NewSession(g, ls, contour.DefaultOptions())
	require.NoError(t, err)

	for _, k := range []int{-1, 1, 99} {
		_, err := s.TraceLevel(k)
		require.ErrorIs(t, err, contour.ErrLevelIndex, "index %d", k)
	}
}

// TestTraceAll_Cancellation verifies that a done context stops the session
// at the level boundary.
func TestTraceAll_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := mustGrid(t, [][]float64{{0, 10}, {0, 10}})
	ls, err := field.NewLevelSet(g, 1)
	require.NoError(t, err)

	opts := contour.DefaultOptions()
	opts.Ctx = ctx
	s, err := contour.NewSession(g, ls, opts)
	require.NoError(t, err)

	curves, err := s.TraceAll()
	require.True(t, errors.Is(err, context.Canceled))
	require.Empty(t, curves)
}

// TestSession_ConsumptionPersists verifies that within one session a
// crossing claimed by a lower level is never reissued, while a fresh session
// starts from a rebuilt table.
func TestSession_ConsumptionPersists(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{0, 0, 0},
		{0, 10, 0},
		{0, 0, 0},
	})
	ls, err := field.NewExplicitLevelSet(g, []float64{5})
	require.NoError(t, err)

	s, err := contour.NewSession(g, ls, contour.DefaultOptions())
	require.NoError(t, err)

	first, err := s.TraceLevel(0)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Same session: all crossings already consumed.
	second, err := s.TraceLevel(0)
	require.NoError(t, err)
	require.Empty(t, second)

	// Fresh session: table rebuilt, curve traced again.
	s2, err := contour.NewSession(g, ls, contour.DefaultOptions())
	require.NoError(t, err)
	third, err := s2.TraceLevel(0)
	require.NoError(t, err)
	require.Len(t, third, 1)
}
