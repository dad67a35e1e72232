package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid is a rectangular, row-major field of finite scalar samples.
// It is immutable once built: NewGrid deep-copies its input, and the contour
// tracer only ever reads it. Coordinates are (x, y) with x indexing columns
// and y indexing rows, so integer coordinates coincide with grid vertices.
type Grid struct {
	rows, cols int
	samples    [][]float64
	minZ, maxZ float64
}

// NewGrid constructs a Grid from a rectangular 2D slice of finite samples.
// It deep-copies the input to ensure immutability and records the sample
// extrema for level derivation.
// Returns ErrGridTooSmall if the grid has fewer than 2 rows or 2 columns,
// ErrNonRectangular if any row length differs, and ErrNonFinite (wrapped
// with the offending coordinate) on NaN or infinite samples.
// Complexity: O(rows×cols) time and memory.
func NewGrid(samples [][]float64) (*Grid, error) {
	if len(samples) < 2 {
		return nil, ErrGridTooSmall
	}
	cols := len(samples[0])
	for _, row := range samples {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if cols < 2 {
		return nil, ErrGridTooSmall
	}

	rows := len(samples)
	copied := make([][]float64, rows)
	for y, row := range samples {
		for x, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("field: sample (%d,%d) = %v: %w", x, y, v, ErrNonFinite)
			}
		}
		copied[y] = make([]float64, cols)
		copy(copied[y], row)
	}

	g := &Grid{
		rows:    rows,
		cols:    cols,
		samples: copied,
		minZ:    math.Inf(1),
		maxZ:    math.Inf(-1),
	}
	for _, row := range copied {
		g.minZ = math.Min(g.minZ, floats.Min(row))
		g.maxZ = math.Max(g.maxZ, floats.Max(row))
	}

	return g, nil
}

// Rows returns the number of sample rows (the y extent is Rows()-1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of sample columns (the x extent is Cols()-1).
func (g *Grid) Cols() int { return g.cols }

// At returns the sample at column x, row y. The caller must keep (x, y)
// within bounds; see InBounds.
// Complexity: O(1).
func (g *Grid) At(x, y int) float64 { return g.samples[y][x] }

// InBounds reports whether (x, y) addresses a grid vertex.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// MinMax returns the smallest and largest sample in the grid.
// Complexity: O(1); the extrema are computed once during construction.
func (g *Grid) MinMax() (minZ, maxZ float64) { return g.minZ, g.maxZ }
