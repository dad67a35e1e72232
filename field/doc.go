// Package field validates and wraps regularly sampled 2D scalar fields and
// derives the ascending list of contour levels to trace against them.
//
// What:
//
//   - Grid wraps a rectangular [][]float64 of finite samples (≥ 2×2),
//     deep-copied so the tracer can rely on it never changing underneath.
//   - LevelSet is a strictly ascending list of target values, either
//     generated from the grid extrema and a positive interval, or supplied
//     explicitly. Alongside it lives Delta, the numeric tie-break epsilon
//     (one ten-thousandth of the sample range) used throughout tracing.
//
// Why:
//
//   - Every downstream invariant of the tracer (crossing ranges, consumption
//     counters, interpolation guards) assumes a rectangular, finite grid and
//     sorted levels; failing fast here keeps the tracer free of input checks.
//
// Complexity:
//
//   - NewGrid:     O(mf×nf) time and memory (validation + deep copy).
//   - NewLevelSet: O(nCont) time and memory.
//
// Errors:
//
//   - ErrGridTooSmall:   fewer than 2 rows or 2 columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNonFinite:      a NaN or infinite sample or level value.
//   - ErrBadInterval:    contour interval ≤ 0 or non-finite.
//   - ErrNoLevels:       explicit level list is empty.
//   - ErrUnsortedLevels: explicit level list not strictly increasing.
package field
