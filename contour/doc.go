// Package contour traces iso-contours over a validated scalar grid: for each
// requested level it emits zero or more curves along which the field equals
// that level, each either a closed loop or an open polyline exiting through
// the grid boundary.
//
// What:
//
//   - Session precomputes, once per (grid, level set) pair, which levels
//     cross each grid edge and with what slope sign, then consumes those
//     crossings level by level.
//   - TraceLevel walks the grid boundary-first: open curves are seeded from
//     perimeter edges (so each is emitted as a single piece), then a
//     row-major sweep picks up the remaining closed loops.
//   - Each curve is followed by a boundary walk that keeps the higher-valued
//     side of the field on the right of travel; a closed curve is detected
//     when the walk returns to the exact state (vertex, direction) at which
//     its first crossing was consumed.
//
// Why:
//
//   - Topographic maps: elevation contours with peak/pit classification.
//   - Imaging and simulation: iso-intensity and iso-value outlines.
//   - Any consumer that needs deterministic, non-overlapping level curves.
//
// Complexity:
//
//   - NewSession:  O(mf×nf × log nCont) time, O(mf×nf) memory (bounds table).
//   - TraceLevel:  O(mf×nf) per level; every crossing is consumed at most
//     once, which bounds total work across a whole session.
//
// Coordinates are continuous grid-vertex space: integer coordinates coincide
// with grid vertices, all points lie within [0, nf-1] × [0, mf-1]. Closed
// curves duplicate their first point at the end. Winding is Clockwise for
// loops that enclose higher ground (peaks) and Counterclockwise for pits.
//
// Errors:
//
//   - ErrNilGrid / ErrNilLevels: missing inputs at session construction.
//   - ErrLevelIndex: TraceLevel called with an out-of-range level index.
//   - context.Canceled / context.DeadlineExceeded: TraceAll stops between
//     level iterations if Options.Ctx is done; curves already finalized are
//     still returned.
package contour
