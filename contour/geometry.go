package contour

import "math"

// defaultEdgeEpsilon is the coordinate tolerance for exit-edge
// classification.
const defaultEdgeEpsilon = 1e-9

// interpolate returns the fractional position t of a level crossing along a
// grid edge, measured from the endpoint with sample m1 toward the endpoint
// with sample m2. The crossing point is origin + t·(far − origin) per axis.
//
// An endpoint sample within delta of the level is nudged to the far side of
// the level, which keeps the crossing strictly inside the edge: a crossing
// exactly on a grid vertex would create ambiguous edge ownership, and on a
// boundary vertex would land outside the grid. Equal (possibly nudged)
// samples yield t = 0 rather than an undefined quotient, and |t| ≥ 1 is
// clamped just short of the far vertex.
func interpolate(m1, m2, level, delta float64) float64 {
	if math.Abs(level-m1) <= delta {
		if m2 < level {
			m1 = level + delta
		} else {
			m1 = level - delta
		}
	}
	if math.Abs(level-m2) <= delta {
		if m1 < level {
			m2 = level + delta
		} else {
			m2 = level - delta
		}
	}
	if m1 == m2 {
		return 0
	}

	t := (level - m1) / (m2 - m1)
	if math.Abs(t) >= 1 {
		// delta exceeds 1 only on value ranges wider than 10000 units.
		lim := 1 - delta
		if lim <= 0 {
			lim = 0.5
		}
		t = math.Copysign(lim, t)
	}

	return t
}

// classifyExitEdge names the grid boundary nearest to an open curve's final
// point: right, then top, then bottom take precedence, left is the default.
func classifyExitEdge(x, y, xmax, ymax, eps float64) ExitEdge {
	switch {
	case math.Abs(x-xmax) <= eps:
		return ExitRight
	case math.Abs(y-ymax) <= eps:
		return ExitTop
	case math.Abs(y) <= eps:
		return ExitBottom
	default:
		return ExitLeft
	}
}
