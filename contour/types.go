package contour

// Point is one curve vertex in continuous grid coordinate space: integer
// coordinates coincide with grid vertices.
type Point struct {
	X, Y float64
}

// Orientation is the rotational sense of a traced curve.
type Orientation int8

const (
	// Clockwise winding: a closed curve encloses higher ground (a peak).
	Clockwise Orientation = iota + 1
	// Counterclockwise winding: a closed curve encloses lower ground (a pit).
	Counterclockwise
)

// String returns "CW" or "CCW".
func (o Orientation) String() string {
	if o == Clockwise {
		return "CW"
	}
	return "CCW"
}

// ExitEdge classifies which grid boundary an open curve terminates through.
type ExitEdge int8

const (
	// ExitNone marks closed curves, which never leave the grid.
	ExitNone ExitEdge = iota
	// ExitLeft is the x = 0 boundary.
	ExitLeft
	// ExitTop is the y = mf-1 boundary.
	ExitTop
	// ExitRight is the x = nf-1 boundary.
	ExitRight
	// ExitBottom is the y = 0 boundary.
	ExitBottom
)

// String names the boundary edge.
func (e ExitEdge) String() string {
	switch e {
	case ExitLeft:
		return "left"
	case ExitTop:
		return "top"
	case ExitRight:
		return "right"
	case ExitBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Contour is one traced curve, tagged with the level it belongs to.
//
// A closed curve duplicates its first point as its last and reports the net
// winding of the loop; Exit is ExitNone. An open curve terminates at the
// grid boundary, Exit names the boundary edge it leaves through, and Winding
// reports the sign of the curve's accumulated turning.
type Contour struct {
	// Level is the index into the session's LevelSet.
	Level int
	// Value is the target field value of that level.
	Value float64
	// Points is the ordered curve in grid-vertex coordinate space.
	Points []Point
	// Closed reports whether the curve is a loop.
	Closed bool
	// Winding is the curve's orientation; see Orientation.
	Winding Orientation
	// Exit is the boundary edge an open curve leaves through (ExitNone when closed).
	Exit ExitEdge
}

// EnclosesHigher reports whether the curve is a closed loop around higher
// ground: a peak ring rather than a pit ring.
func (c *Contour) EnclosesHigher() bool {
	return c.Closed && c.Winding == Clockwise
}

// direction is a compass code for the four unit steps between grid vertices:
// east, north, west, south in counter-clockwise order.
type direction int8

const (
	dirEast direction = iota
	dirNorth
	dirWest
	dirSouth
)

// stepX and stepY map a direction to its unit step.
var (
	stepX = [4]int{1, 0, -1, 0}
	stepY = [4]int{0, 1, 0, -1}
)

// cw rotates one step clockwise (east → south → west → north).
func (d direction) cw() direction { return (d + 3) & 3 }

// ccw rotates one step counter-clockwise (east → north → west → south).
func (d direction) ccw() direction { return (d + 1) & 3 }
