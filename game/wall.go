package game

// Orientation is a wall's direction on the slot grid.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "H"
	}
	return "V"
}

// Wall is an immutable blocking segment anchored at a slot. A wall spans two
// cell widths, so each wall blocks two unit edges of the movement graph:
//
//	H(x,y) blocks the vertical edges (x,y)-(x,y+1) and (x+1,y)-(x+1,y+1)
//	V(x,y) blocks the horizontal edges (x,y-1)-(x+1,y-1) and (x,y)-(x+1,y)
//
// Under this anchoring the segments of H(x,y) and V(x,y+1) cross at their
// shared midpoint, which is the crossing pair the placement rules reject.
type Wall struct {
	X           int
	Y           int
	Orientation Orientation
}

// InRange reports whether the anchor lies on the slot grid.
func (w Wall) InRange() bool {
	return w.X >= 0 && w.X < BoardSize-1 && w.Y >= 0 && w.Y < BoardSize-1
}

// Conflicts reports whether w and other cannot coexist: same slot in either
// orientation, same-orientation neighbors one slot apart along the wall's
// own axis (their spans would share an edge), or the crossing pair.
func (w Wall) Conflicts(other Wall) bool {
	if w.X == other.X && w.Y == other.Y {
		return true
	}
	if w.Orientation == other.Orientation {
		if w.Orientation == Horizontal {
			return w.Y == other.Y && abs(w.X-other.X) == 1
		}
		return w.X == other.X && abs(w.Y-other.Y) == 1
	}
	if w.Orientation == Horizontal {
		return other.X == w.X && other.Y == w.Y+1
	}
	return other.X == w.X && other.Y == w.Y-1
}

// BlocksMove reports whether any wall in walls blocks the single step
// between two adjacent cells. Both edges covered by a wall's span count,
// not only the one at its anchor.
func BlocksMove(walls []Wall, from, to Position) bool {
	if from.X != to.X { // horizontal step, vertical walls block
		left := min(from.X, to.X)
		return hasWall(walls, Wall{X: left, Y: from.Y, Orientation: Vertical}) ||
			hasWall(walls, Wall{X: left, Y: from.Y + 1, Orientation: Vertical})
	}
	if from.Y != to.Y { // vertical step, horizontal walls block
		top := min(from.Y, to.Y)
		return hasWall(walls, Wall{X: from.X, Y: top, Orientation: Horizontal}) ||
			hasWall(walls, Wall{X: from.X - 1, Y: top, Orientation: Horizontal})
	}
	return false
}

func hasWall(walls []Wall, w Wall) bool {
	for _, placed := range walls {
		if placed == w {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
