package game

// Position is a cell on the grid. (0,0) is the top-left corner; player 0
// starts on row 0 and races toward row 8, player 1 the reverse.
type Position struct {
	X int
	Y int
}

// Directions lists the four orthogonal steps in a fixed order so move
// generation stays deterministic.
var Directions = [4]Position{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Position) OnBoard() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}
