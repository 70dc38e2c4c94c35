package game

// BoardSize is the number of cells along each edge of the grid. Wall anchors
// live on the (BoardSize-1)x(BoardSize-1) slot grid between the cells.
const BoardSize = 9

// StartingWalls is each player's wall supply at game start.
const StartingWalls = 10

type StateHash uint64

// Move is one turn's action, of either class. The AI returns moves of the
// same shape a human submits.
type Move interface {
	isMove()
}

// PawnMove steps the mover's pawn to To.
type PawnMove struct {
	To Position
}

// WallMove places Wall and spends one of the mover's walls.
type WallMove struct {
	Wall Wall
}

func (PawnMove) isMove() {}
func (WallMove) isMove() {}

// Evaluate scores a state from player's perspective; higher is better for
// that player.
type Evaluate func(gs *GameState, player int) float64
