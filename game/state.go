package game

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
)

// GameState represents the dynamic state of the game at any point: the two
// players in stable index order, the placed walls and whose turn it is. It
// is the unit of snapshotting for history and for AI search copies.
type GameState struct {
	Players       [2]Player
	Walls         []Wall
	CurrentPlayer int
}

// NewGameState returns the standard starting position: both pawns on the
// middle column of opposite edges, full wall supplies, player 0 to move.
func NewGameState() *GameState {
	return &GameState{
		Players: [2]Player{
			{Pos: Position{X: 4, Y: 0}, GoalRow: BoardSize - 1, WallsLeft: StartingWalls},
			{Pos: Position{X: 4, Y: BoardSize - 1}, GoalRow: 0, WallsLeft: StartingWalls},
		},
		CurrentPlayer: 0,
	}
}

// Copy returns a deep copy that shares nothing mutable with the original.
func (gs *GameState) Copy() *GameState {
	wallsCopy := make([]Wall, len(gs.Walls))
	copy(wallsCopy, gs.Walls)

	return &GameState{
		Players:       gs.Players,
		Walls:         wallsCopy,
		CurrentPlayer: gs.CurrentPlayer,
	}
}

// EndTurn passes the move to the other player.
func (gs *GameState) EndTurn() {
	gs.CurrentPlayer = Opponent(gs.CurrentPlayer)
}

// PawnMoves returns every legal pawn target for player: the four on-board,
// unblocked orthogonal neighbors, where a neighbor holding the opponent is
// replaced by the straight jump when its far cell is open, or else by the
// two perpendicular side-steps out of the opponent's cell.
func (gs *GameState) PawnMoves(player int) []Position {
	pos := gs.Players[player].Pos
	opp := gs.Players[Opponent(player)].Pos

	moves := make([]Position, 0, 5)
	for _, d := range Directions {
		next := pos.Add(d)
		if !next.OnBoard() || BlocksMove(gs.Walls, pos, next) {
			continue
		}

		if next != opp {
			moves = append(moves, next)
			continue
		}

		// The neighbor holds the opponent: an open straight jump replaces
		// this direction exclusively.
		jump := opp.Add(d)
		if jump.OnBoard() && !BlocksMove(gs.Walls, opp, jump) {
			moves = append(moves, jump)
			continue
		}

		sides := [2]Position{
			{X: opp.X + d.Y, Y: opp.Y + d.X},
			{X: opp.X - d.Y, Y: opp.Y - d.X},
		}
		for _, side := range sides {
			if side.OnBoard() && !BlocksMove(gs.Walls, opp, side) {
				moves = append(moves, side)
			}
		}
	}
	return moves
}

// WallPlacements returns every legal wall placement for player, or nothing
// when their supply is spent. This is the expensive enumeration: each
// candidate runs the path-existence probe for both players.
func (gs *GameState) WallPlacements(player int) []Wall {
	if gs.Players[player].WallsLeft <= 0 {
		return nil
	}

	var placements []Wall
	for x := 0; x < BoardSize-1; x++ {
		for y := 0; y < BoardSize-1; y++ {
			for _, o := range [2]Orientation{Horizontal, Vertical} {
				w := Wall{X: x, Y: y, Orientation: o}
				if gs.WallAllowed(w) {
					placements = append(placements, w)
				}
			}
		}
	}
	return placements
}

// WallAllowed reports whether w could legally be placed by whoever holds a
// wall: anchored in range, free of overlap and crossing conflicts, and
// leaving both players a path to their goal rows. The tentative wall is
// reverted regardless of outcome.
func (gs *GameState) WallAllowed(w Wall) bool {
	if !w.InRange() {
		return false
	}
	for _, placed := range gs.Walls {
		if w.Conflicts(placed) {
			return false
		}
	}

	gs.Walls = append(gs.Walls, w)
	ok := HasPathToGoal(gs, 0) && HasPathToGoal(gs, 1)
	gs.Walls = gs.Walls[:len(gs.Walls)-1]

	return ok
}

// MovePawn relocates player's pawn and returns the previous position so a
// caller can apply the exact inverse. Legality is the caller's concern.
func (gs *GameState) MovePawn(player int, to Position) Position {
	prev := gs.Players[player].Pos
	gs.Players[player].Pos = to
	return prev
}

// PlaceWall appends w and spends one of player's walls. Legality is the
// caller's concern.
func (gs *GameState) PlaceWall(player int, w Wall) {
	gs.Walls = append(gs.Walls, w)
	gs.Players[player].WallsLeft--
}

// RemoveLastWall reverts the most recent PlaceWall by player.
func (gs *GameState) RemoveLastWall(player int) {
	gs.Walls = gs.Walls[:len(gs.Walls)-1]
	gs.Players[player].WallsLeft++
}

// WinnerIndex returns the player standing on their goal row, if any.
func (gs *GameState) WinnerIndex() (int, bool) {
	for i, p := range gs.Players {
		if p.Pos.Y == p.GoalRow {
			return i, true
		}
	}
	return 0, false
}

// Hash fingerprints the snapshot: players, turn and wall set. Wall
// insertion order does not affect the result.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))

	for _, p := range gs.Players {
		binary.Write(hasher, binary.LittleEndian, int64(p.Pos.X))
		binary.Write(hasher, binary.LittleEndian, int64(p.Pos.Y))
		binary.Write(hasher, binary.LittleEndian, int64(p.WallsLeft))
	}

	walls := make([]Wall, len(gs.Walls))
	copy(walls, gs.Walls)
	sort.Slice(walls, func(i, j int) bool {
		if walls[i].X != walls[j].X {
			return walls[i].X < walls[j].X
		}
		if walls[i].Y != walls[j].Y {
			return walls[i].Y < walls[j].Y
		}
		return walls[i].Orientation < walls[j].Orientation
	})
	for _, w := range walls {
		binary.Write(hasher, binary.LittleEndian, int64(w.X))
		binary.Write(hasher, binary.LittleEndian, int64(w.Y))
		binary.Write(hasher, binary.LittleEndian, int64(w.Orientation))
	}

	return StateHash(hasher.Sum64())
}
