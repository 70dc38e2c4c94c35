package searcher

import (
	"golang.org/x/exp/rand"

	"github.com/YoussefOssamaa/Quoridor-Game/game"
)

// easy mostly walks its pawn toward the goal row and occasionally drops a
// wall at random.
type easy struct {
	player int
	rng    *rand.Rand
}

func (s *easy) FindMove(state *game.GameState) (game.Move, bool) {
	gs := state.Copy()

	if s.rng.Float64() < PawnBias || gs.Players[s.player].WallsLeft == 0 {
		return s.forwardMove(gs)
	}

	walls := gs.WallPlacements(s.player)
	if len(walls) == 0 {
		// No legal wall anywhere, move instead.
		moves := gs.PawnMoves(s.player)
		if len(moves) == 0 {
			return nil, false
		}
		return game.PawnMove{To: moves[s.rng.Intn(len(moves))]}, true
	}
	return game.WallMove{Wall: walls[s.rng.Intn(len(walls))]}, true
}

// forwardMove picks uniformly among pawn moves that strictly shrink the row
// distance to goal, falling back to any legal pawn move.
func (s *easy) forwardMove(gs *game.GameState) (game.Move, bool) {
	moves := gs.PawnMoves(s.player)
	if len(moves) == 0 {
		return nil, false
	}

	p := gs.Players[s.player]
	var forward []game.Position
	for _, m := range moves {
		if abs(m.Y-p.GoalRow) < abs(p.Pos.Y-p.GoalRow) {
			forward = append(forward, m)
		}
	}
	if len(forward) == 0 {
		forward = moves
	}
	return game.PawnMove{To: forward[s.rng.Intn(len(forward))]}, true
}
