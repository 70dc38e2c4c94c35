package searcher

import (
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/YoussefOssamaa/Quoridor-Game/game"
)

// hard runs fixed-depth minimax with alpha-beta pruning, leaf-scored by the
// configured evaluator. Each node expands all legal pawn moves plus a
// sampled set of wall placements; pruning cuts off the rest of a node's
// expansion across both move classes. When the search surfaces no move it
// falls back to the medium strategy.
type hard struct {
	player   int
	depth    int
	samples  int
	rng      *rand.Rand
	evaluate game.Evaluate
	metrics  MetricsCollector
	fallback *medium
}

func (s *hard) FindMove(state *game.GameState) (game.Move, bool) {
	s.metrics.Start()
	gs := state.Copy()
	_, move := s.minimax(gs, s.depth, math.Inf(-1), math.Inf(1), true)
	metric := s.metrics.Complete()

	log.Debug().
		Int("player", s.player).
		Dur("duration", metric.Duration).
		Int64("nodes", metric.Nodes).
		Int64("leaf_evals", metric.LeafEvals).
		Int64("cutoffs", metric.Cutoffs).
		Msg("minimax search complete")

	if move != nil {
		return move, true
	}
	return s.fallback.FindMove(state)
}

// minimax searches gs to the given remaining depth. The maximizing side is
// always s.player; the mover alternates strictly with depth. Mutations ride
// an undo-log: each move is applied, recursed on, then exactly reverted, so
// no per-node copies are made.
func (s *hard) minimax(gs *game.GameState, depth int, alpha, beta float64, maximizing bool) (float64, game.Move) {
	if depth == 0 {
		s.metrics.AddLeafEval()
		return s.evaluate(gs, s.player), nil
	}

	// Terminal positions score before any expansion.
	if winner, over := gs.WinnerIndex(); over {
		if winner == s.player {
			return WinScore, nil
		}
		return LossScore, nil
	}

	s.metrics.AddNode()

	mover := s.player
	best := math.Inf(-1)
	if !maximizing {
		mover = game.Opponent(s.player)
		best = math.Inf(1)
	}
	var bestMove game.Move

	better := func(score float64) bool {
		if maximizing {
			return score > best
		}
		return score < best
	}

	for _, move := range gs.PawnMoves(mover) {
		prev := gs.MovePawn(mover, move)
		score, _ := s.minimax(gs, depth-1, alpha, beta, !maximizing)
		gs.MovePawn(mover, prev)

		if better(score) {
			best = score
			bestMove = game.PawnMove{To: move}
		}
		if maximizing {
			alpha = math.Max(alpha, score)
		} else {
			beta = math.Min(beta, score)
		}
		if beta <= alpha {
			s.metrics.AddCutoff()
			return best, bestMove
		}
	}

	if gs.Players[mover].WallsLeft > 0 {
		for _, wall := range sampleWalls(gs.WallPlacements(mover), s.samples, s.rng) {
			gs.PlaceWall(mover, wall)
			score, _ := s.minimax(gs, depth-1, alpha, beta, !maximizing)
			gs.RemoveLastWall(mover)

			if better(score) {
				best = score
				bestMove = game.WallMove{Wall: wall}
			}
			if maximizing {
				alpha = math.Max(alpha, score)
			} else {
				beta = math.Min(beta, score)
			}
			if beta <= alpha {
				s.metrics.AddCutoff()
				return best, bestMove
			}
		}
	}

	return best, bestMove
}
