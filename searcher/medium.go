package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/YoussefOssamaa/Quoridor-Game/game"
)

// medium greedily maximizes the configured heuristic one move ahead.
// It scores every pawn move and a sampled set of walls, and spends a wall
// only when it beats the best pawn move by more than WallMargin: the margin
// biases toward pawn tempo, reserving walls for clear advantage.
type medium struct {
	player   int
	samples  int
	rng      *rand.Rand
	evaluate game.Evaluate
	metrics  MetricsCollector
}

func newMedium(player int, c *config) *medium {
	samples := c.samples
	if samples == 0 {
		samples = MediumWallSample
	}
	return &medium{
		player:   player,
		samples:  samples,
		rng:      c.rng,
		evaluate: c.evaluate,
		metrics:  c.metrics,
	}
}

func (s *medium) FindMove(state *game.GameState) (game.Move, bool) {
	s.metrics.Start()
	gs := state.Copy()

	bestPawnScore := math.Inf(-1)
	var bestPawn game.Position
	havePawn := false
	for _, move := range gs.PawnMoves(s.player) {
		prev := gs.MovePawn(s.player, move)
		score := s.evaluate(gs, s.player)
		gs.MovePawn(s.player, prev)
		s.metrics.AddLeafEval()

		if score > bestPawnScore {
			bestPawnScore = score
			bestPawn = move
			havePawn = true
		}
	}

	bestWallScore := math.Inf(-1)
	var bestWall game.Wall
	haveWall := false
	if gs.Players[s.player].WallsLeft > 0 {
		for _, wall := range sampleWalls(gs.WallPlacements(s.player), s.samples, s.rng) {
			gs.PlaceWall(s.player, wall)
			score := s.evaluate(gs, s.player)
			gs.RemoveLastWall(s.player)
			s.metrics.AddLeafEval()

			if score > bestWallScore {
				bestWallScore = score
				bestWall = wall
				haveWall = true
			}
		}
	}
	s.metrics.Complete()

	if haveWall && bestWallScore > bestPawnScore+WallMargin {
		return game.WallMove{Wall: bestWall}, true
	}
	if havePawn {
		return game.PawnMove{To: bestPawn}, true
	}
	return nil, false
}
