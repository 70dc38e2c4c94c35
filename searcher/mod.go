package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/YoussefOssamaa/Quoridor-Game/game"
)

// Difficulty selects one of the three strategies.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Hyperparameters for the strategies.

const WinScore = 1000.0  // Terminal score when the searching player has won
const LossScore = -WinScore

const DefaultDepth = 3     // Plies of lookahead for the hard strategy
const MediumWallSample = 20 // Wall candidates scored by the medium strategy
const HardWallSample = 10   // Wall candidates expanded per minimax node
const WallMargin = 1.5      // How much a wall must beat the best pawn move by
const PawnBias = 0.8        // Easy strategy's probability of moving the pawn

// Strategy picks the next move for one player. It reads the given state and
// mutates only private copies. The boolean is false when the player has no
// legal pawn move and no legal wall: a stall signal the caller must handle,
// never an error or a loop.
type Strategy interface {
	FindMove(state *game.GameState) (game.Move, bool)
}

type Option func(*config)

type config struct {
	rng      *rand.Rand
	depth    int
	samples  int
	evaluate game.Evaluate
	metrics  MetricsCollector
}

// WithRand injects a seeded source so move selection is reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithDepth overrides the hard strategy's lookahead.
func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

// WithWallSamples overrides how many wall candidates a search samples.
func WithWallSamples(samples int) Option {
	return func(c *config) {
		if samples > 0 {
			c.samples = samples
		}
	}
}

// WithEvaluate swaps the heuristic the medium and hard strategies score
// positions with.
func WithEvaluate(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

// WithMetrics attaches a collector to the medium and hard strategies.
func WithMetrics(collector MetricsCollector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

// New returns the strategy playing as player at the given difficulty. An
// unrecognized tag resolves to Medium so move selection stays total.
func New(player int, difficulty Difficulty, options ...Option) Strategy {
	c := &config{
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		depth:    DefaultDepth,
		evaluate: game.EvaluatePathDifference,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(c)
	}

	switch difficulty {
	case Easy:
		return &easy{player: player, rng: c.rng}
	case Medium:
		return newMedium(player, c)
	case Hard:
		samples := c.samples
		if samples == 0 {
			samples = HardWallSample
		}
		return &hard{
			player:   player,
			depth:    c.depth,
			samples:  samples,
			rng:      c.rng,
			evaluate: c.evaluate,
			metrics:  c.metrics,
			fallback: newMedium(player, c),
		}
	default:
		log.Warn().Str("difficulty", string(difficulty)).Msg("unknown difficulty, using medium")
		return newMedium(player, c)
	}
}

// sampleWalls picks up to limit candidates without replacement.
func sampleWalls(walls []game.Wall, limit int, rng *rand.Rand) []game.Wall {
	if len(walls) <= limit {
		return walls
	}
	sampled := make([]game.Wall, len(walls))
	copy(sampled, walls)
	rng.Shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})
	return sampled[:limit]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
