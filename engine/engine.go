package engine

import (
	"github.com/rs/zerolog/log"

	"github.com/YoussefOssamaa/Quoridor-Game/game"
	"github.com/YoussefOssamaa/Quoridor-Game/searcher"
)

// Engine owns the authoritative game state. It sequences turns, gates every
// mutation through the rules engine, snapshots history around each attempt
// and detects wins. Every legality violation surfaces as a boolean
// rejection that leaves the state untouched.
type Engine struct {
	state      *game.GameState
	history    History
	strategies [2]searcher.Strategy
}

// New starts a fresh game.
func New() *Engine {
	return &Engine{state: game.NewGameState()}
}

// Reset restarts the game in place, keeping any configured AI strategies.
func (e *Engine) Reset() {
	e.state = game.NewGameState()
	e.history = History{}
	log.Info().Msg("game reset")
}

// State returns a snapshot of the authoritative state. Callers (AI search
// included) never alias the engine's own copy.
func (e *Engine) State() *game.GameState {
	return e.state.Copy()
}

func (e *Engine) CurrentPlayer() int {
	return e.state.CurrentPlayer
}

func (e *Engine) WallsLeft(player int) int {
	return e.state.Players[player].WallsLeft
}

// WallsPlaced counts the walls player has spent so far.
func (e *Engine) WallsPlaced(player int) int {
	return game.StartingWalls - e.state.Players[player].WallsLeft
}

// ValidPawnMoves lists the mover's legal pawn targets.
func (e *Engine) ValidPawnMoves() []game.Position {
	return e.state.PawnMoves(e.state.CurrentPlayer)
}

func (e *Engine) IsOver() bool {
	_, over := e.state.WinnerIndex()
	return over
}

// Winner is re-derived from the state on every call, so undoing a winning
// move clears it with no special casing.
func (e *Engine) Winner() (int, bool) {
	return e.state.WinnerIndex()
}

// MovePawn relocates the mover's pawn if pos is among their legal targets,
// then flips the turn. Returns false, with the state unchanged, otherwise.
func (e *Engine) MovePawn(pos game.Position) bool {
	e.history.Push(e.state)

	mover := e.state.CurrentPlayer
	if e.IsOver() || !containsPosition(e.state.PawnMoves(mover), pos) {
		e.history.Drop()
		log.Debug().Int("player", mover).Int("x", pos.X).Int("y", pos.Y).Msg("pawn move rejected")
		return false
	}

	e.state.MovePawn(mover, pos)
	e.state.EndTurn()
	e.history.Commit()

	log.Info().Int("player", mover).Int("x", pos.X).Int("y", pos.Y).Msg("pawn moved")
	if winner, over := e.state.WinnerIndex(); over {
		log.Info().Int("winner", winner).Msg("game over")
	}
	return true
}

// PlaceWall adds the wall if the mover still holds one and the placement is
// legal, spends it and flips the turn. Returns false, with the state
// unchanged, otherwise.
func (e *Engine) PlaceWall(x, y int, o game.Orientation) bool {
	e.history.Push(e.state)

	mover := e.state.CurrentPlayer
	wall := game.Wall{X: x, Y: y, Orientation: o}
	if e.IsOver() || e.state.Players[mover].WallsLeft <= 0 || !e.state.WallAllowed(wall) {
		e.history.Drop()
		log.Debug().Int("player", mover).Int("x", x).Int("y", y).Stringer("orientation", o).Msg("wall placement rejected")
		return false
	}

	e.state.PlaceWall(mover, wall)
	e.state.EndTurn()
	e.history.Commit()

	log.Info().Int("player", mover).Int("x", x).Int("y", y).Stringer("orientation", o).Msg("wall placed")
	return true
}

// Undo restores the prior snapshot. Win status needs no clearing because it
// is always re-derived.
func (e *Engine) Undo() bool {
	prev := e.history.Undo(e.state)
	if prev == nil {
		return false
	}
	e.state = prev
	return true
}

// Redo restores the next snapshot.
func (e *Engine) Redo() bool {
	next := e.history.Redo(e.state)
	if next == nil {
		return false
	}
	e.state = next
	return true
}

// ConfigureAI assigns a strategy to player. Unrecognized difficulty tags
// resolve to medium.
func (e *Engine) ConfigureAI(player int, difficulty searcher.Difficulty, options ...searcher.Option) {
	e.strategies[player] = searcher.New(player, difficulty, options...)
}

// AIMove asks the mover's configured strategy for a move over a snapshot of
// the authoritative state. The boolean is false when the mover has no
// strategy configured or is stalled with no legal action.
func (e *Engine) AIMove() (game.Move, bool) {
	strategy := e.strategies[e.state.CurrentPlayer]
	if strategy == nil {
		return nil, false
	}
	return strategy.FindMove(e.state.Copy())
}

// PlayAIMove finds and applies the mover's AI move through the same
// legality gate as a human submission.
func (e *Engine) PlayAIMove() bool {
	move, ok := e.AIMove()
	if !ok {
		return false
	}
	switch m := move.(type) {
	case game.PawnMove:
		return e.MovePawn(m.To)
	case game.WallMove:
		return e.PlaceWall(m.Wall.X, m.Wall.Y, m.Wall.Orientation)
	default:
		panic("unexpected move type")
	}
}

func containsPosition(positions []game.Position, pos game.Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}
