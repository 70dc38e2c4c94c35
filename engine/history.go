package engine

import "github.com/YoussefOssamaa/Quoridor-Game/game"

// History holds undo/redo stacks of full state snapshots. Every attempted
// mutation pushes a snapshot first; rejected attempts drop it again so no
// no-op is recorded, and only committed (accepted) mutations clear the redo
// stack.
type History struct {
	undo []*game.GameState
	redo []*game.GameState
}

// Push snapshots the pre-mutation state.
func (h *History) Push(gs *game.GameState) {
	h.undo = append(h.undo, gs.Copy())
}

// Drop discards the most recent snapshot after a rejected attempt, leaving
// the stacks exactly as they were.
func (h *History) Drop() {
	h.undo = h.undo[:len(h.undo)-1]
}

// Commit finalizes an accepted mutation by invalidating the redo stack.
func (h *History) Commit() {
	h.redo = nil
}

// Undo trades current for the prior snapshot, or returns nil when there is
// nothing to undo.
func (h *History) Undo(current *game.GameState) *game.GameState {
	if len(h.undo) == 0 {
		return nil
	}
	h.redo = append(h.redo, current.Copy())
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return top
}

// Redo trades current for the next snapshot, or returns nil when there is
// nothing to redo.
func (h *History) Redo(current *game.GameState) *game.GameState {
	if len(h.redo) == 0 {
		return nil
	}
	h.undo = append(h.undo, current.Copy())
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return top
}
