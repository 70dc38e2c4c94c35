package game

// EvaluatePathDifference scores gs for player as the opponent's remaining
// shortest path minus the player's own: positive when the player is closer
// to winning. A sealed-off side saturates at NoPath rather than erroring,
// so the score stays finite and comparable.
func EvaluatePathDifference(gs *GameState, player int) float64 {
	mine := ShortestPathLength(gs, player)
	theirs := ShortestPathLength(gs, Opponent(player))
	return float64(theirs - mine)
}
