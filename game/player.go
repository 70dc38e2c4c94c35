package game

// Player is one side's pawn position, fixed goal row and wall supply.
type Player struct {
	Pos       Position
	GoalRow   int
	WallsLeft int
}

// Opponent returns the other player's index.
func Opponent(player int) int {
	return 1 - player
}
