package game

// NoPath is returned when walls seal a player off from their goal row. It
// exceeds any reachable distance on the grid.
const NoPath = BoardSize * BoardSize

// ShortestPathLength returns the minimum number of orthogonal steps from
// player's pawn to any cell on their goal row, or NoPath. The search runs
// on the wall-constrained grid alone and ignores the opponent's pawn:
// jump and side-step rules only ever add move options, never remove
// reachability.
func ShortestPathLength(gs *GameState, player int) int {
	p := gs.Players[player]

	type cell struct {
		pos  Position
		dist int
	}
	var visited [BoardSize][BoardSize]bool
	visited[p.Pos.X][p.Pos.Y] = true
	queue := []cell{{pos: p.Pos}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.pos.Y == p.GoalRow {
			return cur.dist
		}

		for _, d := range Directions {
			next := cur.pos.Add(d)
			if !next.OnBoard() || visited[next.X][next.Y] {
				continue
			}
			if BlocksMove(gs.Walls, cur.pos, next) {
				continue
			}
			visited[next.X][next.Y] = true
			queue = append(queue, cell{pos: next, dist: cur.dist + 1})
		}
	}

	return NoPath
}

// HasPathToGoal reports whether player can still reach their goal row.
func HasPathToGoal(gs *GameState, player int) bool {
	return ShortestPathLength(gs, player) != NoPath
}
