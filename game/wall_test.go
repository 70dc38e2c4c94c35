package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlocksMoveCoversBothEdges(t *testing.T) {
	t.Run("horizontal wall blocks both vertical edges in its span", func(t *testing.T) {
		walls := []Wall{{X: 3, Y: 3, Orientation: Horizontal}}

		require.True(t, BlocksMove(walls, Position{3, 3}, Position{3, 4}),
			"anchor column edge should be blocked")
		require.True(t, BlocksMove(walls, Position{4, 3}, Position{4, 4}),
			"the adjacent covered column should be blocked too")
		require.True(t, BlocksMove(walls, Position{3, 4}, Position{3, 3}),
			"blocking should be direction-independent")
		require.False(t, BlocksMove(walls, Position{2, 3}, Position{2, 4}),
			"columns outside the span should stay open")
		require.False(t, BlocksMove(walls, Position{5, 3}, Position{5, 4}),
			"columns outside the span should stay open")
	})

	t.Run("vertical wall blocks both horizontal edges in its span", func(t *testing.T) {
		walls := []Wall{{X: 3, Y: 4, Orientation: Vertical}}

		require.True(t, BlocksMove(walls, Position{3, 4}, Position{4, 4}),
			"anchor row edge should be blocked")
		require.True(t, BlocksMove(walls, Position{3, 3}, Position{4, 3}),
			"the adjacent covered row should be blocked too")
		require.False(t, BlocksMove(walls, Position{3, 5}, Position{4, 5}),
			"rows outside the span should stay open")
		require.False(t, BlocksMove(walls, Position{3, 2}, Position{4, 2}),
			"rows outside the span should stay open")
	})

	t.Run("walls of the other orientation do not block", func(t *testing.T) {
		walls := []Wall{{X: 3, Y: 3, Orientation: Vertical}}

		require.False(t, BlocksMove(walls, Position{3, 3}, Position{3, 4}),
			"a vertical wall should not block vertical movement")
	})
}

func TestWallAllowed(t *testing.T) {
	t.Run("overlap and crossing rejections", func(t *testing.T) {
		gs := NewGameState()
		gs.PlaceWall(0, Wall{X: 3, Y: 3, Orientation: Horizontal})

		require.False(t, gs.WallAllowed(Wall{X: 4, Y: 3, Orientation: Horizontal}),
			"same-orientation wall one slot along the axis overlaps")
		require.False(t, gs.WallAllowed(Wall{X: 2, Y: 3, Orientation: Horizontal}),
			"overlap rejection should be symmetric")
		require.False(t, gs.WallAllowed(Wall{X: 3, Y: 4, Orientation: Vertical}),
			"crossing wall shares the midpoint and must be rejected")
		require.False(t, gs.WallAllowed(Wall{X: 3, Y: 3, Orientation: Vertical}),
			"occupied slot is rejected regardless of orientation")
		require.True(t, gs.WallAllowed(Wall{X: 3, Y: 5, Orientation: Horizontal}),
			"a non-adjacent wall on the same column is fine")
	})

	t.Run("out of range anchors", func(t *testing.T) {
		gs := NewGameState()

		require.False(t, gs.WallAllowed(Wall{X: 8, Y: 0, Orientation: Horizontal}),
			"slot grid is one smaller than the board")
		require.False(t, gs.WallAllowed(Wall{X: 0, Y: 8, Orientation: Vertical}),
			"slot grid is one smaller than the board")
		require.False(t, gs.WallAllowed(Wall{X: -1, Y: 0, Orientation: Horizontal}),
			"negative anchors are off the slot grid")
	})

	t.Run("wall sealing a player off is rejected and reverted", func(t *testing.T) {
		gs := NewGameState()
		// Pocket the corner: H(0,0) closes the upward exits of (0,0) and
		// (1,0); the candidate V(1,0) would close the last sideways exit.
		gs.Players[0].Pos = Position{X: 0, Y: 0}
		gs.Walls = []Wall{{X: 0, Y: 0, Orientation: Horizontal}}
		before := gs.Hash()

		require.True(t, HasPathToGoal(gs, 0), "the sideways exit is still open")

		require.False(t, gs.WallAllowed(Wall{X: 1, Y: 0, Orientation: Vertical}),
			"closing the pocket would strand player 0")
		require.Equal(t, before, gs.Hash(),
			"the tentative wall must be reverted after a failed probe")

		require.True(t, gs.WallAllowed(Wall{X: 5, Y: 2, Orientation: Horizontal}),
			"an unrelated wall elsewhere is still legal")
		require.Equal(t, before, gs.Hash(),
			"the tentative wall must be reverted after a successful probe too")
	})
}

func TestWallPlacementsRespectsSupply(t *testing.T) {
	gs := NewGameState()
	gs.Players[0].WallsLeft = 0

	require.Empty(t, gs.WallPlacements(0), "no walls in hand means no placements")
	require.NotEmpty(t, gs.WallPlacements(1), "the opponent's supply is separate")
}
