package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPawnMoves(t *testing.T) {
	t.Run("starting position for player 0", func(t *testing.T) {
		gs := NewGameState()

		require.ElementsMatch(t,
			[]Position{{3, 0}, {5, 0}, {4, 1}},
			gs.PawnMoves(0),
			"three neighbors: the fourth is off the board")
	})

	t.Run("open board in the middle", func(t *testing.T) {
		gs := NewGameState()
		gs.Players[0].Pos = Position{X: 4, Y: 4}

		require.ElementsMatch(t,
			[]Position{{5, 4}, {3, 4}, {4, 5}, {4, 3}},
			gs.PawnMoves(0))
	})

	t.Run("adjacent opponent with open far cell allows only the straight jump", func(t *testing.T) {
		gs := NewGameState()
		gs.Players[0].Pos = Position{X: 4, Y: 4}
		gs.Players[1].Pos = Position{X: 4, Y: 5}

		moves := gs.PawnMoves(0)
		require.ElementsMatch(t,
			[]Position{{5, 4}, {3, 4}, {4, 6}, {4, 3}},
			moves,
			"the jump replaces the blocked direction exclusively")
		require.NotContains(t, moves, Position{4, 5}, "the opponent's cell is never a target")
	})

	t.Run("wall behind opponent opens exactly the two side-steps", func(t *testing.T) {
		gs := NewGameState()
		gs.Players[0].Pos = Position{X: 4, Y: 4}
		gs.Players[1].Pos = Position{X: 4, Y: 5}
		// H(4,5) blocks the jump landing edge (4,5)-(4,6).
		gs.Walls = []Wall{{X: 4, Y: 5, Orientation: Horizontal}}

		require.ElementsMatch(t,
			[]Position{{5, 4}, {3, 4}, {5, 5}, {3, 5}, {4, 3}},
			gs.PawnMoves(0))
	})

	t.Run("blocked side-step drops out", func(t *testing.T) {
		gs := NewGameState()
		gs.Players[0].Pos = Position{X: 4, Y: 4}
		gs.Players[1].Pos = Position{X: 4, Y: 5}
		gs.Walls = []Wall{
			{X: 3, Y: 5, Orientation: Horizontal}, // blocks the jump landing edge
			{X: 4, Y: 5, Orientation: Vertical},   // blocks east moves at rows 4 and 5
		}

		require.ElementsMatch(t,
			[]Position{{3, 4}, {3, 5}, {4, 3}},
			gs.PawnMoves(0),
			"the east side-step and the east neighbor are both walled off")
	})

	t.Run("jump off the board edge falls back to side-steps", func(t *testing.T) {
		gs := NewGameState()
		gs.Players[0].Pos = Position{X: 4, Y: 7}
		gs.Players[1].Pos = Position{X: 4, Y: 8}

		require.ElementsMatch(t,
			[]Position{{5, 7}, {3, 7}, {5, 8}, {3, 8}, {4, 6}},
			gs.PawnMoves(0))
	})

	t.Run("no legal move ever lands on the opponent", func(t *testing.T) {
		gs := NewGameState()
		gs.Players[0].Pos = Position{X: 4, Y: 4}
		gs.Players[1].Pos = Position{X: 5, Y: 4}

		for _, player := range []int{0, 1} {
			opp := gs.Players[Opponent(player)].Pos
			require.NotContains(t, gs.PawnMoves(player), opp)
		}
	})
}

func TestCopyIsIndependent(t *testing.T) {
	gs := NewGameState()
	gs.PlaceWall(0, Wall{X: 2, Y: 2, Orientation: Vertical})

	snapshot := gs.Copy()
	require.Equal(t, gs.Hash(), snapshot.Hash(), "a copy starts identical")

	gs.MovePawn(0, Position{X: 4, Y: 1})
	gs.PlaceWall(1, Wall{X: 6, Y: 6, Orientation: Horizontal})
	gs.CurrentPlayer = 1

	require.Equal(t, Position{X: 4, Y: 0}, snapshot.Players[0].Pos, "pawns do not alias")
	require.Len(t, snapshot.Walls, 1, "wall slices do not alias")
	require.Equal(t, 0, snapshot.CurrentPlayer)
}

func TestMutatorsInvert(t *testing.T) {
	gs := NewGameState()
	before := gs.Hash()

	prev := gs.MovePawn(0, Position{X: 4, Y: 1})
	gs.MovePawn(0, prev)
	require.Equal(t, before, gs.Hash(), "MovePawn plus its inverse is a no-op")

	gs.PlaceWall(1, Wall{X: 5, Y: 5, Orientation: Vertical})
	gs.RemoveLastWall(1)
	require.Equal(t, before, gs.Hash(), "PlaceWall plus RemoveLastWall is a no-op")
	require.Equal(t, StartingWalls, gs.Players[1].WallsLeft)

	gs.EndTurn()
	require.Equal(t, 1, gs.CurrentPlayer, "EndTurn flips the mover")
	gs.EndTurn()
	require.Equal(t, before, gs.Hash(), "EndTurn twice is a no-op")
}

func TestHash(t *testing.T) {
	t.Run("wall insertion order does not matter", func(t *testing.T) {
		a := NewGameState()
		a.Walls = []Wall{
			{X: 1, Y: 1, Orientation: Horizontal},
			{X: 5, Y: 5, Orientation: Vertical},
		}
		b := NewGameState()
		b.Walls = []Wall{
			{X: 5, Y: 5, Orientation: Vertical},
			{X: 1, Y: 1, Orientation: Horizontal},
		}

		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("turn and positions matter", func(t *testing.T) {
		a := NewGameState()
		b := NewGameState()
		b.CurrentPlayer = 1
		require.NotEqual(t, a.Hash(), b.Hash(), "turn is part of the snapshot")

		c := NewGameState()
		c.Players[0].Pos = Position{X: 4, Y: 1}
		require.NotEqual(t, a.Hash(), c.Hash(), "positions are part of the snapshot")
	})
}

func TestWinnerIndex(t *testing.T) {
	gs := NewGameState()
	_, over := gs.WinnerIndex()
	require.False(t, over, "nobody has won at the start")

	gs.Players[1].Pos = Position{X: 3, Y: 0}
	winner, over := gs.WinnerIndex()
	require.True(t, over)
	require.Equal(t, 1, winner)
}
