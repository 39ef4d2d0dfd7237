package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stones/game"
)

func TestMCTSSingleLegalMove(t *testing.T) {
	// One empty cell left: even a budget of a single simulation must
	// return that cell.
	b := game.NewBoard(3)
	colors := []game.Color{
		game.Black, game.White, game.Black,
		game.White, game.Black, game.White,
		game.Black, game.White,
	}
	i := 0
	for y := 0; y < 3 && i < len(colors); y++ {
		for x := 0; x < 3 && i < len(colors); x++ {
			b.Place(x, y, colors[i])
			i++
		}
	}

	m := NewMCTS(WithSimulations(1))
	move, ok := m.FindMove(b, game.NewGomokuRules(), game.Black)

	require.True(t, ok)
	require.Equal(t, game.Move{X: 2, Y: 2}, move)
}

func TestMCTSNoLegalMove(t *testing.T) {
	b := game.NewBoard(8)
	// Reversi with an all-black region: white cannot bracket anything.
	b.Place(0, 0, game.Black)
	b.Place(1, 0, game.Black)
	b.Place(0, 1, game.Black)

	m := NewMCTS(WithSimulations(5))
	_, ok := m.FindMove(b, game.NewReversiRules(), game.White)

	require.False(t, ok, "No legal move should report none, not fail")
}

func TestMCTSFindsImmediateGomokuWin(t *testing.T) {
	// Two cells are left: (5,3) completes black's five, (6,3) leads to a
	// dead draw. The filler pattern contains no five for either color.
	b := rowsBoard(t, []string{
		"bbwwbbw",
		"wwbbwwb",
		"bbwwbbw",
		"wbbbb..",
		"bbwwbbw",
		"wwbbwwb",
		"bbwwbbw",
	})

	m := NewMCTS(WithSimulations(50), WithMetrics())
	move, ok := m.FindMove(b, game.NewGomokuRules(), game.Black)

	require.True(t, ok)
	require.Equal(t, game.Move{X: 5, Y: 3}, move,
		"Search should complete the five rather than play the dead cell")
}

func TestMCTSOptions(t *testing.T) {
	m := NewMCTS(WithSimulations(7), WithExploration(2.5))
	require.Equal(t, 7, m.simulations)
	require.Equal(t, 2.5, m.exploration)

	defaults := NewMCTS(WithSimulations(0), WithExploration(-1))
	require.Equal(t, DefaultSimulations, defaults.simulations,
		"Non-positive budgets should keep the default")
	require.Equal(t, Exploration, defaults.exploration)
}
