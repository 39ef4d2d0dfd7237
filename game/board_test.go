package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardFromRows builds a board from one string per row, 'b'/'w' for
// stones and anything else for empty.
func boardFromRows(t *testing.T, rows []string) *Board {
	t.Helper()
	b := NewBoard(len(rows))
	for y, row := range rows {
		require.Len(t, row, len(rows), "rows must form a square board")
		for x, ch := range row {
			switch ch {
			case 'b':
				b.Place(x, y, Black)
			case 'w':
				b.Place(x, y, White)
			}
		}
	}
	return b
}

func TestBoardPlace(t *testing.T) {
	t.Run("placing on an empty in-bounds cell", func(t *testing.T) {
		b := NewBoard(9)

		require.True(t, b.Place(4, 4, Black), "Placement should succeed")
		require.Equal(t, Black, b.At(4, 4), "Cell should hold the placed stone")
	})

	t.Run("placing on an occupied cell", func(t *testing.T) {
		b := NewBoard(9)
		b.Place(4, 4, Black)

		require.False(t, b.Place(4, 4, White), "Second placement should fail")
		require.Equal(t, Black, b.At(4, 4), "First stone should remain intact")
	})

	t.Run("placing out of bounds", func(t *testing.T) {
		b := NewBoard(9)

		require.False(t, b.Place(-1, 0, Black), "Negative coordinate should fail")
		require.False(t, b.Place(9, 9, Black), "Coordinate past the edge should fail")
	})

	t.Run("placing no color", func(t *testing.T) {
		b := NewBoard(9)

		require.False(t, b.Place(0, 0, NoColor), "NoColor should never be placed")
		require.True(t, b.IsEmpty(0, 0), "Cell should stay empty")
	})
}

func TestBoardRemove(t *testing.T) {
	b := NewBoard(9)
	b.Place(2, 3, White)

	require.True(t, b.Remove(2, 3), "Removing an existing stone should succeed")
	require.True(t, b.IsEmpty(2, 3), "Cell should be empty after removal")
	require.False(t, b.Remove(2, 3), "Removing an empty cell should fail")
	require.False(t, b.Remove(-1, 3), "Removing out of bounds should fail")
}

func TestBoardClone(t *testing.T) {
	b := boardFromRows(t, []string{
		"b..",
		".w.",
		"..b",
	})

	clone := b.Clone()
	require.Equal(t, b.String(), clone.String(), "Clone should equal the original at clone time")

	clone.Place(1, 0, White)
	b.Remove(0, 0)

	require.True(t, b.IsEmpty(1, 0), "Mutating the clone should not touch the original")
	require.Equal(t, White, clone.At(1, 1), "Original contents should survive in the clone")
	require.Equal(t, Black, clone.At(0, 0), "Mutating the original should not touch the clone")
}

func TestBoardCopyFrom(t *testing.T) {
	src := boardFromRows(t, []string{
		"bw",
		"..",
	})
	dst := NewBoard(2)
	dst.Place(1, 1, Black)

	dst.CopyFrom(src)

	require.Equal(t, src.String(), dst.String(), "Destination should match the source exactly")
	require.True(t, dst.IsEmpty(1, 1), "Stale destination stones should be gone")
}

func TestBoardCounts(t *testing.T) {
	b := boardFromRows(t, []string{
		"bw.",
		"bb.",
		"...",
	})

	require.Equal(t, 3, b.Count(Black))
	require.Equal(t, 1, b.Count(White))
	require.Equal(t, 5, b.CountEmpty())

	b.Clear()
	require.Equal(t, 9, b.CountEmpty(), "Clear should empty every cell")
}
