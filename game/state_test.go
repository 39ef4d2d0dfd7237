package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateSnapshotRestore(t *testing.T) {
	s := NewState("go", 9)
	b := NewBoard(9)
	b.Place(2, 2, Black)
	b.Place(3, 3, White)
	s.TogglePlayer()
	s.IncrementPassCount()
	s.AddCaptures(Black, 3)

	m := s.Snapshot(b)

	// Wreck the live state, then rewind.
	b.Clear()
	b.Place(0, 0, White)
	s.TogglePlayer()
	s.SetGameOver(OutcomeWhite)

	s.Restore(m, b)

	require.Equal(t, White, s.CurrentPlayer, "Player to move should rewind")
	require.Equal(t, 1, s.PassCount)
	require.Equal(t, 3, s.CapturedByBlack)
	require.False(t, s.Over, "A restored position is live again")
	require.Equal(t, OutcomeNone, s.Winner)
	require.Equal(t, Black, b.At(2, 2), "Board contents should rewind")
	require.Equal(t, White, b.At(3, 3))
	require.True(t, b.IsEmpty(0, 0))
}

func TestMementoBoardIsIndependent(t *testing.T) {
	s := NewState("gomoku", 15)
	b := NewBoard(15)
	b.Place(7, 7, Black)

	m := s.Snapshot(b)
	b.Remove(7, 7)

	require.Equal(t, Black, m.Board().At(7, 7), "Snapshot should not alias the live board")

	// Mutating the handed-out board must not leak into the memento.
	view := m.Board()
	view.Place(0, 0, White)
	require.True(t, m.Board().IsEmpty(0, 0))
}

func TestMementoAccessors(t *testing.T) {
	b := NewBoard(9)
	b.Place(1, 1, White)
	m := NewMemento("go", b, White, 1, 2, 5)

	require.Equal(t, "go", m.GameType())
	require.Equal(t, White, m.CurrentPlayer())
	require.Equal(t, 1, m.PassCount())
	require.Equal(t, 2, m.CapturedByBlack())
	require.Equal(t, 5, m.CapturedByWhite())
	require.Equal(t, White, m.Board().At(1, 1))
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	require.Equal(t, []string{"gomoku", "go", "reversi"}, r.Types())

	spec, err := r.Spec("reversi")
	require.NoError(t, err)
	require.Equal(t, 8, spec.DefaultBoardSize)
	require.Equal(t, "reversi", spec.NewRules().Name())

	_, err = r.Spec("checkers")
	require.Error(t, err, "An unregistered game type is a setup error")
}
