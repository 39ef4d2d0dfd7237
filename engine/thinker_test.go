package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stones/game"
	"stones/searcher"
)

// blockingStrategy holds its answer until released, so tests can observe
// the not-done state deterministically.
type blockingStrategy struct {
	release chan struct{}
	move    game.Move
	ok      bool
}

func (s *blockingStrategy) Name() string { return "blocking" }

func (s *blockingStrategy) FindMove(b *game.Board, rules game.Rules, c game.Color) (game.Move, bool) {
	<-s.release
	return s.move, s.ok
}

func TestThinkerPoll(t *testing.T) {
	l := newLogic(t, "gomoku", 15)
	strat := &blockingStrategy{
		release: make(chan struct{}),
		move:    game.Move{X: 7, Y: 7},
		ok:      true,
	}

	th := Think(l.Board(), l.Rules(), game.Black, strat)

	_, _, done := th.Poll()
	require.False(t, done, "Poll must not block on an unfinished search")

	close(strat.release)

	var move game.Move
	var ok bool
	require.Eventually(t, func() bool {
		move, ok, done = th.Poll()
		return done
	}, time.Second, time.Millisecond)
	require.True(t, ok)
	require.Equal(t, game.Move{X: 7, Y: 7}, move)
}

func TestThinkerWait(t *testing.T) {
	l := newLogic(t, "gomoku", 9)

	th := Think(l.Board(), l.Rules(), game.Black, searcher.NewRandom())
	move, ok := th.Wait()

	require.True(t, ok, "An empty board always has a move")
	require.True(t, l.Board().InBounds(move.X, move.Y))
	require.True(t, l.Board().IsEmpty(move.X, move.Y))
}

func TestThinkerReportsNoMove(t *testing.T) {
	l := newLogic(t, "gomoku", 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			l.Board().Place(x, y, game.Black)
		}
	}

	th := Think(l.Board(), l.Rules(), game.White, searcher.NewRandom())
	_, ok := th.Wait()

	require.False(t, ok, "A full board leaves nothing to play")
}

func TestThinkerSnapshotsBoard(t *testing.T) {
	l := newLogic(t, "gomoku", 9)
	strat := &blockingStrategy{release: make(chan struct{}), ok: false}

	th := Think(l.Board(), l.Rules(), game.Black, strat)

	// The live board moves on while the search still holds its snapshot.
	require.True(t, l.Board().Place(4, 4, game.Black))
	close(strat.release)
	th.Wait()
}
