package engine

import (
	"stones/game"
	"stones/searcher"
)

type thought struct {
	move game.Move
	ok   bool
}

// Thinker runs one AI decision off the caller's goroutine so an
// interactive surface never freezes while the search grinds. The worker
// gets an immutable snapshot (board clone plus rules) and delivers its
// answer through a single-slot channel; the caller polls, it never
// blocks. There is no cancellation: a result that arrives after the match
// ended is simply discarded by whoever polls it.
type Thinker struct {
	result chan thought
}

// Think starts the worker. The board is cloned before the goroutine
// launches, so later mutations of the live board cannot race the search.
func Think(b *game.Board, rules game.Rules, c game.Color, strategy searcher.Strategy) *Thinker {
	t := &Thinker{result: make(chan thought, 1)}
	snapshot := b.Clone()
	go func() {
		move, ok := strategy.FindMove(snapshot, rules, c)
		t.result <- thought{move: move, ok: ok}
	}()
	return t
}

// Poll checks for a finished decision without blocking. done reports
// whether the worker has delivered; when it has, ok distinguishes a move
// from "no legal move", which the caller treats as a pass.
func (t *Thinker) Poll() (move game.Move, ok bool, done bool) {
	select {
	case th := <-t.result:
		return th.move, th.ok, true
	default:
		return game.Move{}, false, false
	}
}

// Wait blocks until the decision is ready. Used by batch callers like the
// self-play runner that have no UI to keep responsive.
func (t *Thinker) Wait() (move game.Move, ok bool) {
	th := <-t.result
	return th.move, th.ok
}
