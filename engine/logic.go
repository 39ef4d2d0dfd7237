package engine

import (
	"fmt"

	"stones/game"
)

// Logic drives one match: it owns the authoritative board and state and
// funnels every ply through the rules. Moves are validated and applied on
// a cloned board first, so a rejected move never leaves partial captures
// or flips behind.
type Logic struct {
	board *game.Board
	rules game.Rules
	state *game.State
}

// NewLogic builds the match logic for one game. The rules instance is
// fixed for the lifetime of the match.
func NewLogic(state *game.State, rules game.Rules) *Logic {
	l := &Logic{
		board: game.NewBoard(state.BoardSize),
		rules: rules,
		state: state,
	}
	l.rules.InitBoard(l.board)
	return l
}

// NewLogicFor is the registry-driven constructor. A boardSize of zero
// takes the game's default.
func NewLogicFor(spec game.GameSpec, boardSize int) *Logic {
	if boardSize <= 0 {
		boardSize = spec.DefaultBoardSize
	}
	return NewLogic(game.NewState(spec.Type, boardSize), spec.NewRules())
}

func (l *Logic) Board() *game.Board {
	return l.board
}

func (l *Logic) Rules() game.Rules {
	return l.rules
}

func (l *Logic) State() *game.State {
	return l.state
}

// MakeMove plays the current player's stone at (x, y). All rejections are
// reported as (false, reason) with the board untouched.
func (l *Logic) MakeMove(x, y int) (bool, string) {
	if l.state.Over {
		return false, "game is already over"
	}

	mover := l.state.CurrentPlayer
	ok, reason := l.rules.CheckMove(l.board, x, y, mover)
	if !ok {
		return false, reason
	}

	// Place and run side effects on a clone; commit only if everything
	// holds, otherwise the authoritative board never changes.
	clone := l.board.Clone()
	if !clone.Place(x, y, mover) {
		return false, "cell is already occupied"
	}
	ok, effects := l.rules.ApplyEffects(clone, x, y, mover, l.state)
	if !ok {
		return false, effects
	}
	l.board.CopyFrom(clone)

	l.rules.UpdateState(l.state)

	last := game.Move{X: x, Y: y}
	if won, outcome := l.rules.Winner(l.board, &last); won {
		l.state.SetGameOver(outcome)
		return true, fmt.Sprintf("game over, %s", outcomeText(outcome))
	}

	l.state.TogglePlayer()
	ts := l.rules.OnTurnStart(l.board, l.state.CurrentPlayer, l.state)
	if ts.SkipTurn {
		// The new player cannot act; pass on their behalf instead of
		// waiting for input that can never come.
		return l.PassMove()
	}

	if effects != "" {
		return true, effects
	}
	return true, "move accepted"
}

// CanPass reports whether the current player may pass.
func (l *Logic) CanPass() (bool, string) {
	if l.state.Over {
		return false, "game is already over"
	}
	return l.rules.CanPass(l.state.CurrentPlayer)
}

// PassMove lets the current player pass, which may end the game on a
// double pass. Endings reached this way are scored by stone count.
func (l *Logic) PassMove() (bool, string) {
	ok, reason := l.CanPass()
	if !ok {
		return false, reason
	}

	mover := l.state.CurrentPlayer
	ok, msg := l.rules.HandlePass(l.state)
	if !ok {
		return false, msg
	}
	if l.state.Over && l.state.Winner == game.OutcomeNone {
		l.state.Winner = game.CountOutcome(l.board)
	}

	l.state.TogglePlayer()
	if l.state.Over {
		return true, fmt.Sprintf("%s, %s", msg, outcomeText(l.state.Winner))
	}
	return true, fmt.Sprintf("%s passes", mover)
}

// Reset clears the board and state in place, keeping the selected rules.
func (l *Logic) Reset() {
	l.state.Reset()
	l.rules.InitBoard(l.board)
}

// Snapshot captures the match into a memento for undo or saving.
func (l *Logic) Snapshot() game.Memento {
	return l.state.Snapshot(l.board)
}

// Restore rewinds the match to a memento taken earlier.
func (l *Logic) Restore(m game.Memento) {
	l.state.Restore(m, l.board)
}

func outcomeText(o game.Outcome) string {
	if o == game.OutcomeDraw {
		return "the game is a draw"
	}
	return fmt.Sprintf("%s wins", o)
}
