package game

// State is the mutable per-match state alongside the board: whose turn it
// is, whether the game is decided, and the per-variant counters. Fields are
// mutated by the match logic and by Rules callbacks.
type State struct {
	GameType      string
	BoardSize     int
	CurrentPlayer Color
	Over          bool
	Winner        Outcome

	// PassCount is the consecutive-pass streak (Go and Reversi).
	PassCount int

	// Capture tallies count the stones each color has taken (Go).
	CapturedByBlack int
	CapturedByWhite int
}

func NewState(gameType string, boardSize int) *State {
	return &State{
		GameType:      gameType,
		BoardSize:     boardSize,
		CurrentPlayer: Black,
	}
}

func (s *State) TogglePlayer() {
	s.CurrentPlayer = s.CurrentPlayer.Opponent()
}

func (s *State) SetGameOver(w Outcome) {
	s.Over = true
	s.Winner = w
}

func (s *State) IncrementPassCount() {
	s.PassCount++
}

func (s *State) ResetPassCount() {
	s.PassCount = 0
}

// AddCaptures credits c with captured stones.
func (s *State) AddCaptures(c Color, n int) {
	switch c {
	case Black:
		s.CapturedByBlack += n
	case White:
		s.CapturedByWhite += n
	}
}

func (s *State) Captures(c Color) int {
	switch c {
	case Black:
		return s.CapturedByBlack
	case White:
		return s.CapturedByWhite
	default:
		return 0
	}
}

// Reset returns the state to the start of a fresh match of the same game.
func (s *State) Reset() {
	s.CurrentPlayer = Black
	s.Over = false
	s.Winner = OutcomeNone
	s.PassCount = 0
	s.CapturedByBlack = 0
	s.CapturedByWhite = 0
}

// Snapshot captures the state and board into an immutable memento.
func (s *State) Snapshot(b *Board) Memento {
	return Memento{
		board:           b.Clone(),
		gameType:        s.GameType,
		currentPlayer:   s.CurrentPlayer,
		passCount:       s.PassCount,
		capturedByBlack: s.CapturedByBlack,
		capturedByWhite: s.CapturedByWhite,
	}
}

// Restore rewinds the state and board to a previously captured memento.
// The decided-game flags are cleared: a restored position is live again.
func (s *State) Restore(m Memento, b *Board) {
	b.CopyFrom(m.board)
	s.CurrentPlayer = m.currentPlayer
	s.PassCount = m.passCount
	s.CapturedByBlack = m.capturedByBlack
	s.CapturedByWhite = m.capturedByWhite
	s.Over = false
	s.Winner = OutcomeNone
}
