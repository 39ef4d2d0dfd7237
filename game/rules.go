package game

// TurnStart is what a rule set reports when a player's turn begins.
type TurnStart struct {
	SkipTurn bool
	Message  string
}

// Rules is the per-game rule policy. Implementations are stateless or near
// stateless; one instance is selected at match creation and kept for the
// match's lifetime. Legality and side-effect checks never panic: they
// report (false, reason) and leave the board untouched, or mutate the board
// they were handed, which is a speculative clone during move validation.
type Rules interface {
	Name() string

	// CheckMove decides static legality of placing c at (x, y).
	CheckMove(b *Board, x, y int, c Color) (bool, string)

	// ApplyEffects runs post-placement side effects (captures, flips) on a
	// board that already holds the new stone. A false result means the move
	// must be rolled back.
	ApplyEffects(b *Board, x, y int, c Color, s *State) (bool, string)

	CanPass(c Color) (bool, string)
	HandlePass(s *State) (bool, string)

	// Winner reports whether the game is decided. last is the most recent
	// placement, or nil when none is known.
	Winner(b *Board, last *Move) (bool, Outcome)

	// OnTurnStart runs when the given color's turn begins and may request
	// that the turn be skipped.
	OnTurnStart(b *Board, c Color, s *State) TurnStart

	// UpdateState adjusts match counters after a successful placement.
	UpdateState(s *State)

	InitBoard(b *Board)
}

// Orthogonal and all eight neighbor offsets, shared by the rule sets.
var (
	orthogonalDirs = [4]Move{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	eightDirs      = [8]Move{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)
