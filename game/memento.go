package game

// Memento is an immutable snapshot of a match: board contents, the player
// to move, the game type, and the variant counters. It is what the undo
// stack and the save files carry; the board inside is independently owned
// and never aliased to a live match board.
type Memento struct {
	board           *Board
	gameType        string
	currentPlayer   Color
	passCount       int
	capturedByBlack int
	capturedByWhite int
}

// NewMemento builds a memento from already-reconstructed parts, cloning the
// board. Used by the save layer when loading a file.
func NewMemento(gameType string, b *Board, current Color, passCount, capturedByBlack, capturedByWhite int) Memento {
	return Memento{
		board:           b.Clone(),
		gameType:        gameType,
		currentPlayer:   current,
		passCount:       passCount,
		capturedByBlack: capturedByBlack,
		capturedByWhite: capturedByWhite,
	}
}

// Board returns a clone of the snapshot board, keeping the memento
// unreachable through the value it hands out.
func (m Memento) Board() *Board {
	return m.board.Clone()
}

func (m Memento) GameType() string {
	return m.gameType
}

func (m Memento) CurrentPlayer() Color {
	return m.currentPlayer
}

func (m Memento) PassCount() int {
	return m.passCount
}

func (m Memento) CapturedByBlack() int {
	return m.capturedByBlack
}

func (m Memento) CapturedByWhite() int {
	return m.capturedByWhite
}
