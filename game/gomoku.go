package game

// GomokuRules implements five-in-a-row. Placement is legal on any empty
// in-bounds cell, there are no post-move side effects, and passing is
// never allowed.
type GomokuRules struct{}

func NewGomokuRules() *GomokuRules {
	return &GomokuRules{}
}

func (r *GomokuRules) Name() string {
	return "gomoku"
}

func (r *GomokuRules) CheckMove(b *Board, x, y int, c Color) (bool, string) {
	if !b.InBounds(x, y) {
		return false, "position is outside the board"
	}
	if !b.IsEmpty(x, y) {
		return false, "cell is already occupied"
	}
	return true, ""
}

func (r *GomokuRules) ApplyEffects(b *Board, x, y int, c Color, s *State) (bool, string) {
	return true, ""
}

func (r *GomokuRules) CanPass(c Color) (bool, string) {
	return false, "gomoku does not allow passing"
}

func (r *GomokuRules) HandlePass(s *State) (bool, string) {
	return false, "gomoku does not allow passing"
}

// Winner scans the four line orientations through the last placement,
// counting contiguous same-color stones in both directions. Five or more
// wins. Without a last move there is nothing to scan.
func (r *GomokuRules) Winner(b *Board, last *Move) (bool, Outcome) {
	if last == nil {
		return false, OutcomeNone
	}
	color := b.At(last.X, last.Y)
	if color == NoColor {
		return false, OutcomeNone
	}

	lines := [4]Move{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for _, d := range lines {
		count := 1
		count += r.runLength(b, last.X, last.Y, d.X, d.Y, color)
		count += r.runLength(b, last.X, last.Y, -d.X, -d.Y, color)
		if count >= 5 {
			return true, WinnerOf(color)
		}
	}
	return false, OutcomeNone
}

// runLength counts same-color stones adjacent to (x, y) along (dx, dy),
// not including the origin stone.
func (r *GomokuRules) runLength(b *Board, x, y, dx, dy int, c Color) int {
	count := 0
	for step := 1; step < 5; step++ {
		if b.At(x+dx*step, y+dy*step) != c {
			break
		}
		count++
	}
	return count
}

func (r *GomokuRules) OnTurnStart(b *Board, c Color, s *State) TurnStart {
	return TurnStart{}
}

func (r *GomokuRules) UpdateState(s *State) {}

func (r *GomokuRules) InitBoard(b *Board) {
	b.Clear()
}
