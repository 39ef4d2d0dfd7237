package game

import "fmt"

// GoRules implements a simplified Go: liberty-based capture and suicide,
// free passing with a double-pass ending, and scoring by plain stone count
// once the board is nearly full. Territory is deliberately not counted;
// changing that would change observable outcomes.
type GoRules struct{}

func NewGoRules() *GoRules {
	return &GoRules{}
}

func (r *GoRules) Name() string {
	return "go"
}

// hasLiberties reports whether the group containing (x, y) touches at
// least one empty cell. The flood fill is iterative with an explicit
// stack so group size never grows the call stack.
func (r *GoRules) hasLiberties(b *Board, x, y int) bool {
	color := b.At(x, y)
	if color == NoColor {
		return false
	}

	visited := make([]bool, b.Size()*b.Size())
	stack := []Move{{x, y}}
	visited[y*b.Size()+x] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range orthogonalDirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !b.InBounds(nx, ny) {
				continue
			}
			switch b.At(nx, ny) {
			case NoColor:
				return true
			case color:
				idx := ny*b.Size() + nx
				if !visited[idx] {
					visited[idx] = true
					stack = append(stack, Move{nx, ny})
				}
			}
		}
	}
	return false
}

// captureDeadStones removes every enemy group with no liberties and
// returns how many stones came off.
func (r *GoRules) captureDeadStones(b *Board, mover Color) int {
	var dead []Move
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			c := b.At(x, y)
			if c != NoColor && c != mover && !r.hasLiberties(b, x, y) {
				dead = append(dead, Move{x, y})
			}
		}
	}
	for _, m := range dead {
		b.Remove(m.X, m.Y)
	}
	return len(dead)
}

// CheckMove rejects out-of-bounds, occupied, and suicidal placements. The
// suicide probe places the stone, looks for liberties or a capturable
// adjacent enemy group, then takes the stone back off.
func (r *GoRules) CheckMove(b *Board, x, y int, c Color) (bool, string) {
	if !b.InBounds(x, y) {
		return false, "position is outside the board"
	}
	if !b.IsEmpty(x, y) {
		return false, "cell is already occupied"
	}

	b.Place(x, y, c)
	hasLiberty := r.hasLiberties(b, x, y)
	canCapture := false
	if !hasLiberty {
		for _, d := range orthogonalDirs {
			nx, ny := x+d.X, y+d.Y
			if b.At(nx, ny) == c.Opponent() && !r.hasLiberties(b, nx, ny) {
				canCapture = true
				break
			}
		}
	}
	b.Remove(x, y)

	if !hasLiberty && !canCapture {
		return false, "suicide: the stone would have no liberties"
	}
	return true, ""
}

// ApplyEffects removes captured enemy groups, then verifies the mover's
// own group survived. Failing that, the move is reported back for
// rollback.
func (r *GoRules) ApplyEffects(b *Board, x, y int, c Color, s *State) (bool, string) {
	captured := r.captureDeadStones(b, c)
	if !r.hasLiberties(b, x, y) {
		return false, "suicide: the stone would have no liberties"
	}
	if s != nil {
		s.AddCaptures(c, captured)
	}
	if captured > 0 {
		return true, fmt.Sprintf("captured %d stones", captured)
	}
	return true, ""
}

func (r *GoRules) CanPass(c Color) (bool, string) {
	return true, ""
}

// HandlePass bumps the consecutive-pass streak; two in a row end the game.
// The winner is filled in afterwards from the stone count.
func (r *GoRules) HandlePass(s *State) (bool, string) {
	s.IncrementPassCount()
	if s.PassCount >= 2 {
		s.Over = true
		return true, "both players passed, game over"
	}
	return true, ""
}

// Winner declares a result only once empty cells drop below a tenth of the
// board; the side with more stones wins, equal counts draw.
func (r *GoRules) Winner(b *Board, last *Move) (bool, Outcome) {
	total := b.Size() * b.Size()
	empty := b.CountEmpty()
	if empty*10 >= total {
		return false, OutcomeNone
	}
	return true, CountOutcome(b)
}

func (r *GoRules) OnTurnStart(b *Board, c Color, s *State) TurnStart {
	return TurnStart{}
}

func (r *GoRules) UpdateState(s *State) {
	s.ResetPassCount()
}

func (r *GoRules) InitBoard(b *Board) {
	b.Clear()
}

// CountOutcome decides a game by raw stone majority.
func CountOutcome(b *Board) Outcome {
	black := b.Count(Black)
	white := b.Count(White)
	switch {
	case black > white:
		return OutcomeBlack
	case white > black:
		return OutcomeWhite
	default:
		return OutcomeDraw
	}
}
