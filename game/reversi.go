package game

import "fmt"

// ReversiRules implements Reversi. A placement must bracket at least one
// run of opposing stones, every bracketed run is flipped after placement,
// and a player with no legal move has their turn skipped automatically.
//
// The pass permission is cached between OnTurnStart and CanPass, which is
// the one piece of per-turn state a rule set carries.
type ReversiRules struct {
	passAllowed bool
}

func NewReversiRules() *ReversiRules {
	return &ReversiRules{}
}

func (r *ReversiRules) Name() string {
	return "reversi"
}

// flippable collects every opposing stone bracketed by a placement of c at
// (x, y): for each of the eight rays, a run of opposing stones terminated
// by an own stone. Runs hitting the edge or an empty cell are discarded.
func (r *ReversiRules) flippable(b *Board, x, y int, c Color) []Move {
	if !b.InBounds(x, y) || !b.IsEmpty(x, y) {
		return nil
	}

	var flips []Move
	for _, d := range eightDirs {
		flips = append(flips, r.rayFlips(b, x, y, d, c)...)
	}
	return flips
}

// rayFlips walks one direction from the anchor and returns the bracketed
// run, or nothing if the run is unterminated. It does not examine the
// anchor cell itself, so it works both before and after the stone lands.
func (r *ReversiRules) rayFlips(b *Board, x, y int, d Move, c Color) []Move {
	var run []Move
	cx, cy := x+d.X, y+d.Y
	for b.InBounds(cx, cy) {
		switch b.At(cx, cy) {
		case c.Opponent():
			run = append(run, Move{cx, cy})
		case c:
			return run
		default:
			return nil
		}
		cx += d.X
		cy += d.Y
	}
	return nil
}

func (r *ReversiRules) hasAnyMove(b *Board, c Color) bool {
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if b.IsEmpty(x, y) && len(r.flippable(b, x, y, c)) > 0 {
				return true
			}
		}
	}
	return false
}

func (r *ReversiRules) setupInitialStones(b *Board) {
	center := b.Size() / 2
	p1, p2 := center-1, center
	b.Place(p1, p1, White)
	b.Place(p2, p2, White)
	b.Place(p1, p2, Black)
	b.Place(p2, p1, Black)
}

// OnTurnStart lazily lays out the four center stones on an untouched
// board, then decides whether the mover must be skipped and caches the
// answer for CanPass.
func (r *ReversiRules) OnTurnStart(b *Board, c Color, s *State) TurnStart {
	if b.CountEmpty() == b.Size()*b.Size() {
		r.setupInitialStones(b)
	}

	hasMove := r.hasAnyMove(b, c)
	r.passAllowed = !hasMove
	if !hasMove {
		return TurnStart{
			SkipTurn: true,
			Message:  fmt.Sprintf("%s has no legal move, turn skipped", c),
		}
	}
	return TurnStart{}
}

func (r *ReversiRules) CheckMove(b *Board, x, y int, c Color) (bool, string) {
	if !b.InBounds(x, y) {
		return false, "position is outside the board"
	}
	if !b.IsEmpty(x, y) {
		return false, "cell is already occupied"
	}
	if len(r.flippable(b, x, y, c)) == 0 {
		return false, "move must bracket at least one opposing stone"
	}
	return true, ""
}

// ApplyEffects flips every bracketed stone. The rays are re-cast anchored
// at the now-placed stone, so exactly the bracketed runs flip.
func (r *ReversiRules) ApplyEffects(b *Board, x, y int, c Color, s *State) (bool, string) {
	var flips []Move
	for _, d := range eightDirs {
		flips = append(flips, r.rayFlips(b, x, y, d, c)...)
	}
	for _, f := range flips {
		b.Remove(f.X, f.Y)
		b.Place(f.X, f.Y, c)
	}
	return true, fmt.Sprintf("flipped %d stones", len(flips))
}

func (r *ReversiRules) CanPass(c Color) (bool, string) {
	if r.passAllowed {
		return true, ""
	}
	return false, "legal moves remain, passing is not allowed"
}

func (r *ReversiRules) HandlePass(s *State) (bool, string) {
	s.IncrementPassCount()
	if s.PassCount >= 2 {
		s.Over = true
		return true, "both players passed, game over"
	}
	return true, "turn passed"
}

// Winner ends the game on a full board or when one color is wiped out;
// the higher stone count wins, equal counts draw. Mutual blockage is
// resolved by the pass machinery instead.
func (r *ReversiRules) Winner(b *Board, last *Move) (bool, Outcome) {
	black := b.Count(Black)
	white := b.Count(White)
	empty := b.CountEmpty()

	if empty == 0 {
		return true, CountOutcome(b)
	}
	if black+white > 0 {
		if black == 0 {
			return true, OutcomeWhite
		}
		if white == 0 {
			return true, OutcomeBlack
		}
	}
	return false, OutcomeNone
}

func (r *ReversiRules) UpdateState(s *State) {
	s.ResetPassCount()
}

func (r *ReversiRules) InitBoard(b *Board) {
	b.Clear()
	r.setupInitialStones(b)
}
