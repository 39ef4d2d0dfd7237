package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"stones/game"
)

// Gomoku line patterns ranked by value.
const (
	scoreFive        = 100000
	scoreOpenFour    = 10000
	scoreClosedFour  = 5000
	scoreOpenThree   = 1000
	scoreClosedThree = 500
	scoreOpenTwo     = 100
	scoreClosedTwo   = 50
	scoreSingle      = 10
)

// defenseWeight discounts the value a move denies the opponent against the
// value it builds for the mover.
const defenseWeight = 0.8

// GomokuGreedy scores every legal move by the line patterns it would
// complete for either color and plays the best one, breaking ties
// uniformly at random. The normal tier for gomoku.
type GomokuGreedy struct{}

func NewGomokuGreedy() *GomokuGreedy {
	return &GomokuGreedy{}
}

func (g *GomokuGreedy) Name() string {
	return "gomoku-greedy"
}

func (g *GomokuGreedy) FindMove(b *game.Board, rules game.Rules, c game.Color) (game.Move, bool) {
	moves := legalMoves(b, rules, c)
	if len(moves) == 0 {
		return game.Move{}, false
	}

	scratch := b.Clone()
	bestScore := math.Inf(-1)
	var best []game.Move
	for _, mv := range moves {
		attack := g.evaluate(scratch, mv, c)
		defense := g.evaluate(scratch, mv, c.Opponent())
		score := attack + defense*defenseWeight
		if score > bestScore {
			bestScore = score
			best = append(best[:0], mv)
		} else if score == bestScore {
			best = append(best, mv)
		}
	}
	return best[rand.Intn(len(best))], true
}

// evaluate simulates placing c at mv and sums the pattern values of the
// four lines through it. The scratch board is restored before returning.
func (g *GomokuGreedy) evaluate(b *game.Board, mv game.Move, c game.Color) float64 {
	b.Place(mv.X, mv.Y, c)
	defer b.Remove(mv.X, mv.Y)

	lines := [4]game.Move{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1}}
	score := 0.0
	for _, d := range lines {
		score += float64(g.lineScore(b, mv, d, c))
	}
	return score
}

// lineScore classifies the run through mv along direction d into one of
// the ranked patterns.
func (g *GomokuGreedy) lineScore(b *game.Board, mv game.Move, d game.Move, c game.Color) int {
	forward, blockedFwd := g.scanRun(b, mv, d.X, d.Y, c)
	backward, blockedBwd := g.scanRun(b, mv, -d.X, -d.Y, c)

	count := 1 + forward + backward
	open := !blockedFwd && !blockedBwd
	switch {
	case count >= 5:
		return scoreFive
	case count == 4 && open:
		return scoreOpenFour
	case count == 4:
		return scoreClosedFour
	case count == 3 && open:
		return scoreOpenThree
	case count == 3:
		return scoreClosedThree
	case count == 2 && open:
		return scoreOpenTwo
	case count == 2:
		return scoreClosedTwo
	default:
		return scoreSingle
	}
}

// scanRun counts same-color stones from mv along (dx, dy) and reports
// whether the run ends against an opposing stone or the board edge.
func (g *GomokuGreedy) scanRun(b *game.Board, mv game.Move, dx, dy int, c game.Color) (count int, blocked bool) {
	for i := 1; i < 5; i++ {
		x, y := mv.X+dx*i, mv.Y+dy*i
		if !b.InBounds(x, y) {
			return count, true
		}
		cell := b.At(x, y)
		if cell == c {
			count++
			continue
		}
		return count, cell != game.NoColor
	}
	return count, false
}
