package searcher

import (
	"math"

	"stones/game"
)

// positionWeights is the standard 8x8 positional table: corners dominate,
// cells adjacent to corners are liabilities, edges are moderately good.
var positionWeights = [8][8]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// flipWeight converts a flip count into score points.
const flipWeight = 2

// ReversiGreedy combines the positional table with the number of stones a
// move would flip and plays the maximum. The flip count is computed with
// its own ray-cast rather than by asking the rules, keeping the heuristic
// decoupled from rule internals. The normal tier for reversi.
type ReversiGreedy struct{}

func NewReversiGreedy() *ReversiGreedy {
	return &ReversiGreedy{}
}

func (g *ReversiGreedy) Name() string {
	return "reversi-greedy"
}

func (g *ReversiGreedy) FindMove(b *game.Board, rules game.Rules, c game.Color) (game.Move, bool) {
	moves := legalMoves(b, rules, c)
	if len(moves) == 0 {
		return game.Move{}, false
	}

	bestScore := math.Inf(-1)
	best := moves[0]
	for _, mv := range moves {
		score := g.evaluate(b, mv, c)
		if score > bestScore {
			bestScore = score
			best = mv
		}
	}
	return best, true
}

func (g *ReversiGreedy) evaluate(b *game.Board, mv game.Move, c game.Color) float64 {
	return float64(g.positional(b, mv) + flipWeight*g.countFlips(b, mv, c))
}

// positional looks the move up in the weight table, falling back to a
// corner/edge bonus on non-standard board sizes.
func (g *ReversiGreedy) positional(b *game.Board, mv game.Move) int {
	if b.Size() == len(positionWeights) {
		return positionWeights[mv.Y][mv.X]
	}

	onEdgeX := mv.X == 0 || mv.X == b.Size()-1
	onEdgeY := mv.Y == 0 || mv.Y == b.Size()-1
	switch {
	case onEdgeX && onEdgeY:
		return 100
	case onEdgeX || onEdgeY:
		return 10
	default:
		return 0
	}
}

// countFlips counts the opposing stones a placement would bracket across
// all eight rays.
func (g *ReversiGreedy) countFlips(b *game.Board, mv game.Move, c game.Color) int {
	dirs := [8]game.Move{
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}

	total := 0
	for _, d := range dirs {
		run := 0
		x, y := mv.X+d.X, mv.Y+d.Y
		for b.InBounds(x, y) {
			cell := b.At(x, y)
			if cell == c.Opponent() {
				run++
			} else {
				if cell == c {
					total += run
				}
				break
			}
			x += d.X
			y += d.Y
		}
	}
	return total
}
