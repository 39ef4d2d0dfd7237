package searcher

import (
	"golang.org/x/exp/rand"

	"stones/game"
)

// Strategy picks a move for a color given a board snapshot and the match
// rules. Implementations never touch the authoritative board: callers hand
// in a read copy and strategies simulate on their own clones. A false
// result means no legal move exists, which the caller translates into a
// pass rather than an error.
type Strategy interface {
	Name() string
	FindMove(b *game.Board, rules game.Rules, c game.Color) (game.Move, bool)
}

// legalMoves enumerates every legal placement by probing the rules'
// legality check cell by cell.
func legalMoves(b *game.Board, rules game.Rules, c game.Color) []game.Move {
	var moves []game.Move
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if ok, _ := rules.CheckMove(b, x, y, c); ok {
				moves = append(moves, game.Move{X: x, Y: y})
			}
		}
	}
	return moves
}

// Random plays a uniformly random legal move: the easy tier, and the
// fallback for games without a dedicated heuristic.
type Random struct{}

func NewRandom() *Random {
	return &Random{}
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) FindMove(b *game.Board, rules game.Rules, c game.Color) (game.Move, bool) {
	moves := legalMoves(b, rules, c)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[rand.Intn(len(moves))], true
}
