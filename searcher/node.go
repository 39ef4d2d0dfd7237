package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"stones/game"
)

// node is one state in the search tree: a board snapshot, the color to
// move, and the statistics UCB1 feeds on. Every node owns its own board
// clone, so sibling branches never share mutable state and the search
// needs no locking.
type node struct {
	board    *game.Board
	rules    game.Rules
	color    game.Color
	parent   *node
	action   game.Move
	children []*node
	untried  []game.Move
	visits   int
	wins     int
	losses   int
	draws    int
}

func newRoot(b *game.Board, rules game.Rules, c game.Color) *node {
	board := b.Clone()
	return &node{
		board:   board,
		rules:   rules,
		color:   c,
		untried: legalMoves(board, rules, c),
	}
}

// q is wins minus losses, the node's accumulated value.
func (n *node) q() float64 {
	return float64(n.wins - n.losses)
}

func (n *node) fullyExpanded() bool {
	return len(n.untried) == 0
}

func (n *node) lastMove() *game.Move {
	if n.parent == nil {
		return nil
	}
	return &n.action
}

func (n *node) terminal() bool {
	won, _ := n.rules.Winner(n.board, n.lastMove())
	return won
}

// expand realizes one untried action as a new child node with the
// opposite color to move.
func (n *node) expand() *node {
	action := n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	board := n.board.Clone()
	board.Place(action.X, action.Y, n.color)
	child := &node{
		board:   board,
		rules:   n.rules,
		color:   n.color.Opponent(),
		parent:  n,
		action:  action,
		untried: legalMoves(board, n.rules, n.color.Opponent()),
	}
	n.children = append(n.children, child)
	return child
}

// bestChild picks the child maximizing UCB1. With exploration 0 this is
// the pure average value, used for the final recommendation.
func (n *node) bestChild(exploration float64) *node {
	best := n.children[0]
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		visits := float64(child.visits)
		score := child.q() / visits
		if exploration > 0 {
			score += exploration * math.Sqrt(2*math.Log(float64(n.visits))/visits)
		}
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// selectNode descends by UCB1 until it reaches a node that can still be
// expanded or is terminal, expanding one child on the way out.
func (n *node) selectNode(exploration float64) *node {
	cur := n
	for !cur.terminal() {
		if !cur.fullyExpanded() {
			return cur.expand()
		}
		if len(cur.children) == 0 { // No legal moves at all
			return cur
		}
		cur = cur.bestChild(exploration)
	}
	return cur
}

// rollout plays uniformly random legal placements on a disposable clone
// until the rules report a winner or the mover runs out of legal moves
// (a draw). The outcome is judged relative to this node's color. decided
// reports whether the game actually reached a verdict.
func (n *node) rollout() (result int, decided bool) {
	board := n.board.Clone()
	color := n.color
	last := n.lastMove()

	for {
		if won, outcome := n.rules.Winner(board, last); won {
			switch outcome {
			case game.WinnerOf(n.color):
				return Win, true
			case game.OutcomeDraw:
				return Draw, true
			default:
				return Loss, true
			}
		}

		moves := legalMoves(board, n.rules, color)
		if len(moves) == 0 {
			return Draw, false
		}

		mv := moves[rand.Intn(len(moves))]
		board.Place(mv.X, mv.Y, color)
		last = &mv
		color = color.Opponent()
	}
}

// backpropagate records the rollout outcome on every node up to the root,
// incrementing visit counts along the way.
func (n *node) backpropagate(result int) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		switch result {
		case Win:
			cur.wins++
		case Loss:
			cur.losses++
		default:
			cur.draws++
		}
	}
}

// bestAction runs the simulation budget and recommends the root child
// with the highest average value, without any exploration bonus.
func (n *node) bestAction(simulations int, exploration float64, metrics MetricsCollector) (game.Move, bool) {
	for i := 0; i < simulations; i++ {
		leaf := n.selectNode(exploration)
		result, decided := leaf.rollout()
		leaf.backpropagate(result)
		metrics.AddEpisode()
		if decided {
			metrics.AddFullPlayout()
		}
	}

	if len(n.children) == 0 {
		return game.Move{}, false
	}
	return n.bestChild(0).action, true
}
