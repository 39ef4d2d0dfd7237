package searcher

import (
	"github.com/rs/zerolog/log"

	"stones/game"
)

type Option func(mcts *MCTS)

// MCTS picks moves by Monte-Carlo tree search: UCB1 selection, one-child
// expansion, uniform random rollouts, and backpropagation of the outcome.
// A fresh tree is rooted at the current position for every decision and
// discarded once the best move is extracted. The hard tier.
type MCTS struct {
	simulations int
	exploration float64
	metrics     MetricsCollector
}

func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

func WithExploration(exploration float64) Option {
	return func(m *MCTS) {
		if exploration > 0 {
			m.exploration = exploration
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		simulations: DefaultSimulations,
		exploration: Exploration,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MCTS) Name() string {
	return "mcts"
}

func (m *MCTS) FindMove(b *game.Board, rules game.Rules, c game.Color) (game.Move, bool) {
	moves := legalMoves(b, rules, c)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	if len(moves) == 1 { // Nothing to search
		return moves[0], true
	}

	m.metrics.Start()
	root := newRoot(b, rules, c)
	move, ok := root.bestAction(m.simulations, m.exploration, m.metrics)
	metric := m.metrics.Complete()

	log.Debug().
		Str("game", rules.Name()).
		Stringer("color", c).
		Int64("episodes", metric.Episodes).
		Int64("full_playouts", metric.FullPlayouts).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return move, ok
}
