package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"stones/game"
	"stones/searcher"
)

// MaxMoves caps runaway matches between two AIs.
const MaxMoves = 10000

// defaultPollInterval is how often the runner checks whether the worker
// has delivered a decision.
const defaultPollInterval = 10 * time.Millisecond

// Match runs a full AI-versus-AI game over a Logic, driving each chosen
// move through the same MakeMove path a human move takes. Decisions are
// computed on a worker via Thinker and collected by polling.
type Match struct {
	logic        *Logic
	agents       map[game.Color]searcher.Strategy
	pollInterval time.Duration
	moves        int
}

func NewMatch(logic *Logic, black, white searcher.Strategy) *Match {
	return &Match{
		logic: logic,
		agents: map[game.Color]searcher.Strategy{
			game.Black: black,
			game.White: white,
		},
		pollInterval: defaultPollInterval,
	}
}

// Run plays until the game is decided or MaxMoves is hit and returns the
// outcome.
func (m *Match) Run() game.Outcome {
	logic := m.logic
	state := logic.State()

	log.Info().
		Str("game", logic.Rules().Name()).
		Str("black", m.agents[game.Black].Name()).
		Str("white", m.agents[game.White].Name()).
		Msg("match started")

	for m.moves = 0; !state.Over && m.moves < MaxMoves; m.moves++ {
		mover := state.CurrentPlayer
		thinker := Think(logic.Board(), logic.Rules(), mover, m.agents[mover])

		var mv game.Move
		var has bool
		for {
			var done bool
			if mv, has, done = thinker.Poll(); done {
				break
			}
			time.Sleep(m.pollInterval)
		}

		if state.Over {
			// The match ended while the worker was thinking; drop the
			// stale decision.
			break
		}

		if !has {
			ok, reason := logic.PassMove()
			if !ok {
				log.Warn().Str("reason", reason).Msgf("%s cannot move or pass, stopping", mover)
				break
			}
			log.Debug().Msgf("%s passes", mover)
			continue
		}

		ok, reason := logic.MakeMove(mv.X, mv.Y)
		if !ok {
			log.Warn().
				Int("x", mv.X).Int("y", mv.Y).
				Str("reason", reason).
				Msgf("%s produced an illegal move, stopping", mover)
			break
		}
		log.Debug().Int("x", mv.X).Int("y", mv.Y).Msgf("%s moves", mover)
	}

	log.Info().Stringer("outcome", state.Winner).Int("moves", m.moves).Msg("match finished")
	return state.Winner
}

// Moves reports how many plies the last Run played.
func (m *Match) Moves() int {
	return m.moves
}
