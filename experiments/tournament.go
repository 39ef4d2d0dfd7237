// Package experiments runs AI-versus-AI tournaments and writes the
// results as CSV for offline analysis. It is how the strategy tiers get
// compared against each other without a UI in the loop.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"stones/engine"
	"stones/game"
	"stones/searcher"
)

// AgentConfig identifies one contestant: a difficulty tier for a game.
type AgentConfig struct {
	ID         int
	Difficulty searcher.Difficulty
}

// GameRecord is one finished game in a tournament.
type GameRecord struct {
	ID       int
	Black    int // AgentConfig.ID
	White    int // AgentConfig.ID
	Winner   string
	Moves    int
	Duration time.Duration
}

// RunTournament plays every pairing of the configs over the given game,
// both colors each, gamesPerSide times, and writes the records out.
func RunTournament(registry *game.Registry, factory *searcher.Factory, gameType string, configs []AgentConfig, gamesPerSide int) error {
	spec, err := registry.Spec(gameType)
	if err != nil {
		return err
	}

	writer, err := NewWriter(gameType)
	if err != nil {
		return fmt.Errorf("creating results writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	var records []GameRecord
	for i, a := range configs {
		for _, b := range configs[i+1:] {
			for _, pair := range [][2]AgentConfig{{a, b}, {b, a}} {
				for round := 0; round < gamesPerSide; round++ {
					record, err := playGame(spec, factory, pair[0], pair[1])
					if err != nil {
						return err
					}
					record.ID = len(records)
					records = append(records, record)
				}
			}
		}
	}

	if err := writer.WriteGameRecords(records); err != nil {
		return err
	}
	log.Info().Int("games", len(records)).Str("dir", writer.BaseDir()).Msg("tournament finished")
	return nil
}

func playGame(spec game.GameSpec, factory *searcher.Factory, black, white AgentConfig) (GameRecord, error) {
	blackAgent, err := factory.Strategy(spec.Type, black.Difficulty)
	if err != nil {
		return GameRecord{}, err
	}
	whiteAgent, err := factory.Strategy(spec.Type, white.Difficulty)
	if err != nil {
		return GameRecord{}, err
	}

	logic := engine.NewLogicFor(spec, 0)
	match := engine.NewMatch(logic, blackAgent, whiteAgent)

	start := time.Now()
	outcome := match.Run()

	return GameRecord{
		Black:    black.ID,
		White:    white.ID,
		Winner:   outcome.String(),
		Moves:    match.Moves(),
		Duration: time.Since(start),
	}, nil
}
