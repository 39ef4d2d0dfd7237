package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stones/engine"
	"stones/experiments"
	"stones/game"
	"stones/searcher"
	"stones/server"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	selfPlay := flag.Bool("selfplay", false, "Run one AI-versus-AI game and exit instead of serving")
	tournament := flag.Bool("tournament", false, "Run a difficulty tournament and exit instead of serving")
	games := flag.Int("games", 5, "Games per side in each tournament pairing")
	gameType := flag.String("game", "gomoku", "Game type for self-play (gomoku, go, reversi)")
	boardSize := flag.Int("size", 0, "Board size for self-play, 0 for the game's default")
	black := flag.String("black", "normal", "Black difficulty for self-play (easy, normal, hard)")
	white := flag.String("white", "normal", "White difficulty for self-play (easy, normal, hard)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	registry := game.DefaultRegistry()
	factory := searcher.NewFactory()

	if *selfPlay {
		runSelfPlay(registry, factory, *gameType, *boardSize, *black, *white)
		return
	}
	if *tournament {
		configs := make([]experiments.AgentConfig, 0, 3)
		for i, d := range factory.Difficulties(*gameType) {
			configs = append(configs, experiments.AgentConfig{ID: i, Difficulty: d})
		}
		if err := experiments.RunTournament(registry, factory, *gameType, configs, *games); err != nil {
			log.Error().Err(err).Msg("tournament failed")
			os.Exit(1)
		}
		return
	}

	srv := server.New(registry, factory)
	log.Info().Str("addr", *addr).Msg("listening")
	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func runSelfPlay(registry *game.Registry, factory *searcher.Factory, gameType string, boardSize int, black, white string) {
	spec, err := registry.Spec(gameType)
	if err != nil {
		log.Error().Err(err).Msg("unknown game")
		os.Exit(1)
	}
	blackAgent, err := factory.Strategy(gameType, searcher.Difficulty(black))
	if err != nil {
		log.Error().Err(err).Msg("black agent")
		os.Exit(1)
	}
	whiteAgent, err := factory.Strategy(gameType, searcher.Difficulty(white))
	if err != nil {
		log.Error().Err(err).Msg("white agent")
		os.Exit(1)
	}

	logic := engine.NewLogicFor(spec, boardSize)
	outcome := engine.NewMatch(logic, blackAgent, whiteAgent).Run()
	log.Info().Stringer("outcome", outcome).Msg("self-play done")
}
