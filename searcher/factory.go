package searcher

import "fmt"

// Difficulty selects an AI tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// Factory maps game type and difficulty to a strategy constructor. It is
// plain configuration built once at startup and passed to whoever spawns
// AI players; there is no global registry behind it.
type Factory struct {
	builders map[string]map[Difficulty]func() Strategy
}

// NewFactory wires the default tiers: random on easy, the game-specific
// heuristic on normal where one exists, tree search on hard. Go has no
// dedicated heuristic or search tier and plays random throughout.
func NewFactory() *Factory {
	f := &Factory{builders: make(map[string]map[Difficulty]func() Strategy)}

	f.Register("gomoku", Easy, func() Strategy { return NewRandom() })
	f.Register("gomoku", Normal, func() Strategy { return NewGomokuGreedy() })
	f.Register("gomoku", Hard, func() Strategy { return NewMCTS() })

	f.Register("reversi", Easy, func() Strategy { return NewRandom() })
	f.Register("reversi", Normal, func() Strategy { return NewReversiGreedy() })
	f.Register("reversi", Hard, func() Strategy { return NewMCTS() })

	f.Register("go", Easy, func() Strategy { return NewRandom() })
	f.Register("go", Normal, func() Strategy { return NewRandom() })
	f.Register("go", Hard, func() Strategy { return NewRandom() })

	return f
}

func (f *Factory) Register(gameType string, d Difficulty, build func() Strategy) {
	tiers, ok := f.builders[gameType]
	if !ok {
		tiers = make(map[Difficulty]func() Strategy)
		f.builders[gameType] = tiers
	}
	tiers[d] = build
}

// Strategy returns a fresh strategy for the game type and difficulty. An
// unknown combination is a setup error.
func (f *Factory) Strategy(gameType string, d Difficulty) (Strategy, error) {
	tiers, ok := f.builders[gameType]
	if !ok {
		return nil, fmt.Errorf("unknown game type %q", gameType)
	}
	build, ok := tiers[d]
	if !ok {
		return nil, fmt.Errorf("game %q has no %q difficulty", gameType, d)
	}
	return build(), nil
}

// Difficulties lists the tiers registered for a game type.
func (f *Factory) Difficulties(gameType string) []Difficulty {
	var out []Difficulty
	for _, d := range []Difficulty{Easy, Normal, Hard} {
		if _, ok := f.builders[gameType][d]; ok {
			out = append(out, d)
		}
	}
	return out
}
