package game

import "fmt"

// GameSpec describes one playable game type: how to build its rules and
// state, and its defaults. Specs are plain data assembled once at startup
// and passed into whatever needs them; there is no global registry.
type GameSpec struct {
	Type             string
	DisplayName      string
	DefaultBoardSize int
	NewRules         func() Rules
}

// Registry is the fixed set of game types the platform was configured
// with. Looking up a type that was never registered is a setup error, the
// one error class here that is not an in-play rejection.
type Registry struct {
	specs map[string]GameSpec
	order []string
}

func NewRegistry(specs ...GameSpec) *Registry {
	r := &Registry{specs: make(map[string]GameSpec, len(specs))}
	for _, spec := range specs {
		r.specs[spec.Type] = spec
		r.order = append(r.order, spec.Type)
	}
	return r
}

// DefaultRegistry wires the three built-in games.
func DefaultRegistry() *Registry {
	return NewRegistry(
		GameSpec{
			Type:             "gomoku",
			DisplayName:      "Gomoku",
			DefaultBoardSize: 15,
			NewRules:         func() Rules { return NewGomokuRules() },
		},
		GameSpec{
			Type:             "go",
			DisplayName:      "Go",
			DefaultBoardSize: 19,
			NewRules:         func() Rules { return NewGoRules() },
		},
		GameSpec{
			Type:             "reversi",
			DisplayName:      "Reversi",
			DefaultBoardSize: 8,
			NewRules:         func() Rules { return NewReversiRules() },
		},
	)
}

func (r *Registry) Spec(gameType string) (GameSpec, error) {
	spec, ok := r.specs[gameType]
	if !ok {
		return GameSpec{}, fmt.Errorf("unknown game type %q", gameType)
	}
	return spec, nil
}

// Types lists the registered game types in registration order.
func (r *Registry) Types() []string {
	types := make([]string, len(r.order))
	copy(types, r.order)
	return types
}
