package searcher

// Hyperparameters for the tree search

const Exploration = 1.4 // UCB1 exploration constant

const DefaultSimulations = 100

// Rollout outcomes, judged relative to the node the rollout started from
const (
	Win  = 1
	Loss = -1
	Draw = 0
)
