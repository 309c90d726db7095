package search

// Domain describes an implicit unit-cost state space searched from both
// ends. States are compared by value; engines never mutate them.
type Domain[S comparable] interface {
	// Successors returns every state reachable from s by one action when
	// searching in dir. Every action costs exactly 1.
	Successors(s S, dir Direction) []S

	// Heuristic estimates the remaining distance from s to the target of
	// dir: the goal state for Forward, the initial state for Backward.
	// Estimates must be admissible and non-negative.
	Heuristic(s S, dir Direction) int
}

// PairValidator is implemented by domains that can vet an (initial, goal)
// pair before a search begins. Engines invoke it when present and return
// the error verbatim, so malformed inputs fail before any expansion.
type PairValidator[S comparable] interface {
	ValidatePair(initial, goal S) error
}
