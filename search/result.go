package search

// Stats counts the work one search performed.
type Stats struct {
	// Expanded counts node expansions per direction, indexed by Direction.
	// A node is counted once, when its successors are generated, never per
	// successor. Unidirectional engines use only the Forward slot.
	Expanded [2]uint64

	// Reopened counts states that re-entered Open after a shorter path to
	// them was found.
	Reopened uint64

	// Collisions counts successor insertions that met the opposite Open
	// set and tightened the solution bound.
	Collisions uint64

	// Levels counts GBFHS outer rounds. Zero for the other engines.
	Levels uint64
}

// TotalExpanded sums expansions over both directions.
func (st Stats) TotalExpanded() uint64 {
	return st.Expanded[Forward] + st.Expanded[Backward]
}

// Result is the outcome of a search. An unsolvable instance is a normal
// Result with Solved == false, never an error: errors are reserved for
// contract violations such as a nil domain, a bad eps, malformed states,
// or a canceled context.
type Result struct {
	// Cost is the optimal solution cost. Meaningful only when Solved.
	Cost int

	// Solved reports whether any path between the endpoints exists.
	Solved bool

	// Stats describes the work performed.
	Stats Stats
}
