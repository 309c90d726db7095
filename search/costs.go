package search

// Cost is one cost-store entry: the best known path cost G for a state in
// a single direction, plus the Stamp of the Put that recorded it. Stamps
// grow monotonically per store, ordering states by discovery; engines use
// them as a final tie-break that does not depend on map iteration order.
type Cost struct {
	G     int
	Stamp uint64
}

// CostStore maps states to their best known path cost in one direction.
// It is deliberately separate from Frontier membership: sets never hold
// mutable cost data, and a cost update never perturbs a set.
type CostStore[S comparable] struct {
	costs map[S]Cost
	clock uint64
}

// NewCostStore returns an empty store.
func NewCostStore[S comparable]() *CostStore[S] {
	return &CostStore[S]{costs: make(map[S]Cost)}
}

// Get returns the entry recorded for s, if any.
func (cs *CostStore[S]) Get(s S) (Cost, bool) {
	c, ok := cs.costs[s]
	return c, ok
}

// Put records g as the best known cost for s and stamps the update.
func (cs *CostStore[S]) Put(s S, g int) {
	cs.clock++
	cs.costs[s] = Cost{G: g, Stamp: cs.clock}
}

// Len reports how many states have recorded costs.
func (cs *CostStore[S]) Len() int { return len(cs.costs) }
