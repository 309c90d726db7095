package gbfhs

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/awgu/gbfhs/search"
)

// unsolvable is the internal bound value meaning "no collision yet".
const unsolvable = math.MaxInt

// Search runs GBFHS between initial and goal over dom and returns the
// optimal unit-cost distance. eps is the smallest action cost (>= 1 in
// unit-cost spaces); the f limit never opens a level below it.
func Search[S comparable](dom search.Domain[S], initial, goal S, eps int, opts ...search.Option) (search.Result, error) {
	cfg, err := search.BuildOptions(opts...)
	if err != nil {
		return search.Result{}, err
	}
	if dom == nil {
		return search.Result{}, search.ErrNilDomain
	}
	if eps < 1 {
		return search.Result{}, search.ErrNonPositiveEps
	}
	if v, ok := dom.(search.PairValidator[S]); ok {
		if err = v.ValidatePair(initial, goal); err != nil {
			return search.Result{}, err
		}
	}
	if initial == goal {
		return search.Result{Cost: 0, Solved: true}, nil
	}

	e := newEngine(dom, eps, cfg)
	e.seed(initial, goal)
	return e.run()
}

// engine holds the mutable state of one GBFHS execution: a frontier, a
// cost store and an expandable pool per direction, the per-direction g
// limits, the shared f limit and the best collision cost found so far.
type engine[S comparable] struct {
	dom   search.Domain[S]
	eps   int
	cfg   search.Options
	rng   *rand.Rand
	front [2]*search.Frontier[S]
	costs [2]*search.CostStore[S]
	exp   [2]*expandSet[S]
	gLim  [2]int
	fLim  int
	best  int
	next  search.Direction
	stats search.Stats
}

func newEngine[S comparable](dom search.Domain[S], eps int, cfg search.Options) *engine[S] {
	return &engine[S]{
		dom:   dom,
		eps:   eps,
		cfg:   cfg,
		rng:   search.NewRNG(cfg.Seed),
		front: [2]*search.Frontier[S]{search.NewFrontier[S](), search.NewFrontier[S]()},
		costs: [2]*search.CostStore[S]{search.NewCostStore[S](), search.NewCostStore[S]()},
		exp:   [2]*expandSet[S]{newExpandSet[S](), newExpandSet[S]()},
		best:  unsolvable,
		next:  search.Forward,
	}
}

// seed opens both frontiers at their endpoints with cost zero and sets the
// opening f limit to max(h_F(initial), h_B(goal), eps).
func (e *engine[S]) seed(initial, goal S) {
	e.costs[search.Forward].Put(initial, 0)
	e.front[search.Forward].OpenInsert(initial)
	e.costs[search.Backward].Put(goal, 0)
	e.front[search.Backward].OpenInsert(goal)

	e.fLim = e.dom.Heuristic(initial, search.Forward)
	if hb := e.dom.Heuristic(goal, search.Backward); hb > e.fLim {
		e.fLim = hb
	}
	if e.eps > e.fLim {
		e.fLim = e.eps
	}
}

// run raises the f limit one level at a time. A level is optimal exactly
// when the best collision cost equals the limit that admitted it, checked
// both before splitting (the previous level may already have proved it)
// and after the level is exhausted.
func (e *engine[S]) run() (search.Result, error) {
	fwd, bwd := e.front[search.Forward], e.front[search.Backward]
	for fwd.OpenLen() > 0 && bwd.OpenLen() > 0 {
		select {
		case <-e.cfg.Ctx.Done():
			return search.Result{}, e.cfg.Ctx.Err()
		default:
		}

		if e.best == e.fLim {
			return e.finish(), nil
		}

		gLSum := e.fLim - e.eps + 1
		e.gLim[search.Forward], e.gLim[search.Backward] = splitLimits(gLSum,
			e.gLim[search.Forward], e.gLim[search.Backward])
		if e.cfg.CheckInvariants && e.gLim[search.Forward]+e.gLim[search.Backward] != gLSum {
			panic(fmt.Sprintf("gbfhs: split lost budget: %d+%d != %d",
				e.gLim[search.Forward], e.gLim[search.Backward], gLSum))
		}

		if err := e.expandLevel(); err != nil {
			return search.Result{}, err
		}
		if e.best == e.fLim {
			return e.finish(), nil
		}
		e.fLim++
	}
	return e.finish(), nil
}

// splitLimits distributes the level budget gLSum between the two g limits,
// halving the excess over their current sum. Both limits only ever grow and
// their sum lands exactly on gLSum.
func splitLimits(gLSum, gLimF, gLimB int) (int, int) {
	excess := gLSum - gLimF - gLimB
	gLimF += excess / 2
	gLimB += excess - excess/2
	return gLimF, gLimB
}

// expandLevel drains the expandable pools of the current level. Each pick
// closes one node and relaxes its successors; a collision at or under the
// f limit ends the level early.
func (e *engine[S]) expandLevel() error {
	e.stats.Levels++
	e.rebuild(search.Forward)
	e.rebuild(search.Backward)
	if e.cfg.CheckInvariants {
		e.audit()
	}

	for e.exp[search.Forward].len() > 0 || e.exp[search.Backward].len() > 0 {
		select {
		case <-e.cfg.Ctx.Done():
			return e.cfg.Ctx.Err()
		default:
		}

		node, dir := e.pick()
		e.front[dir].Close(node)
		if e.expandNode(node, dir) {
			return nil
		}
	}
	return nil
}

// rebuild refills the expandable pool for dir from its Open set, ordered by
// cost-store stamp so the pool layout does not depend on map iteration
// order.
func (e *engine[S]) rebuild(dir search.Direction) {
	set, costs := e.exp[dir], e.costs[dir]
	set.reset()

	var pool []S
	e.front[dir].RangeOpen(func(s S) bool {
		if e.eligible(s, dir) {
			pool = append(pool, s)
		}
		return true
	})
	sort.Slice(pool, func(i, j int) bool {
		ci, _ := costs.Get(pool[i])
		cj, _ := costs.Get(pool[j])
		return ci.Stamp < cj.Stamp
	})
	for _, s := range pool {
		set.insert(s)
	}
}

// eligible reports whether open state s fits the current level in dir:
// f within the f limit and g strictly under the direction's g limit.
func (e *engine[S]) eligible(s S, dir search.Direction) bool {
	c, ok := e.costs[dir].Get(s)
	if !ok {
		panic(fmt.Sprintf("gbfhs: open state %v missing from the %s cost store", s, dir))
	}
	return c.G+e.dom.Heuristic(s, dir) <= e.fLim && c.G < e.gLim[dir]
}

// pick removes and returns the next node to expand according to the
// configured strategy. At least one pool must be non-empty.
func (e *engine[S]) pick() (S, search.Direction) {
	fwd, bwd := e.exp[search.Forward], e.exp[search.Backward]
	switch e.cfg.Pick {
	case search.PickUniform:
		idx := e.rng.Intn(fwd.len() + bwd.len())
		if idx < fwd.len() {
			return fwd.removeIndex(idx), search.Forward
		}
		return bwd.removeIndex(idx - fwd.len()), search.Backward
	case search.PickRoundRobin:
		dir := e.next
		if e.exp[dir].len() == 0 {
			dir = dir.Opposite()
		}
		e.next = dir.Opposite()
		return e.exp[dir].removeLast(), dir
	case search.PickForwardFirst:
		dir := search.Forward
		if fwd.len() == 0 {
			dir = search.Backward
		}
		return e.exp[dir].removeLast(), dir
	default:
		panic(fmt.Sprintf("gbfhs: unknown pick strategy %d", e.cfg.Pick))
	}
}

// expandNode relaxes the successors of node in dir. Improved states re-enter
// Open (and the pool when still eligible); every insertion that meets the
// opposite Open set tightens best. Returns true when best proves the level
// done.
func (e *engine[S]) expandNode(node S, dir search.Direction) bool {
	front, costs := e.front[dir], e.costs[dir]
	opp := dir.Opposite()

	e.stats.Expanded[dir]++

	base, ok := costs.Get(node)
	if !ok {
		panic(fmt.Sprintf("gbfhs: expanded node %v missing from the %s cost store", node, dir))
	}
	ng := base.G + 1
	for _, s := range e.dom.Successors(node, dir) {
		if known, ok := costs.Get(s); ok {
			if known.G <= ng {
				continue
			}
			// Shorter path found: s re-enters Open under the new cost.
			front.Drop(s)
			e.stats.Reopened++
		}
		costs.Put(s, ng)
		front.OpenInsert(s)
		if e.eligible(s, dir) {
			e.exp[dir].insert(s)
		}

		if e.front[opp].InOpen(s) {
			oc, ok := e.costs[opp].Get(s)
			if !ok {
				panic(fmt.Sprintf("gbfhs: open state %v missing from the %s cost store", s, opp))
			}
			e.stats.Collisions++
			if sum := ng + oc.G; sum < e.best {
				e.best = sum
			}
			if e.best <= e.fLim {
				return true
			}
		}
	}
	return false
}

// audit cross-checks both expandable pools against their frontiers: every
// pooled state must be open, indexed at its slice position and still
// eligible. Opt-in via WithInvariantChecks; a breach is an engine bug and
// panics.
func (e *engine[S]) audit() {
	for _, dir := range []search.Direction{search.Forward, search.Backward} {
		set := e.exp[dir]
		for i, s := range set.items {
			if set.index[s] != i {
				panic(fmt.Sprintf("gbfhs: pool index for %v is stale in %s", s, dir))
			}
			if !e.front[dir].InOpen(s) {
				panic(fmt.Sprintf("gbfhs: pooled state %v is not open in %s", s, dir))
			}
			if !e.eligible(s, dir) {
				panic(fmt.Sprintf("gbfhs: pooled state %v is not expandable in %s", s, dir))
			}
		}
	}
}

// finish converts the internal bound into a Result.
func (e *engine[S]) finish() search.Result {
	if e.best == unsolvable {
		return search.Result{Stats: e.stats}
	}
	return search.Result{Cost: e.best, Solved: true, Stats: e.stats}
}
