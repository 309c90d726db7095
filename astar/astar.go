package astar

import (
	"container/heap"
	"context"

	"github.com/awgu/gbfhs/search"
)

// Search runs A* from initial to goal over dom and returns the optimal
// cost. It is the unidirectional baseline the bidirectional engines are
// checked against; only the Forward direction of dom is used.
//
// The heuristic must be consistent (every domain in this module is):
// closed states are final and are never reopened.
func Search[S comparable](dom search.Domain[S], initial, goal S, opts ...search.Option) (search.Result, error) {
	cfg, err := search.BuildOptions(opts...)
	if err != nil {
		return search.Result{}, err
	}
	if dom == nil {
		return search.Result{}, search.ErrNilDomain
	}
	if v, ok := dom.(search.PairValidator[S]); ok {
		if err = v.ValidatePair(initial, goal); err != nil {
			return search.Result{}, err
		}
	}
	if initial == goal {
		return search.Result{Cost: 0, Solved: true}, nil
	}

	r := &runner[S]{
		dom:    dom,
		goal:   goal,
		ctx:    cfg.Ctx,
		g:      search.NewCostStore[S](),
		closed: make(map[S]struct{}),
	}
	return r.run(initial)
}

// runner holds the mutable state of a single A* execution.
type runner[S comparable] struct {
	dom    search.Domain[S]
	goal   S
	ctx    context.Context
	g      *search.CostStore[S]
	closed map[S]struct{}
	pq     nodePQ[S]
	stats  search.Stats
}

// run owns the pop loop: stale entries are skipped, the goal test happens
// at pop (so the popped cost is already optimal), and exhaustion means the
// instance is unsolvable.
func (r *runner[S]) run(initial S) (search.Result, error) {
	heap.Init(&r.pq)
	r.g.Put(initial, 0)
	heap.Push(&r.pq, &nodeItem[S]{state: initial, f: r.dom.Heuristic(initial, search.Forward)})

	for r.pq.Len() > 0 {
		select {
		case <-r.ctx.Done():
			return search.Result{}, r.ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem[S])
		s := item.state
		if _, ok := r.closed[s]; ok {
			continue // stale lazy-decrease-key entry
		}
		if s == r.goal {
			c, _ := r.g.Get(s)
			return search.Result{Cost: c.G, Solved: true, Stats: r.stats}, nil
		}
		r.closed[s] = struct{}{}
		r.expand(s)
	}
	return search.Result{Stats: r.stats}, nil
}

// expand relaxes the successors of s, pushing a fresh heap entry for every
// strict improvement.
func (r *runner[S]) expand(s S) {
	r.stats.Expanded[search.Forward]++
	cur, _ := r.g.Get(s)
	ng := cur.G + 1
	for _, succ := range r.dom.Successors(s, search.Forward) {
		if _, ok := r.closed[succ]; ok {
			continue
		}
		if known, ok := r.g.Get(succ); ok && known.G <= ng {
			continue
		}
		r.g.Put(succ, ng)
		heap.Push(&r.pq, &nodeItem[S]{state: succ, f: ng + r.dom.Heuristic(succ, search.Forward)})
	}
}

// nodeItem is one heap entry: a state and the f value it was pushed under.
type nodeItem[S comparable] struct {
	state S
	f     int
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending, operated with
// the lazy-decrease-key pattern: improvements push duplicates and stale
// entries are ignored at pop.
type nodePQ[S comparable] []*nodeItem[S]

func (pq nodePQ[S]) Len() int           { return len(pq) }
func (pq nodePQ[S]) Less(i, j int) bool { return pq[i].f < pq[j].f }
func (pq nodePQ[S]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
