package mme

import (
	"fmt"
	"math"

	"github.com/awgu/gbfhs/search"
)

// unsolvable is the internal bound value meaning "no collision yet".
const unsolvable = math.MaxInt

// Search runs MMe between initial and goal over dom and returns the
// optimal unit-cost distance. eps is the smallest action cost (>= 1 in
// unit-cost spaces); it sharpens both the priority and the termination
// bound.
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

// engine holds the mutable state of one MMe execution: a frontier and a
// cost store per direction, plus the collision bound u.
type engine[S comparable] struct {
	dom   search.Domain[S]
	eps   int
	cfg   search.Options
	front [2]*search.Frontier[S]
	costs [2]*search.CostStore[S]
	u     int
	stats search.Stats
}

func newEngine[S comparable](dom search.Domain[S], eps int, cfg search.Options) *engine[S] {
	return &engine[S]{
		dom:   dom,
		eps:   eps,
		cfg:   cfg,
		front: [2]*search.Frontier[S]{search.NewFrontier[S](), search.NewFrontier[S]()},
		costs: [2]*search.CostStore[S]{search.NewCostStore[S](), search.NewCostStore[S]()},
		u:     unsolvable,
	}
}

// seed opens both frontiers at their endpoints with cost zero.
func (e *engine[S]) seed(initial, goal S) {
	e.costs[search.Forward].Put(initial, 0)
	e.front[search.Forward].OpenInsert(initial)
	e.costs[search.Backward].Put(goal, 0)
	e.front[search.Backward].OpenInsert(goal)
}

// run alternates scan / termination test / expansion until the bound
// proves u optimal or a frontier runs dry.
func (e *engine[S]) run() (search.Result, error) {
	fwd, bwd := e.front[search.Forward], e.front[search.Backward]
	for fwd.OpenLen() > 0 && bwd.OpenLen() > 0 {
		select {
		case <-e.cfg.Ctx.Done():
			return search.Result{}, e.cfg.Ctx.Err()
		default:
		}

		sf := e.scan(search.Forward)
		sb := e.scan(search.Backward)
		c := sf.pr
		if sb.pr < c {
			c = sb.pr
		}

		// u can never drop below any of these lower bounds; once it stops
		// exceeding all of them it is the optimal cost.
		bound := c
		if sf.f > bound {
			bound = sf.f
		}
		if sb.f > bound {
			bound = sb.f
		}
		if gsum := sf.g + sb.g + e.eps; gsum > bound {
			bound = gsum
		}
		if e.u <= bound {
			return e.finish(), nil
		}

		// The side achieving C expands; ties prefer Forward.
		if sf.pr <= sb.pr {
			e.expand(search.Forward, sf.node)
		} else {
			e.expand(search.Backward, sb.node)
		}
	}
	return e.finish(), nil
}

// scanStats is one frontier sweep: the node to expand next plus the minima
// the termination test needs.
type scanStats[S comparable] struct {
	node S
	pr   int
	f    int
	g    int
}

// scan sweeps Open in dir and returns the node of minimal priority
// pr = max(g+h, 2g+eps) together with the minima of pr, f and g over the
// whole set. Ties on pr prefer smaller g, then the older cost-store stamp,
// so the choice does not depend on map iteration order.
func (e *engine[S]) scan(dir search.Direction) scanStats[S] {
	st := scanStats[S]{pr: math.MaxInt, f: math.MaxInt, g: math.MaxInt}
	var bestG int
	var bestStamp uint64
	e.front[dir].RangeOpen(func(s S) bool {
		c, ok := e.costs[dir].Get(s)
		if !ok {
			panic(fmt.Sprintf("mme: open state %v missing from the %s cost store", s, dir))
		}
		f := c.G + e.dom.Heuristic(s, dir)
		pr := f
		if alt := 2*c.G + e.eps; alt > pr {
			pr = alt
		}
		if f < st.f {
			st.f = f
		}
		if c.G < st.g {
			st.g = c.G
		}
		if pr < st.pr || (pr == st.pr && (c.G < bestG || (c.G == bestG && c.Stamp < bestStamp))) {
			st.pr = pr
			st.node = s
			bestG = c.G
			bestStamp = c.Stamp
		}
		return true
	})
	return st
}

// expand closes node and relaxes its successors in dir. Every insertion
// that meets the opposite Open set tightens u.
func (e *engine[S]) expand(dir search.Direction, node S) {
	front, costs := e.front[dir], e.costs[dir]
	opp := dir.Opposite()

	front.Close(node)
	e.stats.Expanded[dir]++

	base, ok := costs.Get(node)
	if !ok {
		panic(fmt.Sprintf("mme: expanded node %v missing from the %s cost store", node, dir))
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

		if e.front[opp].InOpen(s) {
			oc, ok := e.costs[opp].Get(s)
			if !ok {
				panic(fmt.Sprintf("mme: open state %v missing from the %s cost store", s, opp))
			}
			e.stats.Collisions++
			if sum := ng + oc.G; sum < e.u {
				e.u = sum
			}
		}
	}

	if e.cfg.CheckInvariants {
		e.audit()
	}
}

// audit sweeps both frontiers and checks that every open state has a cost
// entry. Opt-in via WithInvariantChecks; a breach is an engine bug and
// panics.
func (e *engine[S]) audit() {
	for _, dir := range []search.Direction{search.Forward, search.Backward} {
		costs := e.costs[dir]
		e.front[dir].RangeOpen(func(s S) bool {
			if _, ok := costs.Get(s); !ok {
				panic(fmt.Sprintf("mme: open state %v missing from the %s cost store", s, dir))
			}
			return true
		})
	}
}

// finish converts the internal bound into a Result.
func (e *engine[S]) finish() search.Result {
	if e.u == unsolvable {
		return search.Result{Stats: e.stats}
	}
	return search.Result{Cost: e.u, Solved: true, Stats: e.stats}
}
