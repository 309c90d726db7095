package search

import "fmt"

// Frontier tracks Open/Closed membership for one direction. The two sets
// are disjoint by construction: OpenInsert refuses closed states and Close
// refuses states that are not open. Both refuse with a panic, because
// either call is an engine bug rather than a recoverable condition.
type Frontier[S comparable] struct {
	open   map[S]struct{}
	closed map[S]struct{}
}

// NewFrontier returns an empty frontier.
func NewFrontier[S comparable]() *Frontier[S] {
	return &Frontier[S]{
		open:   make(map[S]struct{}),
		closed: make(map[S]struct{}),
	}
}

// OpenInsert adds s to Open. Inserting a closed state panics; callers must
// reopen via Drop first.
func (f *Frontier[S]) OpenInsert(s S) {
	if _, ok := f.closed[s]; ok {
		panic(fmt.Sprintf("search: open insert of closed state %v", s))
	}
	f.open[s] = struct{}{}
}

// Close moves s from Open to Closed. Closing a state that is not open
// panics.
func (f *Frontier[S]) Close(s S) {
	if _, ok := f.open[s]; !ok {
		panic(fmt.Sprintf("search: close of non-open state %v", s))
	}
	delete(f.open, s)
	f.closed[s] = struct{}{}
}

// Drop removes s from both sets. Engines call it when a shorter path to s
// is found and s must re-enter Open under the improved cost.
func (f *Frontier[S]) Drop(s S) {
	delete(f.open, s)
	delete(f.closed, s)
}

// InOpen reports whether s is open.
func (f *Frontier[S]) InOpen(s S) bool {
	_, ok := f.open[s]
	return ok
}

// InClosed reports whether s is closed.
func (f *Frontier[S]) InClosed(s S) bool {
	_, ok := f.closed[s]
	return ok
}

// OpenLen reports the number of open states.
func (f *Frontier[S]) OpenLen() int { return len(f.open) }

// ClosedLen reports the number of closed states.
func (f *Frontier[S]) ClosedLen() int { return len(f.closed) }

// RangeOpen calls fn for every open state until fn returns false.
// Iteration order is unspecified; callers that need determinism must
// reduce with an order-independent rule.
func (f *Frontier[S]) RangeOpen(fn func(s S) bool) {
	for s := range f.open {
		if !fn(s) {
			return
		}
	}
}
