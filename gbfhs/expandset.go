package gbfhs

// expandSet is the per-direction pool of expandable states for the current
// level. It pairs a slice with an index map so membership tests are O(1),
// inserts append in arrival order, and removal by position is a swap with
// the tail. Only picks remove entries, so slice order stays reproducible
// for a fixed seed.
type expandSet[S comparable] struct {
	items []S
	index map[S]int
}

func newExpandSet[S comparable]() *expandSet[S] {
	return &expandSet[S]{index: make(map[S]int)}
}

func (x *expandSet[S]) len() int { return len(x.items) }

func (x *expandSet[S]) contains(s S) bool {
	_, ok := x.index[s]
	return ok
}

// insert appends s unless it is already pooled.
func (x *expandSet[S]) insert(s S) {
	if _, ok := x.index[s]; ok {
		return
	}
	x.index[s] = len(x.items)
	x.items = append(x.items, s)
}

// removeIndex removes and returns the entry at position i, filling the gap
// with the tail entry.
func (x *expandSet[S]) removeIndex(i int) S {
	s := x.items[i]
	last := len(x.items) - 1
	if i != last {
		x.items[i] = x.items[last]
		x.index[x.items[i]] = i
	}
	x.items = x.items[:last]
	delete(x.index, s)
	return s
}

// removeLast pops the most recently inserted entry.
func (x *expandSet[S]) removeLast() S {
	return x.removeIndex(len(x.items) - 1)
}

// reset empties the pool for the next level, keeping the slice capacity.
func (x *expandSet[S]) reset() {
	x.items = x.items[:0]
	x.index = make(map[S]int, len(x.index))
}
