package pancake

import (
	"fmt"

	"github.com/awgu/gbfhs/search"
)

// Problem binds one pancake-sorting instance: an initial stack, the sorted
// goal it must reach, and the GAP-x degradation applied to the forward
// heuristic. It implements search.Domain[Stack] and search.PairValidator.
type Problem struct {
	initial Stack
	goal    Stack
	gapX    int
}

// NewProblem validates the instance and returns it as a search domain.
// The goal must be the ascending stack of the same length as initial (the
// GAP heuristic is defined against that ordering). gapX in [0, len) drops
// the first gapX adjacencies from the count; 0 keeps the full heuristic.
func NewProblem(initial, goal Stack, gapX int) (*Problem, error) {
	if err := initial.validate(); err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	if err := goal.validate(); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	if len(initial) != len(goal) {
		return nil, ErrLengthMismatch
	}
	if !goal.isSorted() {
		return nil, ErrGoalNotSorted
	}
	if gapX < 0 || gapX >= len(initial) {
		return nil, ErrGapOutOfRange
	}
	return &Problem{initial: initial, goal: goal, gapX: gapX}, nil
}

// Initial returns the bound initial stack.
func (p *Problem) Initial() Stack { return p.initial }

// Goal returns the bound goal stack.
func (p *Problem) Goal() Stack { return p.goal }

// Successors returns every stack reachable by one flip. Flips are their
// own inverses, so the move set is identical in both directions.
func (p *Problem) Successors(s Stack, _ search.Direction) []Stack {
	succs := make([]Stack, 0, len(s)-2)
	for k := 1; k <= len(s)-2; k++ {
		succs = append(succs, s.Flip(k))
	}
	return succs
}

// Heuristic returns the GAP-x count toward the sorted goal for Forward and
// zero for Backward: the backward frontier runs uninformed, which is the
// asymmetry this domain exists to exercise.
func (p *Problem) Heuristic(s Stack, dir search.Direction) int {
	switch dir {
	case search.Forward:
		return p.gap(s)
	case search.Backward:
		return 0
	default:
		panic(fmt.Sprintf("pancake: invalid direction %d", dir))
	}
}

// gap counts adjacent pairs, from index gapX on, whose sizes differ by
// more than one. The plate participates as the final element. Each flip
// changes at most one adjacency, so the count is admissible.
func (p *Problem) gap(s Stack) int {
	h := 0
	for i := p.gapX; i < len(s)-1; i++ {
		d := int(s[i]) - int(s[i+1])
		if d < -1 || d > 1 {
			h++
		}
	}
	return h
}

// ValidatePair vets the exact pair a search was invoked with: both stacks
// must be well-formed and must be this instance's own endpoints, since the
// heuristic is anchored to them.
func (p *Problem) ValidatePair(initial, goal Stack) error {
	if err := initial.validate(); err != nil {
		return fmt.Errorf("initial: %w", err)
	}
	if err := goal.validate(); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	if initial != p.initial || goal != p.goal {
		return ErrPairMismatch
	}
	return nil
}
