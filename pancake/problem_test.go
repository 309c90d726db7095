package pancake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awgu/gbfhs/pancake"
	"github.com/awgu/gbfhs/search"
)

func mustStack(t *testing.T, vals []int) pancake.Stack {
	t.Helper()
	s, err := pancake.NewStack(vals)
	require.NoError(t, err)
	return s
}

func TestNewProblem_Validation(t *testing.T) {
	goal, err := pancake.Sorted(4)
	require.NoError(t, err)
	initial := mustStack(t, []int{2, 1, 3, 4})

	_, err = pancake.NewProblem(pancake.Stack("x"), goal, 0)
	assert.ErrorIs(t, err, pancake.ErrStackTooShort)

	short, err := pancake.Sorted(3)
	require.NoError(t, err)
	_, err = pancake.NewProblem(initial, short, 0)
	assert.ErrorIs(t, err, pancake.ErrLengthMismatch)

	_, err = pancake.NewProblem(initial, mustStack(t, []int{2, 1, 3, 4}), 0)
	assert.ErrorIs(t, err, pancake.ErrGoalNotSorted)

	_, err = pancake.NewProblem(initial, goal, -1)
	assert.ErrorIs(t, err, pancake.ErrGapOutOfRange)
	_, err = pancake.NewProblem(initial, goal, 4)
	assert.ErrorIs(t, err, pancake.ErrGapOutOfRange)

	p, err := pancake.NewProblem(initial, goal, 0)
	require.NoError(t, err)
	assert.Equal(t, initial, p.Initial())
	assert.Equal(t, goal, p.Goal())
}

func TestProblem_Successors(t *testing.T) {
	goal, _ := pancake.Sorted(4)
	initial := mustStack(t, []int{2, 1, 3, 4})
	p, err := pancake.NewProblem(initial, goal, 0)
	require.NoError(t, err)

	succs := p.Successors(initial, search.Forward)
	require.Len(t, succs, 2)
	assert.Equal(t, []int{1, 2, 3, 4}, succs[0].Ints())
	assert.Equal(t, []int{3, 1, 2, 4}, succs[1].Ints())

	// Flips are involutions, so both directions share the move set.
	assert.Equal(t, succs, p.Successors(initial, search.Backward))
}

func TestProblem_GapHeuristic(t *testing.T) {
	goal, _ := pancake.Sorted(4)
	initial := mustStack(t, []int{3, 1, 2, 4})
	p, err := pancake.NewProblem(initial, goal, 0)
	require.NoError(t, err)

	// Pairs (3,1) and (2,4) differ by more than one.
	assert.Equal(t, 2, p.Heuristic(initial, search.Forward))
	assert.Equal(t, 1, p.Heuristic(mustStack(t, []int{2, 1, 3, 4}), search.Forward))
	assert.Equal(t, 0, p.Heuristic(goal, search.Forward))
}

func TestProblem_GapDegradation(t *testing.T) {
	goal, _ := pancake.Sorted(4)
	initial := mustStack(t, []int{3, 1, 2, 4})

	// gapX = 1 drops the (3,1) pair, gapX = 3 drops everything.
	p1, err := pancake.NewProblem(initial, goal, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, p1.Heuristic(initial, search.Forward))

	p3, err := pancake.NewProblem(initial, goal, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, p3.Heuristic(initial, search.Forward))
}

func TestProblem_BackwardIsBlind(t *testing.T) {
	goal, _ := pancake.Sorted(4)
	initial := mustStack(t, []int{3, 1, 2, 4})
	p, err := pancake.NewProblem(initial, goal, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Heuristic(initial, search.Backward))
	assert.Equal(t, 0, p.Heuristic(goal, search.Backward))
}

func TestProblem_InvalidDirectionPanics(t *testing.T) {
	goal, _ := pancake.Sorted(4)
	initial := mustStack(t, []int{2, 1, 3, 4})
	p, err := pancake.NewProblem(initial, goal, 0)
	require.NoError(t, err)

	assert.Panics(t, func() { p.Heuristic(initial, search.Direction(9)) })
}

func TestProblem_ValidatePair(t *testing.T) {
	goal, _ := pancake.Sorted(4)
	initial := mustStack(t, []int{2, 1, 3, 4})
	p, err := pancake.NewProblem(initial, goal, 0)
	require.NoError(t, err)

	assert.NoError(t, p.ValidatePair(initial, goal))
	assert.ErrorIs(t, p.ValidatePair(goal, goal), pancake.ErrPairMismatch)
	assert.ErrorIs(t, p.ValidatePair(pancake.Stack("\x01"), goal), pancake.ErrStackTooShort)
}
