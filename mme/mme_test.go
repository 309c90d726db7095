package mme_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awgu/gbfhs/astar"
	"github.com/awgu/gbfhs/mme"
	"github.com/awgu/gbfhs/npuzzle"
	"github.com/awgu/gbfhs/pancake"
	"github.com/awgu/gbfhs/search"
)

func pancakeProblem(t *testing.T, initial []int, gapX int) (*pancake.Problem, pancake.Stack, pancake.Stack) {
	t.Helper()
	init, err := pancake.NewStack(initial)
	require.NoError(t, err)
	goal, err := pancake.Sorted(len(initial))
	require.NoError(t, err)
	p, err := pancake.NewProblem(init, goal, gapX)
	require.NoError(t, err)
	return p, init, goal
}

func puzzleProblem(t *testing.T, initial []int, discount int) (*npuzzle.Problem, npuzzle.Board, npuzzle.Board) {
	t.Helper()
	init, err := npuzzle.NewBoard(initial)
	require.NoError(t, err)
	goal, err := npuzzle.Solved(init.Dim())
	require.NoError(t, err)
	p, err := npuzzle.NewProblem(init, goal, discount)
	require.NoError(t, err)
	return p, init, goal
}

func TestSearch_ArgumentErrors(t *testing.T) {
	p, init, goal := pancakeProblem(t, []int{2, 1, 3, 4}, 0)

	_, err := mme.Search[pancake.Stack](nil, init, goal, 1)
	assert.ErrorIs(t, err, search.ErrNilDomain)

	_, err = mme.Search[pancake.Stack](p, init, goal, 0)
	assert.ErrorIs(t, err, search.ErrNonPositiveEps)

	_, err = mme.Search[pancake.Stack](p, init, goal, 1,
		search.WithPickStrategy(search.PickStrategy(42)))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = mme.Search[pancake.Stack](p, goal, goal, 1)
	assert.ErrorIs(t, err, pancake.ErrPairMismatch)
}

func TestSearch_SameStateCostsZero(t *testing.T) {
	goal, err := pancake.Sorted(4)
	require.NoError(t, err)
	p, err := pancake.NewProblem(goal, goal, 0)
	require.NoError(t, err)

	res, err := mme.Search[pancake.Stack](p, goal, goal, 1)
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, uint64(0), res.Stats.TotalExpanded(),
		"a trivial instance must not expand anything")
}

func TestSearch_PancakeOneFlip(t *testing.T) {
	p, init, goal := pancakeProblem(t, []int{2, 1, 3, 4}, 0)

	res, err := mme.Search[pancake.Stack](p, init, goal, 1)
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Equal(t, 1, res.Cost)
	assert.Greater(t, res.Stats.Collisions, uint64(0))
}

func TestSearch_PuzzleOneMove(t *testing.T) {
	p, init, goal := puzzleProblem(t, []int{1, 2, 3, 4, 5, 6, 7, 0, 8}, 0)

	res, err := mme.Search[npuzzle.Board](p, init, goal, 1)
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Equal(t, 1, res.Cost)
}

func TestSearch_MatchesAStarOnPancakes(t *testing.T) {
	instances := [][]int{
		{2, 1, 3, 4},
		{2, 3, 1, 4},
		{3, 1, 2, 4},
		{4, 2, 5, 1, 3, 6},
		{5, 1, 4, 2, 3, 6},
		{3, 6, 2, 5, 1, 4, 7},
	}
	for _, vals := range instances {
		p, init, goal := pancakeProblem(t, vals, 0)

		want, err := astar.Search[pancake.Stack](p, init, goal)
		require.NoError(t, err)
		require.True(t, want.Solved)

		got, err := mme.Search[pancake.Stack](p, init, goal, 1,
			search.WithInvariantChecks())
		require.NoError(t, err)
		assert.True(t, got.Solved, "%v", vals)
		assert.Equal(t, want.Cost, got.Cost, "%v", vals)
	}
}

func TestSearch_MatchesAStarOnPuzzles(t *testing.T) {
	instances := [][]int{
		{1, 2, 3, 4, 5, 6, 7, 0, 8},
		{1, 0, 3, 4, 2, 5, 7, 8, 6},
		{4, 1, 3, 7, 2, 5, 0, 8, 6},
		{1, 2, 3, 0, 5, 6, 4, 7, 8},
	}
	for _, vals := range instances {
		p, init, goal := puzzleProblem(t, vals, 0)

		want, err := astar.Search[npuzzle.Board](p, init, goal)
		require.NoError(t, err)
		require.True(t, want.Solved)

		got, err := mme.Search[npuzzle.Board](p, init, goal, 1,
			search.WithInvariantChecks())
		require.NoError(t, err)
		assert.True(t, got.Solved, "%v", vals)
		assert.Equal(t, want.Cost, got.Cost, "%v", vals)
	}
}

func TestSearch_DegradedHeuristicKeepsOptimality(t *testing.T) {
	vals := []int{4, 2, 5, 1, 3, 6}

	full, init, goal := pancakeProblem(t, vals, 0)
	want, err := mme.Search[pancake.Stack](full, init, goal, 1)
	require.NoError(t, err)

	for gapX := 1; gapX < 6; gapX++ {
		p, init, goal := pancakeProblem(t, vals, gapX)
		got, err := mme.Search[pancake.Stack](p, init, goal, 1)
		require.NoError(t, err)
		assert.True(t, got.Solved)
		assert.Equal(t, want.Cost, got.Cost, "gapX=%d", gapX)
	}
}

func TestSearch_UnsolvablePancakeExhausts(t *testing.T) {
	p, init, goal := pancakeProblem(t, []int{1, 2, 4, 3}, 0)

	res, err := mme.Search[pancake.Stack](p, init, goal, 1)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Equal(t, uint64(0), res.Stats.Collisions)
	assert.Greater(t, res.Stats.TotalExpanded(), uint64(0))
}

func TestSearch_UnsolvablePuzzleExhausts(t *testing.T) {
	p, init, goal := puzzleProblem(t, []int{2, 1, 3, 0}, 0)

	res, err := mme.Search[npuzzle.Board](p, init, goal, 1)
	require.NoError(t, err)
	assert.False(t, res.Solved)
}

func TestSearch_ExpandsBothDirections(t *testing.T) {
	// Blind backward side: a non-trivial instance forces work on both
	// frontiers before the bound closes.
	p, init, goal := pancakeProblem(t, []int{3, 6, 2, 5, 1, 4, 7}, 0)

	res, err := mme.Search[pancake.Stack](p, init, goal, 1)
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Greater(t, res.Stats.Expanded[search.Forward], uint64(0))
	assert.Greater(t, res.Stats.Expanded[search.Backward], uint64(0))
}

func TestSearch_ContextCancellation(t *testing.T) {
	p, init, goal := pancakeProblem(t, []int{2, 1, 3, 4}, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mme.Search[pancake.Stack](p, init, goal, 1, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_DeterministicExpansionCounts(t *testing.T) {
	p, init, goal := pancakeProblem(t, []int{4, 2, 5, 1, 3, 6}, 0)

	first, err := mme.Search[pancake.Stack](p, init, goal, 1)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := mme.Search[pancake.Stack](p, init, goal, 1)
		require.NoError(t, err)
		assert.Equal(t, first.Stats, again.Stats, "run %d", i)
	}
}
