package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awgu/gbfhs/search"
)

func TestBuildOptions_Defaults(t *testing.T) {
	o, err := search.BuildOptions()
	assert.NoError(t, err)
	assert.Equal(t, context.Background(), o.Ctx)
	assert.Equal(t, int64(0), o.Seed)
	assert.Equal(t, search.PickUniform, o.Pick)
	assert.False(t, o.CheckInvariants)
}

func TestBuildOptions_AppliesKnobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	o, err := search.BuildOptions(
		search.WithContext(ctx),
		search.WithSeed(42),
		search.WithPickStrategy(search.PickRoundRobin),
		search.WithInvariantChecks(),
	)
	assert.NoError(t, err)
	assert.Equal(t, ctx, o.Ctx)
	assert.Equal(t, int64(42), o.Seed)
	assert.Equal(t, search.PickRoundRobin, o.Pick)
	assert.True(t, o.CheckInvariants)
}

func TestBuildOptions_NilContextKeepsDefault(t *testing.T) {
	var ctx context.Context
	o, err := search.BuildOptions(search.WithContext(ctx))
	assert.NoError(t, err)
	assert.Equal(t, context.Background(), o.Ctx)
}

func TestBuildOptions_UnknownPickStrategy(t *testing.T) {
	_, err := search.BuildOptions(search.WithPickStrategy(search.PickStrategy(99)))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestParsePickStrategy(t *testing.T) {
	cases := []struct {
		name string
		want search.PickStrategy
	}{
		{"", search.PickUniform},
		{"uniform", search.PickUniform},
		{"round-robin", search.PickRoundRobin},
		{"forward-first", search.PickForwardFirst},
	}
	for _, tc := range cases {
		got, err := search.ParsePickStrategy(tc.name)
		assert.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}

	_, err := search.ParsePickStrategy("coin-flip")
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestPickStrategy_String(t *testing.T) {
	assert.Equal(t, "uniform", search.PickUniform.String())
	assert.Equal(t, "round-robin", search.PickRoundRobin.String())
	assert.Equal(t, "forward-first", search.PickForwardFirst.String())
}
