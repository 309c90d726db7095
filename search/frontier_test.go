package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awgu/gbfhs/search"
)

func TestFrontier_OpenInsertAndClose(t *testing.T) {
	f := search.NewFrontier[string]()

	f.OpenInsert("a")
	f.OpenInsert("b")
	assert.True(t, f.InOpen("a"))
	assert.True(t, f.InOpen("b"))
	assert.Equal(t, 2, f.OpenLen())
	assert.Equal(t, 0, f.ClosedLen())

	f.Close("a")
	assert.False(t, f.InOpen("a"))
	assert.True(t, f.InClosed("a"))
	assert.Equal(t, 1, f.OpenLen())
	assert.Equal(t, 1, f.ClosedLen())
}

func TestFrontier_DropReopens(t *testing.T) {
	f := search.NewFrontier[string]()

	f.OpenInsert("a")
	f.Close("a")

	// Reopen path: Drop, then OpenInsert under the improved cost.
	f.Drop("a")
	assert.False(t, f.InOpen("a"))
	assert.False(t, f.InClosed("a"))

	f.OpenInsert("a")
	assert.True(t, f.InOpen("a"))
	assert.False(t, f.InClosed("a"))
}

func TestFrontier_OpenInsertOfClosedPanics(t *testing.T) {
	f := search.NewFrontier[string]()
	f.OpenInsert("a")
	f.Close("a")

	assert.Panics(t, func() { f.OpenInsert("a") },
		"open and closed must stay disjoint")
}

func TestFrontier_CloseOfNonOpenPanics(t *testing.T) {
	f := search.NewFrontier[string]()

	assert.Panics(t, func() { f.Close("ghost") })
}

func TestFrontier_RangeOpenVisitsEveryState(t *testing.T) {
	f := search.NewFrontier[int]()
	for i := 0; i < 5; i++ {
		f.OpenInsert(i)
	}

	seen := make(map[int]bool)
	f.RangeOpen(func(s int) bool {
		seen[s] = true
		return true
	})
	assert.Len(t, seen, 5)
}

func TestFrontier_RangeOpenStopsEarly(t *testing.T) {
	f := search.NewFrontier[int]()
	for i := 0; i < 5; i++ {
		f.OpenInsert(i)
	}

	count := 0
	f.RangeOpen(func(int) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}
