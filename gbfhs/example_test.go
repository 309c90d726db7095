// Package gbfhs_test provides examples demonstrating the fractional
// meeting-point engine. Each example is runnable via "go test -run
// Example", showing both code and expected output.
package gbfhs_test

import (
	"fmt"

	"github.com/awgu/gbfhs/gbfhs"
	"github.com/awgu/gbfhs/pancake"
	"github.com/awgu/gbfhs/search"
)

// ExampleSearch solves a four-pancake instance that needs exactly two
// flips: 3 1 2 4 -> 2 1 3 4 -> 1 2 3 4. The round-robin strategy makes
// the pick order independent of the seed.
func ExampleSearch() {
	// 1) Build the instance. The plate (4) stays at the bottom.
	initial, err := pancake.NewStack([]int{3, 1, 2, 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	goal, err := pancake.Sorted(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, err := pancake.NewProblem(initial, goal, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Run the search with unit edge costs and alternating picks.
	res, err := gbfhs.Search[pancake.Stack](p, initial, goal, 1,
		search.WithPickStrategy(search.PickRoundRobin))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost, "solved:", res.Solved)
	// Output: cost: 2 solved: true
}
