// Package npuzzle_test provides examples demonstrating the sliding-tile
// domain. Each example is runnable via "go test -run Example", showing
// both code and expected output.
package npuzzle_test

import (
	"fmt"

	"github.com/awgu/gbfhs/npuzzle"
)

// ExampleSolvable demonstrates the parity invariant: sliding moves never
// change it, so a board one move from the goal is reachable while a board
// with two tiles transposed is not.
func ExampleSolvable() {
	goal, err := npuzzle.Solved(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 1) One blank move away from the goal.
	near, err := npuzzle.NewBoard([]int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ok, err := npuzzle.Solvable(near, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ok)

	// 2) Tiles 1 and 2 swapped: opposite parity, unreachable.
	twisted, err := npuzzle.NewBoard([]int{2, 1, 3, 4, 5, 6, 7, 8, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ok, err = npuzzle.Solvable(twisted, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ok)
	// Output:
	// true
	// false
}
