package search

import "fmt"

// Direction selects which half of a bidirectional search an operation
// applies to. The zero value is Forward.
type Direction uint8

const (
	// Forward searches from the initial state toward the goal.
	Forward Direction = iota
	// Backward searches from the goal toward the initial state.
	Backward
)

// Opposite returns the other direction. Any value that is neither Forward
// nor Backward is a programming error and panics.
func (d Direction) Opposite() Direction {
	switch d {
	case Forward:
		return Backward
	case Backward:
		return Forward
	default:
		panic(fmt.Sprintf("search: invalid direction %d", d))
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		panic(fmt.Sprintf("search: invalid direction %d", d))
	}
}
