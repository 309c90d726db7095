package pancake

import "errors"

// Sentinel errors returned by stack and instance validation.
var (
	// ErrStackTooShort is returned when a stack has fewer than two elements.
	ErrStackTooShort = errors.New("pancake: stack needs at least two elements")

	// ErrStackTooLong is returned when a stack cannot fit byte-sized values.
	ErrStackTooLong = errors.New("pancake: stack exceeds 255 elements")

	// ErrNotPermutation is returned when values are not a permutation of 1..n.
	ErrNotPermutation = errors.New("pancake: values are not a permutation of 1..n")

	// ErrLengthMismatch is returned when initial and goal lengths differ.
	ErrLengthMismatch = errors.New("pancake: initial and goal lengths differ")

	// ErrGoalNotSorted is returned when the goal is not the ascending stack.
	ErrGoalNotSorted = errors.New("pancake: goal must be the ascending stack")

	// ErrGapOutOfRange is returned when the gap index lies outside [0, len).
	ErrGapOutOfRange = errors.New("pancake: gap index out of range")

	// ErrPairMismatch is returned when a search pair differs from the
	// instance endpoints.
	ErrPairMismatch = errors.New("pancake: search pair differs from instance endpoints")
)
