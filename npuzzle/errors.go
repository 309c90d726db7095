package npuzzle

import "errors"

// Sentinel errors returned by board and instance validation.
var (
	// ErrNotSquare is returned when a value slice is not dim*dim long.
	ErrNotSquare = errors.New("npuzzle: board length must be a perfect square")

	// ErrDimOutOfRange is returned when dim lies outside [2, 15].
	ErrDimOutOfRange = errors.New("npuzzle: dim must be in [2, 15]")

	// ErrNotPermutation is returned when tiles are not a permutation of
	// 0..dim*dim-1.
	ErrNotPermutation = errors.New("npuzzle: tiles are not a permutation of 0..n-1")

	// ErrDimMismatch is returned when two boards have different dims.
	ErrDimMismatch = errors.New("npuzzle: boards have different dims")

	// ErrDiscountOutOfRange is returned when the Manhattan discount lies
	// outside [0, dim*dim).
	ErrDiscountOutOfRange = errors.New("npuzzle: discount out of range")

	// ErrPairMismatch is returned when a search pair differs from the
	// instance endpoints.
	ErrPairMismatch = errors.New("npuzzle: search pair differs from instance endpoints")
)
