package search

import "errors"

// Sentinel errors shared by every engine in the suite.
var (
	// ErrNilDomain is returned when a nil Domain is passed to a search.
	ErrNilDomain = errors.New("search: domain is nil")

	// ErrNonPositiveEps is returned when eps < 1. Unit-cost spaces need a
	// positive integer lower bound on action cost.
	ErrNonPositiveEps = errors.New("search: eps must be >= 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)
