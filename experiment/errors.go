package experiment

import "errors"

// Sentinel errors returned by suite configuration validation.
var (
	// ErrNoExperiments is returned when a config lists no experiments.
	ErrNoExperiments = errors.New("experiment: config lists no experiments")

	// ErrBadTrials is returned when the trial count is not positive.
	ErrBadTrials = errors.New("experiment: trials must be >= 1")

	// ErrMissingName is returned when an experiment has an empty name.
	ErrMissingName = errors.New("experiment: experiment name is empty")

	// ErrDuplicateName is returned when two experiments share a name.
	ErrDuplicateName = errors.New("experiment: duplicate experiment name")

	// ErrUnknownDomain is returned for a domain other than pancake or npuzzle.
	ErrUnknownDomain = errors.New("experiment: unknown domain")

	// ErrUnknownAlgorithm is returned for an algorithm other than mme,
	// gbfhs or astar.
	ErrUnknownAlgorithm = errors.New("experiment: unknown algorithm")

	// ErrBadSize is returned when an instance size cannot form a state.
	ErrBadSize = errors.New("experiment: instance size out of range")

	// ErrBadEps is returned when the cheapest-operator bound is not positive.
	ErrBadEps = errors.New("experiment: eps must be >= 1")

	// ErrBadGap is returned when the pancake gap index is negative.
	ErrBadGap = errors.New("experiment: gap index must be >= 0")

	// ErrBadDiscount is returned when the puzzle discount is negative.
	ErrBadDiscount = errors.New("experiment: discount must be >= 0")
)
