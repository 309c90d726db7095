package search

import (
	"context"
	"fmt"
)

// PickStrategy selects how the GBFHS level expansion chooses the next
// (direction, node) pair among the currently expandable nodes.
type PickStrategy uint8

const (
	// PickUniform draws uniformly at random across both expandable sets,
	// using the seeded engine RNG. This is the reference behavior.
	PickUniform PickStrategy = iota
	// PickRoundRobin alternates directions, skipping an exhausted side.
	PickRoundRobin
	// PickForwardFirst drains the forward side before the backward side.
	PickForwardFirst

	pickStrategyCount
)

// String implements fmt.Stringer.
func (p PickStrategy) String() string {
	switch p {
	case PickUniform:
		return "uniform"
	case PickRoundRobin:
		return "round-robin"
	case PickForwardFirst:
		return "forward-first"
	default:
		return fmt.Sprintf("pick(%d)", uint8(p))
	}
}

// ParsePickStrategy maps the names accepted on command lines and in suite
// configs back to a PickStrategy.
func ParsePickStrategy(name string) (PickStrategy, error) {
	switch name {
	case "", "uniform":
		return PickUniform, nil
	case "round-robin":
		return PickRoundRobin, nil
	case "forward-first":
		return PickForwardFirst, nil
	default:
		return 0, fmt.Errorf("%w: unknown pick strategy %q", ErrOptionViolation, name)
	}
}

// Option configures a search via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the tunables shared by every engine. Engines ignore knobs
// that do not apply to them (A* has no pick step).
type Options struct {
	// Ctx allows cancellation and deadlines. It is consulted at iteration
	// boundaries, never mid-expansion.
	Ctx context.Context

	// Seed initializes the engine-local RNG. Zero selects a fixed default
	// seed, so runs stay reproducible unless a seed is chosen explicitly.
	Seed int64

	// Pick selects the GBFHS level-expansion strategy.
	Pick PickStrategy

	// CheckInvariants enables per-expansion audits of frontier and
	// cost-store consistency. A failed audit panics: it is an engine bug,
	// never an input error.
	CheckInvariants bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, the fixed
// default seed, uniform random pick, and audits disabled.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Seed: 0,
		Pick: PickUniform,
	}
}

// BuildOptions folds opts over DefaultOptions and reports the first
// recorded violation. Engines call it once, before touching the domain.
func BuildOptions(opts ...Option) (Options, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return Options{}, options.err
	}
	return options, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed fixes the engine RNG seed. Zero keeps the default fixed seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithPickStrategy selects the GBFHS pick strategy.
func WithPickStrategy(p PickStrategy) Option {
	return func(o *Options) {
		if p >= pickStrategyCount {
			o.err = fmt.Errorf("%w: unknown pick strategy %d", ErrOptionViolation, p)
			return
		}
		o.Pick = p
	}
}

// WithInvariantChecks enables consistency audits after every expansion.
func WithInvariantChecks() Option {
	return func(o *Options) { o.CheckInvariants = true }
}
