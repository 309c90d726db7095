// Package search holds the shared kernel of the suite: the state-space
// contract implemented by domains and the bookkeeping types used by every
// engine.
//
// What
//
//   - Domain[S]: an implicit unit-cost state space (Successors + Heuristic),
//     queried per Direction (Forward from the initial state, Backward from
//     the goal).
//   - CostStore[S]: per-direction best path costs keyed by state identity,
//     kept strictly apart from set membership so that a cost update never
//     mutates a key sitting inside a set. Every update is stamped by a
//     monotone clock; the stamp is the deterministic last tie-break used by
//     the engines.
//   - Frontier[S]: Open/Closed membership with disjointness enforced
//     structurally. Violations panic: they are engine bugs, not inputs.
//   - Options / Option: functional options shared by the engines (context,
//     RNG seed, GBFHS pick strategy, invariant audits).
//   - Result / Stats: solution cost plus expansion counters. An unsolvable
//     instance is a Result with Solved == false, not an error.
//
// Why
//
//   - MMe and GBFHS share their per-direction bookkeeping and their
//     successor rule; one kernel keeps the engines small and keeps the
//     invariants in a single place.
//
// Errors
//
//   - ErrNilDomain        if a nil Domain is passed to a search.
//   - ErrNonPositiveEps   if eps < 1.
//   - ErrOptionViolation  if an invalid Option is supplied.
package search
