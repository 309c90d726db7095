// Package gbfhs implements GBFHS, the fractional-meeting bidirectional
// search that raises a shared f limit one unit at a time and spends a
// split g budget on both frontiers inside each level.
//
// What
//
//   - A level admits every open state with g+h <= fLim and g under its
//     direction's g limit; the two g limits always sum to fLim-eps+1,
//     rebalanced by a halving split that only ever grows either side.
//   - Within a level the expandable pools are drained one pick at a time;
//     the pick strategy is injectable (uniform over both pools, round-robin
//     between directions, forward-first).
//   - A successor landing in the opposite Open set is a collision; the
//     search is done exactly when the best collision cost equals the f
//     limit that admitted it, or when a frontier empties.
//
// Why
//
//   - The split keeps the meeting point adjustable: a balanced split meets
//     in the middle, while a skewed one can exploit one strong heuristic
//     side. The f-layered schedule guarantees optimality without MMe's
//     per-expansion full scans.
//
// Determinism
//
//	Pools are rebuilt each level in cost-store stamp order and only picks
//	remove from them, so for a fixed seed the uniform strategy reproduces
//	its choices exactly; the deterministic strategies pop the most recently
//	pooled state of their direction.
//
// Complexity
//
//   - Time:  O(E + sum over levels of |Open|) for E expansions; each level
//     rebuilds its pools with one sweep per direction.
//   - Space: O(reached states) across both cost stores.
//
// Errors
//
//   - search.ErrNilDomain / search.ErrNonPositiveEps /
//     search.ErrOptionViolation on bad arguments.
//   - Domain validation errors when the domain implements
//     search.PairValidator.
//   - ctx.Err() when a supplied context is canceled.
package gbfhs
