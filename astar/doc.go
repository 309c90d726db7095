// Package astar implements unidirectional A* over a search.Domain, used as
// the reference baseline for the bidirectional engines.
//
// What
//
//   - Search: optimal unit-cost distance from initial to goal, forward
//     direction only, goal test at pop.
//   - Lazy priority queue: improvements push duplicate entries; stale ones
//     are skipped when popped against the closed set.
//
// Why
//
//   - Every bidirectional result in this module is cross-checked against a
//     plain A* on the same instance; the baseline has to stay boring and
//     obviously correct.
//
// Complexity
//
//   - Time:  O(N log N) pops for N pushed entries, plus successor
//     generation per expansion.
//   - Space: O(N) for the heap, cost store and closed set.
//
// Errors
//
//   - search.ErrNilDomain / search.ErrOptionViolation on bad arguments.
//   - Domain validation errors when the domain implements
//     search.PairValidator.
//   - ctx.Err() when a supplied context is canceled.
package astar
