// Package mme implements MMe, the meet-in-the-middle bidirectional search
// whose priority keeps both frontiers at or inside the midpoint of the
// cheapest solution.
//
// What
//
//   - Two best-first frontiers run toward each other under the priority
//     pr(n) = max(g(n)+h(n), 2g(n)+eps); the 2g term stops either side
//     from crossing the middle.
//   - Each iteration scans both Open sets, checks the termination bound
//     and expands one node from the side with the smaller minimal
//     priority (ties prefer Forward).
//   - A successor landing in the opposite Open set is a collision; the sum
//     of its two path costs tightens the solution bound u.
//   - The search stops when u <= max(C, fminF, fminB, gminF+gminB+eps),
//     which proves u optimal, or when a frontier empties (u then decides
//     between solved and unsolvable).
//
// Why
//
//   - On domains with one weak heuristic (pancake with a blind backward
//     side), meeting in the middle expands far fewer nodes than A* from
//     the strong side alone.
//
// Determinism
//
//	The scan reduces with the total order (pr, g, cost-store stamp), so
//	the node choice is reproducible regardless of map iteration order.
//
// Complexity
//
//   - Time:  O(E * |Open|): each of the E expansions rescans both Open
//     sets with a linear sweep.
//   - Space: O(reached states) across both cost stores.
//
// Errors
//
//   - search.ErrNilDomain / search.ErrNonPositiveEps /
//     search.ErrOptionViolation on bad arguments.
//   - Domain validation errors when the domain implements
//     search.PairValidator.
//   - ctx.Err() when a supplied context is canceled.
package mme
