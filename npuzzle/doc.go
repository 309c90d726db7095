// Package npuzzle implements the sliding-tile puzzle state space: a
// dim*dim board of numbered tiles and one blank, rearranged by sliding a
// tile into the blank.
//
// What
//
//   - Board: an immutable byte-string permutation of 0..dim*dim-1 in
//     row-major order, 0 marking the blank.
//   - Problem: a search.Domain[Board] over the up-to-four blank moves,
//     with a discounted Manhattan heuristic anchored to the goal (Forward)
//     or to the initial board (Backward).
//   - Solvable: the inversion-parity reachability test, so generators can
//     screen instances without searching.
//
// Why
//
//   - The n-puzzle is the classic unit-cost benchmark with informed
//     heuristics on both frontiers, complementing the one-sided pancake
//     domain.
//
// Heuristic
//
//	Discounted Manhattan distance: tiles below max(1, discount) are left
//	out of the sum. 0 and 1 keep the full heuristic; raising the discount
//	degrades it toward blind search. A move displaces exactly one tile by
//	one cell, so the sum never exceeds the true distance.
//
// Complexity
//
//   - Successors: at most 4 boards, O(dim²) bytes each.
//   - Heuristic:  O(dim²) with positions precomputed per instance.
//
// Errors
//
//   - ErrNotSquare / ErrDimOutOfRange   malformed board shape.
//   - ErrNotPermutation                 tiles are not 0..n-1 exactly once.
//   - ErrDimMismatch                    boards of different dims paired.
//   - ErrDiscountOutOfRange             discount outside [0, dim*dim).
//   - ErrPairMismatch                   search pair differs from the
//     instance endpoints.
package npuzzle
