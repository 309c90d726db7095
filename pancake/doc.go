// Package pancake implements the pancake-sorting state space: stacks of
// distinct-sized pancakes rearranged by prefix reversals.
//
// What
//
//   - Stack: an immutable byte-string permutation of 1..n, top first, with
//     the plate as the final element. Flip(k) reverses the top k+1 pancakes.
//   - Problem: a search.Domain[Stack] over all flips, with the GAP-x
//     heuristic forward and an uninformed (zero) backward estimate.
//   - A stack whose plate byte differs from the goal's is a valid input
//     that no flip sequence can solve; engines report it unsolvable by
//     exhausting the frontier.
//
// Why
//
//   - Pancake sorting is the standard benchmark for bidirectional
//     heuristic search with asymmetric information: one informed frontier,
//     one blind one.
//
// Heuristic
//
//	GAP-x counts adjacent pairs, from index x on, whose sizes differ by
//	more than one; the plate participates as the last element. x = 0 is
//	the full GAP heuristic, larger x degrades it toward blind search.
//	A single flip changes at most one adjacency, so the count never
//	exceeds the number of flips still needed.
//
// Complexity
//
//   - Successors: n-2 flips, O(n) bytes each.
//   - Heuristic:  O(n).
//
// Errors
//
//   - ErrStackTooShort / ErrStackTooLong  malformed stack shape.
//   - ErrNotPermutation                   values are not 1..n exactly once.
//   - ErrLengthMismatch                   initial/goal shapes differ.
//   - ErrGoalNotSorted                    goal is not the ascending stack.
//   - ErrGapOutOfRange                    gap index outside [0, len).
//   - ErrPairMismatch                     search pair differs from the
//     instance endpoints.
package pancake
