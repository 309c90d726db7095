// Package gbfhs is a workbench for bidirectional heuristic search over
// implicit state spaces, from the MMe and GBFHS engines to the seeded
// batch harness that races them on classic benchmark domains.
//
// 🚀 What is inside?
//
//	A deterministic, reproducible search suite that brings together:
//		• Engines: MMe (meet in the middle) and GBFHS (fractional meeting point)
//		• Baseline: A* for optimality cross-checks
//		• Domains: pancake sorting (GAP-x heuristic) and the sliding-tile puzzle
//		• Harness: seeded instance generation, paired trials, CSV reports
//
// ✨ Why choose it?
//
//   - Deterministic – every run replays from one master seed, no process-global RNG
//   - Honest bookkeeping – per-direction cost stores, frontiers never mutate keys
//   - Tunable – eps edge bound, GAP-x degradation, injectable pick strategies
//   - Pure Go engines – generic over any comparable state type
//
// Everything is organized under focused subpackages:
//
//	search/     — shared contracts: Domain, options, frontier, cost store, RNG
//	mme/        — MMe engine (priority max(f, 2g+eps), bound-driven stop)
//	gbfhs/      — GBFHS engine (f-limit levels, split g-limits, pick strategies)
//	astar/      — unidirectional baseline
//	pancake/    — pancake stacks, prefix flips, GAP-x heuristic
//	npuzzle/    — sliding tiles, Manhattan heuristic, parity solvability
//	experiment/ — batch runner: YAML suites, seeded trials, CSV rows
//	cmd/gbfhs/  — the command line: solve, bench, suite
//
// Quick taste:
//
//	3 1 2 4  ->  2 1 3 4  ->  1 2 3 4
//
//	two prefix flips sort the stack, and both engines prove 2 is optimal.
//
// Dive into the per-package docs for the exact expansion rules, invariants
// and termination arguments.
//
//	go get github.com/awgu/gbfhs
package gbfhs
