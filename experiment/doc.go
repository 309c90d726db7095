// Package experiment is the trial harness: it draws random instances,
// races the engines over them and persists the outcomes.
//
// What
//
//   - Config / LoadConfig: a YAML suite description (run name, master seed,
//     trial count, output path, experiment list) with the historical
//     defaults seed 15780 and 50 trials.
//   - RandomStack / RandomBoard: seeded instance generators. Stacks shuffle
//     every pancake below the fixed plate; boards are resampled until their
//     parity makes them reachable from the goal.
//   - Runner: executes each experiment's trials, one derived RNG stream per
//     trial index, so equal-shaped experiments compare algorithms on
//     identical instances. Progress goes to the standard logger; the engine
//     packages themselves never log.
//   - WriteCSV: one row per trial, durations in integer nanoseconds.
//
// Why
//
//   - The interesting claims about these engines are statistical (mean
//     nodes expanded at equal optimal cost), so the harness pins every
//     source of randomness to the master seed and keeps rows raw for
//     offline analysis.
//
// Errors
//
//   - Config validation returns the package sentinels (ErrNoExperiments,
//     ErrBadTrials, ErrUnknownDomain, ...) wrapped with the offending
//     experiment's name.
//   - Runner.Run wraps engine and generator errors with experiment and
//     trial context; ctx.Err() surfaces when a run is canceled.
package experiment
