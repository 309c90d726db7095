package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/awgu/gbfhs/astar"
	"github.com/awgu/gbfhs/experiment"
	"github.com/awgu/gbfhs/gbfhs"
	"github.com/awgu/gbfhs/mme"
	"github.com/awgu/gbfhs/npuzzle"
	"github.com/awgu/gbfhs/pancake"
	"github.com/awgu/gbfhs/search"
)

var (
	solveDomain   string
	solveAlg      string
	solveInitial  string
	solveGoal     string
	solveEps      int
	solveGap      int
	solveDiscount int
	solveSeed     int64
	solvePick     string
	solveChecks   bool
)

func solveCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runSolve,
		UsageLine: "solve -initial <csv ints> [options]",
		Short:     "solves one instance and prints cost and expansion counts",
		Long: `
solves one instance and prints cost and expansion counts

	$ ./gbfhs solve -domain pancake -alg mme -initial 3,1,2,4
	$ ./gbfhs solve -domain npuzzle -alg gbfhs -initial 1,2,3,0,5,6,4,7,8 -pick round-robin

The goal defaults to the domain's canonical state (ascending stack, solved
board).
`,
		Flag: *flag.NewFlagSet("solve", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&solveDomain, "domain", experiment.DomainPancake, "Domain: pancake | npuzzle")
	cmd.Flag.StringVar(&solveAlg, "alg", experiment.AlgGBFHS, "Algorithm: mme | gbfhs | astar")
	cmd.Flag.StringVar(&solveInitial, "initial", "", "Initial state as comma-separated integers")
	cmd.Flag.StringVar(&solveGoal, "goal", "", "Goal state; empty means the canonical state")
	cmd.Flag.IntVar(&solveEps, "eps", 1, "Cheapest operator cost")
	cmd.Flag.IntVar(&solveGap, "gap", 0, "GAP-x degradation for the pancake heuristic")
	cmd.Flag.IntVar(&solveDiscount, "discount", 0, "Manhattan discount for the puzzle heuristic")
	cmd.Flag.Int64Var(&solveSeed, "seed", 0, "Engine RNG seed; 0 selects the fixed default")
	cmd.Flag.StringVar(&solvePick, "pick", "", "GBFHS pick strategy: uniform | round-robin | forward-first")
	cmd.Flag.BoolVar(&solveChecks, "checks", false, "Enable per-expansion invariant audits")
	return cmd
}

func runSolve(cmd *commander.Command, args []string) error {
	if solveInitial == "" {
		cmd.Usage()
		return fmt.Errorf("solve: missing -initial")
	}
	initVals, err := parseInts(solveInitial)
	if err != nil {
		return err
	}
	var goalVals []int
	if solveGoal != "" {
		if goalVals, err = parseInts(solveGoal); err != nil {
			return err
		}
	}

	pick, err := search.ParsePickStrategy(solvePick)
	if err != nil {
		return err
	}
	opts := []search.Option{search.WithSeed(solveSeed), search.WithPickStrategy(pick)}
	if solveChecks {
		opts = append(opts, search.WithInvariantChecks())
	}

	var (
		res search.Result
		dur time.Duration
	)
	switch solveDomain {
	case experiment.DomainPancake:
		initial, serr := pancake.NewStack(initVals)
		if serr != nil {
			return serr
		}
		goal, serr := pancakeGoal(goalVals, len(initVals))
		if serr != nil {
			return serr
		}
		prob, serr := pancake.NewProblem(initial, goal, solveGap)
		if serr != nil {
			return serr
		}
		res, dur, err = solveOne[pancake.Stack](solveAlg, prob, initial, goal, solveEps, opts)
	case experiment.DomainNPuzzle:
		initial, berr := npuzzle.NewBoard(initVals)
		if berr != nil {
			return berr
		}
		goal, berr := puzzleGoal(goalVals, initial.Dim())
		if berr != nil {
			return berr
		}
		prob, berr := npuzzle.NewProblem(initial, goal, solveDiscount)
		if berr != nil {
			return berr
		}
		res, dur, err = solveOne[npuzzle.Board](solveAlg, prob, initial, goal, solveEps, opts)
	default:
		return fmt.Errorf("solve: unknown domain %q", solveDomain)
	}
	if err != nil {
		return err
	}

	fmt.Printf("cost: %d solved: %v\n", res.Cost, res.Solved)
	fmt.Printf("expanded: %d (forward %d, backward %d) reopened: %d collisions: %d levels: %d\n",
		res.Stats.TotalExpanded(),
		res.Stats.Expanded[search.Forward], res.Stats.Expanded[search.Backward],
		res.Stats.Reopened, res.Stats.Collisions, res.Stats.Levels)
	fmt.Printf("time: %v\n", dur)
	return nil
}

func pancakeGoal(vals []int, n int) (pancake.Stack, error) {
	if vals == nil {
		return pancake.Sorted(n)
	}
	return pancake.NewStack(vals)
}

func puzzleGoal(vals []int, dim int) (npuzzle.Board, error) {
	if vals == nil {
		return npuzzle.Solved(dim)
	}
	return npuzzle.NewBoard(vals)
}

// solveOne dispatches a single instance to the chosen engine and times the
// search alone.
func solveOne[S comparable](alg string, dom search.Domain[S], initial, goal S, eps int, opts []search.Option) (search.Result, time.Duration, error) {
	var (
		res search.Result
		err error
	)
	start := time.Now()
	switch alg {
	case experiment.AlgMMe:
		res, err = mme.Search[S](dom, initial, goal, eps, opts...)
	case experiment.AlgGBFHS:
		res, err = gbfhs.Search[S](dom, initial, goal, eps, opts...)
	case experiment.AlgAStar:
		res, err = astar.Search[S](dom, initial, goal, opts...)
	default:
		return search.Result{}, 0, fmt.Errorf("solve: unknown algorithm %q", alg)
	}
	return res, time.Since(start), err
}

// parseInts splits a comma-separated integer list, tolerating spaces.
func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("solve: bad integer %q", p)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
