package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/profile"

	"github.com/awgu/gbfhs/experiment"
)

var (
	benchDomain   string
	benchAlg      string
	benchN        int
	benchTrials   int
	benchSeed     int64
	benchEps      int
	benchGap      int
	benchDiscount int
	benchPick     string
	benchOut      string
	benchProfile  string
)

func benchCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runBench,
		UsageLine: "bench [options]",
		Short:     "averages expansion counts over randomly drawn instances",
		Long: `
averages expansion counts over randomly drawn instances

	$ ./gbfhs bench
	$ ./gbfhs bench -domain npuzzle -n 3 -alg mme -trials 20 -out trials.csv
	$ ./gbfhs bench -alg gbfhs -pick forward-first -profile cpu

The defaults reproduce the historical run: 50 ten-pancake instances (stack
length 11 with the plate) under seed 15780.
`,
		Flag: *flag.NewFlagSet("bench", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&benchDomain, "domain", experiment.DomainPancake, "Domain: pancake | npuzzle")
	cmd.Flag.StringVar(&benchAlg, "alg", experiment.AlgGBFHS, "Algorithm: mme | gbfhs | astar")
	cmd.Flag.IntVar(&benchN, "n", 11, "Instance size: stack length incl. plate, or board dimension")
	cmd.Flag.IntVar(&benchTrials, "trials", experiment.DefaultTrials, "Number of instances to average over")
	cmd.Flag.Int64Var(&benchSeed, "seed", experiment.DefaultSeed, "Master seed for instance and engine streams")
	cmd.Flag.IntVar(&benchEps, "eps", 1, "Cheapest operator cost")
	cmd.Flag.IntVar(&benchGap, "gap", 0, "GAP-x degradation for the pancake heuristic")
	cmd.Flag.IntVar(&benchDiscount, "discount", 0, "Manhattan discount for the puzzle heuristic")
	cmd.Flag.StringVar(&benchPick, "pick", "", "GBFHS pick strategy: uniform | round-robin | forward-first")
	cmd.Flag.StringVar(&benchOut, "out", "", "Optional CSV path for the raw trial rows")
	cmd.Flag.StringVar(&benchProfile, "profile", "", "Write a profile: cpu | mem")
	return cmd
}

func runBench(cmd *commander.Command, args []string) error {
	switch benchProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	default:
		return fmt.Errorf("bench: unknown profile %q", benchProfile)
	}

	cfg := experiment.Config{
		Run:    "bench",
		Seed:   benchSeed,
		Trials: benchTrials,
		Experiments: []experiment.Experiment{{
			Name:      fmt.Sprintf("%s-%s-n%d", benchAlg, benchDomain, benchN),
			Domain:    benchDomain,
			Algorithm: benchAlg,
			Size:      benchN,
			Eps:       benchEps,
			Gap:       benchGap,
			Discount:  benchDiscount,
			Pick:      benchPick,
		}},
	}
	r, err := experiment.NewRunner(cfg)
	if err != nil {
		return err
	}

	rows, summaries, err := r.Run(context.Background())
	if err != nil {
		return err
	}
	if benchOut != "" {
		if err = experiment.WriteCSV(benchOut, rows); err != nil {
			return err
		}
		log.Println("wrote", len(rows), "rows to", benchOut)
	}
	for _, s := range summaries {
		fmt.Println(s)
	}
	return nil
}
