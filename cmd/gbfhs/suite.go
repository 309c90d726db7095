package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/awgu/gbfhs/experiment"
)

var suiteConfig string

func suiteCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runSuite,
		UsageLine: "suite -config <suite.yaml>",
		Short:     "runs every experiment of a YAML suite and persists the rows",
		Long: `
runs every experiment of a YAML suite and persists the rows

	$ ./gbfhs suite -config suite.yaml

A suite file names its experiments and shares one master seed:

	run: pancake-vs-puzzle
	seed: 15780
	trials: 50
	output: trials.csv
	experiments:
	  - name: stacks-gbfhs
	    domain: pancake
	    algorithm: gbfhs
	    size: 11
	  - name: tiles-mme
	    domain: npuzzle
	    algorithm: mme
	    size: 3
`,
		Flag: *flag.NewFlagSet("suite", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&suiteConfig, "config", "", "Path to the YAML suite file")
	return cmd
}

func runSuite(cmd *commander.Command, args []string) error {
	if suiteConfig == "" {
		cmd.Usage()
		return fmt.Errorf("suite: missing -config")
	}
	cfg, err := experiment.LoadConfig(suiteConfig)
	if err != nil {
		return err
	}
	r, err := experiment.NewRunner(cfg)
	if err != nil {
		return err
	}
	log.Println("suite", cfg.Run, "run id", r.RunID())

	rows, summaries, err := r.Run(context.Background())
	if err != nil {
		return err
	}
	if cfg.Output != "" {
		if err = experiment.WriteCSV(cfg.Output, rows); err != nil {
			return err
		}
		log.Println("wrote", len(rows), "rows to", cfg.Output)
	}
	for _, s := range summaries {
		fmt.Println(s)
	}
	return nil
}
