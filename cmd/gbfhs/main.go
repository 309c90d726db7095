package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var app = &commander.Command{
	UsageLine: "gbfhs",
	Short:     "bidirectional heuristic search over pancake and sliding-tile instances",
	Subcommands: []*commander.Command{
		solveCmd(),
		benchCmd(),
		suiteCmd(),
	},
	Flag: *flag.NewFlagSet("gbfhs", flag.ExitOnError),
}

func main() {
	err := app.Flag.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}

	err = app.Dispatch(app.Flag.Args())
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}
