package experiment

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/awgu/gbfhs/astar"
	"github.com/awgu/gbfhs/gbfhs"
	"github.com/awgu/gbfhs/mme"
	"github.com/awgu/gbfhs/npuzzle"
	"github.com/awgu/gbfhs/pancake"
	"github.com/awgu/gbfhs/search"
)

// Trial is one solved (or exhausted) instance, keyed by the run id shared
// across the whole suite execution.
type Trial struct {
	RunID      string
	Experiment string
	Index      int
	Cost       int
	Solved     bool
	Expanded   uint64
	ExpandedF  uint64
	ExpandedB  uint64
	Duration   time.Duration
}

// Summary aggregates one experiment's trials; the headline number is the
// mean expansion count.
type Summary struct {
	Experiment   string
	Trials       int
	SolvedTrials int
	MeanCost     float64
	MeanExpanded float64
	MeanDuration time.Duration
}

// String renders the one-line report printed after a suite run.
func (s Summary) String() string {
	return fmt.Sprintf("%s: %d/%d solved, mean cost %.2f, mean expanded %.1f, mean time %v",
		s.Experiment, s.SolvedTrials, s.Trials, s.MeanCost, s.MeanExpanded, s.MeanDuration)
}

// Runner executes a validated suite config. Instances are drawn from
// per-trial streams derived from the master seed, so two experiments with
// the same domain shape see the same instance sequence and their costs are
// directly comparable.
type Runner struct {
	cfg   Config
	runID string
}

// NewRunner validates cfg and binds a fresh run id.
func NewRunner(cfg Config) (*Runner, error) {
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, runID: uuid.New().String()}, nil
}

// RunID returns the id stamped on every trial row of this runner.
func (r *Runner) RunID() string { return r.runID }

// Run executes every experiment in order and returns all trial rows plus
// one summary per experiment. The context is threaded into every search.
func (r *Runner) Run(ctx context.Context) ([]Trial, []Summary, error) {
	var (
		rows      []Trial
		summaries []Summary
	)
	for _, exp := range r.cfg.Experiments {
		log.Printf("experiment %s: %s on %s size %d, %d trials",
			exp.Name, exp.Algorithm, exp.Domain, exp.Size, r.cfg.Trials)

		trials, err := r.runExperiment(ctx, exp)
		if err != nil {
			return nil, nil, fmt.Errorf("experiment %q: %w", exp.Name, err)
		}
		sum := summarize(exp.Name, trials)
		log.Print(sum)

		rows = append(rows, trials...)
		summaries = append(summaries, sum)
	}
	return rows, summaries, nil
}

func (r *Runner) runExperiment(ctx context.Context, exp Experiment) ([]Trial, error) {
	rows := make([]Trial, 0, r.cfg.Trials)
	for i := 0; i < r.cfg.Trials; i++ {
		row, err := r.runTrial(ctx, exp, i)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// runTrial draws the trial's instance and solves it. The trial seed depends
// only on the master seed and the trial index, never on the experiment, so
// equal-shaped experiments race their algorithms on identical instances.
func (r *Runner) runTrial(ctx context.Context, exp Experiment, idx int) (Trial, error) {
	seed := search.DeriveSeed(r.cfg.Seed, uint64(idx))
	rng := search.NewRNG(seed)

	var (
		res search.Result
		dur time.Duration
		err error
	)
	switch exp.Domain {
	case DomainPancake:
		goal, gerr := pancake.Sorted(exp.Size)
		if gerr != nil {
			return Trial{}, gerr
		}
		initial, gerr := RandomStack(exp.Size, rng)
		if gerr != nil {
			return Trial{}, gerr
		}
		prob, gerr := pancake.NewProblem(initial, goal, exp.Gap)
		if gerr != nil {
			return Trial{}, gerr
		}
		res, dur, err = runSearch[pancake.Stack](ctx, exp, prob, initial, goal, seed)
	case DomainNPuzzle:
		goal, gerr := npuzzle.Solved(exp.Size)
		if gerr != nil {
			return Trial{}, gerr
		}
		initial, gerr := RandomBoard(exp.Size, goal, rng)
		if gerr != nil {
			return Trial{}, gerr
		}
		prob, gerr := npuzzle.NewProblem(initial, goal, exp.Discount)
		if gerr != nil {
			return Trial{}, gerr
		}
		res, dur, err = runSearch[npuzzle.Board](ctx, exp, prob, initial, goal, seed)
	default:
		return Trial{}, fmt.Errorf("%w: %q", ErrUnknownDomain, exp.Domain)
	}
	if err != nil {
		return Trial{}, err
	}

	return Trial{
		RunID:      r.runID,
		Experiment: exp.Name,
		Index:      idx,
		Cost:       res.Cost,
		Solved:     res.Solved,
		Expanded:   res.Stats.TotalExpanded(),
		ExpandedF:  res.Stats.Expanded[search.Forward],
		ExpandedB:  res.Stats.Expanded[search.Backward],
		Duration:   dur,
	}, nil
}

// runSearch dispatches one instance to the configured engine. The trial
// seed doubles as the engine seed, so randomized picks reproduce with the
// suite.
func runSearch[S comparable](ctx context.Context, exp Experiment, dom search.Domain[S], initial, goal S, seed int64) (search.Result, time.Duration, error) {
	pick, err := search.ParsePickStrategy(exp.Pick)
	if err != nil {
		return search.Result{}, 0, err
	}
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithSeed(seed),
		search.WithPickStrategy(pick),
	}

	var res search.Result
	start := time.Now()
	switch exp.Algorithm {
	case AlgMMe:
		res, err = mme.Search[S](dom, initial, goal, exp.Eps, opts...)
	case AlgGBFHS:
		res, err = gbfhs.Search[S](dom, initial, goal, exp.Eps, opts...)
	case AlgAStar:
		res, err = astar.Search[S](dom, initial, goal, opts...)
	default:
		return search.Result{}, 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, exp.Algorithm)
	}
	return res, time.Since(start), err
}

// summarize folds an experiment's rows into its Summary. Mean cost is taken
// over solved trials only; expansions and durations average over all rows.
func summarize(name string, rows []Trial) Summary {
	sum := Summary{Experiment: name, Trials: len(rows)}
	if len(rows) == 0 {
		return sum
	}

	var costTotal, expTotal uint64
	var durTotal time.Duration
	for _, row := range rows {
		if row.Solved {
			sum.SolvedTrials++
			costTotal += uint64(row.Cost)
		}
		expTotal += row.Expanded
		durTotal += row.Duration
	}
	if sum.SolvedTrials > 0 {
		sum.MeanCost = float64(costTotal) / float64(sum.SolvedTrials)
	}
	sum.MeanExpanded = float64(expTotal) / float64(sum.Trials)
	sum.MeanDuration = durTotal / time.Duration(sum.Trials)
	return sum
}
