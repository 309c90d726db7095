package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/awgu/gbfhs/search"
)

// Domain names accepted by a suite config.
const (
	DomainPancake = "pancake"
	DomainNPuzzle = "npuzzle"
)

// Algorithm names accepted by a suite config.
const (
	AlgMMe   = "mme"
	AlgGBFHS = "gbfhs"
	AlgAStar = "astar"
)

// Historical defaults of the benchmark harness: the master seed and the
// number of trials averaged per experiment.
const (
	DefaultSeed   int64 = 15780
	DefaultTrials       = 50
)

// Experiment is one benchmark line: an algorithm applied to randomly drawn
// instances of one domain shape.
type Experiment struct {
	// Name keys the experiment in trial rows and summaries.
	Name string `yaml:"name"`

	// Domain is "pancake" or "npuzzle".
	Domain string `yaml:"domain"`

	// Algorithm is "mme", "gbfhs" or "astar".
	Algorithm string `yaml:"algorithm"`

	// Size is the stack length including the plate (pancake) or the board
	// dimension (npuzzle).
	Size int `yaml:"size"`

	// Eps is the cheapest-operator bound; 0 means 1 (unit costs).
	Eps int `yaml:"eps"`

	// Gap is the pancake GAP-x degradation; ignored for npuzzle.
	Gap int `yaml:"gap"`

	// Discount degrades the puzzle Manhattan heuristic; ignored for pancake.
	Discount int `yaml:"discount"`

	// Pick names the GBFHS pick strategy ("" means uniform); ignored for
	// the other algorithms.
	Pick string `yaml:"pick"`
}

// Config is a whole suite: shared seed and trial count plus the experiment
// list. Zero fields take the historical defaults on load.
type Config struct {
	Run         string       `yaml:"run"`
	Seed        int64        `yaml:"seed"`
	Trials      int          `yaml:"trials"`
	Output      string       `yaml:"output"`
	Experiments []Experiment `yaml:"experiments"`
}

// DefaultConfig returns a config with the harness defaults and no
// experiments.
func DefaultConfig() Config {
	return Config{Seed: DefaultSeed, Trials: DefaultTrials}
}

// LoadConfig reads and validates a YAML suite file. Fields absent from the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("experiment: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("experiment: parse config: %w", err)
	}
	cfg.normalize()
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize fills per-experiment shorthand: eps 0 means unit cost.
func (c *Config) normalize() {
	for i := range c.Experiments {
		if c.Experiments[i].Eps == 0 {
			c.Experiments[i].Eps = 1
		}
	}
}

// Validate checks the suite shape: positive trials, at least one experiment,
// unique names, known domain/algorithm/pick values and sane instance
// parameters. Exact domain ranges (plate size, board dimension bounds) are
// enforced by the domain constructors when trials run.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return ErrBadTrials
	}
	if len(c.Experiments) == 0 {
		return ErrNoExperiments
	}
	seen := make(map[string]struct{}, len(c.Experiments))
	for i, e := range c.Experiments {
		if e.Name == "" {
			return fmt.Errorf("experiment %d: %w", i, ErrMissingName)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("experiment %q: %w", e.Name, ErrDuplicateName)
		}
		seen[e.Name] = struct{}{}
		if err := e.validate(); err != nil {
			return fmt.Errorf("experiment %q: %w", e.Name, err)
		}
	}
	return nil
}

func (e Experiment) validate() error {
	switch e.Domain {
	case DomainPancake, DomainNPuzzle:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDomain, e.Domain)
	}
	switch e.Algorithm {
	case AlgMMe, AlgGBFHS, AlgAStar:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, e.Algorithm)
	}
	if e.Size < 2 {
		return fmt.Errorf("%w: %d", ErrBadSize, e.Size)
	}
	if e.Eps < 1 {
		return fmt.Errorf("%w: %d", ErrBadEps, e.Eps)
	}
	if e.Gap < 0 {
		return fmt.Errorf("%w: %d", ErrBadGap, e.Gap)
	}
	if e.Discount < 0 {
		return fmt.Errorf("%w: %d", ErrBadDiscount, e.Discount)
	}
	if _, err := search.ParsePickStrategy(e.Pick); err != nil {
		return err
	}
	return nil
}
