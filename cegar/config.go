package cegar

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/goplanner/cartesian/flawsearch"
	"github.com/goplanner/cartesian/oracle"
)

// Options configures one Loop. The zero value is not ready to use; build
// one with DefaultOptions and layer Option values or a YAML document on
// top.
type Options struct {
	Budgets     Budgets
	PickFlaw    flawsearch.PickFlaw
	PickSplit   flawsearch.PickSplit
	Strategy    SearchStrategy
	Transitions TransitionRepr
	OpOrder     oracle.OrderKey
	OpTiebreak  oracle.OrderKey
	Debug       bool
	RandomSeed  int64
}

// DefaultOptions returns the engine's baseline configuration: unbounded
// budgets, incremental search over a TS oracle, IDUp/IDUp operator
// ordering, and MinUnwanted/RandomHSingle flaw-search strategies.
func DefaultOptions() Options {
	return Options{
		PickFlaw:   flawsearch.RandomHSingle,
		PickSplit:  flawsearch.MinUnwanted,
		Strategy:   Incremental,
		Transitions: TS,
		OpOrder:    oracle.IDUp,
		OpTiebreak: oracle.IDUp,
	}
}

// Option mutates an Options value in place.
type Option func(*Options)

func WithBudgets(b Budgets) Option { return func(o *Options) { o.Budgets = b } }

func WithMaxStates(n int) Option { return func(o *Options) { o.Budgets.MaxStates = n } }

func WithMaxTransitions(n int) Option { return func(o *Options) { o.Budgets.MaxTransitions = n } }

func WithMaxTime(d time.Duration) Option { return func(o *Options) { o.Budgets.MaxTime = d } }

func WithMemoryPadding(bytes int) Option {
	return func(o *Options) { o.Budgets.MemoryPaddingBytes = bytes }
}

func WithPickFlaw(p flawsearch.PickFlaw) Option { return func(o *Options) { o.PickFlaw = p } }

func WithPickSplit(p flawsearch.PickSplit) Option { return func(o *Options) { o.PickSplit = p } }

func WithSearchStrategy(s SearchStrategy) Option { return func(o *Options) { o.Strategy = s } }

func WithTransitionRepr(t TransitionRepr) Option { return func(o *Options) { o.Transitions = t } }

func WithOperatorOrder(primary, tiebreak oracle.OrderKey) Option {
	return func(o *Options) { o.OpOrder = primary; o.OpTiebreak = tiebreak }
}

func WithDebug() Option { return func(o *Options) { o.Debug = true } }

func WithRandomSeed(seed int64) Option { return func(o *Options) { o.RandomSeed = seed } }

// yamlOptions mirrors Options with the string-keyed shape a configuration
// file actually uses; zero values mean "leave the default (or a prior
// override) alone" rather than "set to zero", so a partial document only
// touches the fields it names.
type yamlOptions struct {
	MaxStates      int     `yaml:"max_states"`
	MaxTransitions int     `yaml:"max_transitions"`
	MaxTimeSeconds float64 `yaml:"max_time"`
	MemoryPadding  int     `yaml:"memory_padding"`
	PickFlaw       string  `yaml:"pick_flaw"`
	PickSplit      string  `yaml:"pick_split"`
	Strategy       string  `yaml:"search_strategy"`
	Transitions    string  `yaml:"transition_repr"`
	OpOrder        string  `yaml:"op_order"`
	OpTiebreak     string  `yaml:"op_tiebreak"`
	Debug          bool    `yaml:"debug"`
	RandomSeed     int64   `yaml:"random_seed"`
}

// LoadOptions decodes a YAML configuration document from r on top of
// DefaultOptions, then applies overrides on top of that: file settings
// apply first, then programmatic functional options win any conflict.
func LoadOptions(r io.Reader, overrides ...Option) (Options, error) {
	var y yamlOptions
	if err := yaml.NewDecoder(r).Decode(&y); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	opts := DefaultOptions()
	var errs error

	if y.MaxStates > 0 {
		opts.Budgets.MaxStates = y.MaxStates
	}
	if y.MaxTransitions > 0 {
		opts.Budgets.MaxTransitions = y.MaxTransitions
	}
	if y.MaxTimeSeconds > 0 {
		opts.Budgets.MaxTime = time.Duration(y.MaxTimeSeconds * float64(time.Second))
	}
	if y.MemoryPadding > 0 {
		opts.Budgets.MemoryPaddingBytes = y.MemoryPadding
	}
	opts.Debug = y.Debug
	opts.RandomSeed = y.RandomSeed

	if y.PickFlaw != "" {
		if v, err := ParsePickFlaw(y.PickFlaw); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			opts.PickFlaw = v
		}
	}
	if y.PickSplit != "" {
		if v, err := ParsePickSplit(y.PickSplit); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			opts.PickSplit = v
		}
	}
	if y.Strategy != "" {
		if v, err := ParseSearchStrategy(y.Strategy); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			opts.Strategy = v
		}
	}
	if y.Transitions != "" {
		if v, err := ParseTransitionRepr(y.Transitions); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			opts.Transitions = v
		}
	}
	if y.OpOrder != "" {
		if v, err := ParseOrderKey(y.OpOrder); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			opts.OpOrder = v
		}
	}
	if y.OpTiebreak != "" {
		if v, err := ParseOrderKey(y.OpTiebreak); err != nil {
			errs = multierr.Append(errs, err)
		} else if v == oracle.Random {
			errs = multierr.Append(errs, fmt.Errorf("%w: op_tiebreak must not be random", ErrBadConfig))
		} else {
			opts.OpTiebreak = v
		}
	}
	if errs != nil {
		return Options{}, errs
	}

	for _, o := range overrides {
		o(&opts)
	}
	return opts, nil
}

func ParsePickFlaw(s string) (flawsearch.PickFlaw, error) {
	switch s {
	case "random_h_single":
		return flawsearch.RandomHSingle, nil
	case "min_h_single":
		return flawsearch.MinHSingle, nil
	case "max_h_single":
		return flawsearch.MaxHSingle, nil
	case "min_h_batch":
		return flawsearch.MinHBatch, nil
	case "min_h_batch_max_cover":
		return flawsearch.MinHBatchMaxCover, nil
	default:
		return 0, fmt.Errorf("%w: unknown pick_flaw %q", ErrBadConfig, s)
	}
}

func ParsePickSplit(s string) (flawsearch.PickSplit, error) {
	switch s {
	case "random":
		return flawsearch.RandomVar, nil
	case "min_unwanted":
		return flawsearch.MinUnwanted, nil
	case "max_unwanted":
		return flawsearch.MaxUnwanted, nil
	case "min_refined":
		return flawsearch.MinRefined, nil
	case "max_refined":
		return flawsearch.MaxRefined, nil
	case "min_hadd":
		return flawsearch.MinHadd, nil
	case "max_hadd":
		return flawsearch.MaxHadd, nil
	case "min_cg_level":
		return flawsearch.MinCgLevel, nil
	case "max_cg_level":
		return flawsearch.MaxCgLevel, nil
	default:
		return 0, fmt.Errorf("%w: unknown pick_split %q", ErrBadConfig, s)
	}
}

func ParseSearchStrategy(s string) (SearchStrategy, error) {
	switch s {
	case "incremental":
		return Incremental, nil
	case "astar":
		return Astar, nil
	default:
		return 0, fmt.Errorf("%w: unknown search_strategy %q", ErrBadConfig, s)
	}
}

func ParseTransitionRepr(s string) (TransitionRepr, error) {
	switch s {
	case "ts":
		return TS, nil
	case "mt":
		return MT, nil
	case "sg":
		return SG, nil
	case "ts_then_sg":
		return TSThenSG, nil
	default:
		return 0, fmt.Errorf("%w: unknown transition_repr %q", ErrBadConfig, s)
	}
}

func ParseOrderKey(s string) (oracle.OrderKey, error) {
	switch s {
	case "random":
		return oracle.Random, nil
	case "id_up":
		return oracle.IDUp, nil
	case "id_down":
		return oracle.IDDown, nil
	case "cost_up":
		return oracle.CostUp, nil
	case "cost_down":
		return oracle.CostDown, nil
	case "postconditions_up":
		return oracle.PostconditionsUp, nil
	case "postconditions_down":
		return oracle.PostconditionsDown, nil
	case "layer_up":
		return oracle.LayerUp, nil
	case "layer_down":
		return oracle.LayerDown, nil
	case "hadd_up":
		return oracle.HaddUp, nil
	case "hadd_down":
		return oracle.HaddDown, nil
	case "steps_up":
		return oracle.StepsUp, nil
	case "steps_down":
		return oracle.StepsDown, nil
	case "fixed":
		return oracle.Fixed, nil
	default:
		return 0, fmt.Errorf("%w: unknown order key %q", ErrBadConfig, s)
	}
}
