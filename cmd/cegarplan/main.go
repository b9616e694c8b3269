// Command cegarplan builds a Cartesian CEGAR abstraction over a grounded
// SAS+ planning task and reports either the concrete plan the refinement
// loop found or the heuristic abstraction it built before a budget ran out.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goplanner/cartesian/cegar"
	"github.com/goplanner/cartesian/sastask"
)

var (
	configPath     string
	maxStates      int
	maxTransitions int
	maxTime        time.Duration
	strategyFlag   string
	transitionFlag string
	pickSplitFlag  string
	pickFlawFlag   string
	opOrderFlag    string
	opTiebreakFlag string
	debugFlag      bool
	seedFlag       int64
	verboseFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "cegarplan <task.sas>",
	Short: "Build a Cartesian CEGAR abstraction over a grounded SAS+ task",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML configuration file; flags below override it")
	flags.IntVar(&maxStates, "max-states", 0, "maximum number of abstract states")
	flags.IntVar(&maxTransitions, "max-transitions", 0, "maximum non-loop transitions (TS representation only)")
	flags.DurationVar(&maxTime, "max-time", 0, "wall-clock budget for the refinement loop")
	flags.StringVar(&strategyFlag, "strategy", "", "search strategy: incremental or astar")
	flags.StringVar(&transitionFlag, "transitions", "", "transition representation: ts, mt, sg, or ts_then_sg")
	flags.StringVar(&pickSplitFlag, "pick-split", "", "split-variable strategy")
	flags.StringVar(&pickFlawFlag, "pick-flaw", "", "flaw-selection strategy")
	flags.StringVar(&opOrderFlag, "op-order", "", "primary operator-ordering key")
	flags.StringVar(&opTiebreakFlag, "op-tiebreak", "", "secondary operator-ordering key")
	flags.BoolVar(&debugFlag, "debug", false, "enable the TS/MT transition cross-check")
	flags.Int64Var(&seedFlag, "seed", 0, "tie-break shuffle seed")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug-level logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(int(cegar.ExitInputError))
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	f, err := os.Open(args[0])
	if err != nil {
		sugar.Errorw("failed to open task file", "path", args[0], "error", err)
		os.Exit(int(cegar.ExitInputError))
	}
	defer f.Close()

	task, err := sastask.ParseSAS(f)
	if err != nil {
		sugar.Errorw("failed to parse task", "error", err)
		os.Exit(int(cegar.ExitInputError))
	}

	opts, err := buildOptions()
	if err != nil {
		sugar.Errorw("bad configuration", "error", err)
		os.Exit(int(cegar.ExitInputError))
	}

	loop, err := cegar.New(task, opts, sugar)
	if err != nil {
		sugar.Errorw("failed to initialize refinement loop", "error", err)
		os.Exit(int(cegar.ExitInputError))
	}

	result, err := loop.Run()
	if err != nil {
		sugar.Errorw("refinement loop failed", "error", err)
		os.Exit(int(cegar.ExitSearchCriticalError))
	}

	report(task, result)
	os.Exit(int(result.Exit))
	return nil
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	if verboseFlag {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// buildOptions layers command-line flags on top of a config file (when
// given) on top of cegar.DefaultOptions, matching the config precedence
// cegar.LoadOptions documents.
func buildOptions() (cegar.Options, error) {
	overrides, err := flagOverrides()
	if err != nil {
		return cegar.Options{}, err
	}
	if configPath == "" {
		opts := cegar.DefaultOptions()
		for _, o := range overrides {
			o(&opts)
		}
		return opts, nil
	}
	f, err := os.Open(configPath)
	if err != nil {
		return cegar.Options{}, err
	}
	defer f.Close()
	return cegar.LoadOptions(f, overrides...)
}

func flagOverrides() ([]cegar.Option, error) {
	var opts []cegar.Option
	var errs error
	flags := rootCmd.Flags()

	if flags.Changed("max-states") {
		opts = append(opts, cegar.WithMaxStates(maxStates))
	}
	if flags.Changed("max-transitions") {
		opts = append(opts, cegar.WithMaxTransitions(maxTransitions))
	}
	if flags.Changed("max-time") {
		opts = append(opts, cegar.WithMaxTime(maxTime))
	}
	if debugFlag {
		opts = append(opts, cegar.WithDebug())
	}
	if flags.Changed("seed") {
		opts = append(opts, cegar.WithRandomSeed(seedFlag))
	}
	if flags.Changed("strategy") {
		if v, err := cegar.ParseSearchStrategy(strategyFlag); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			opts = append(opts, cegar.WithSearchStrategy(v))
		}
	}
	if flags.Changed("transitions") {
		if v, err := cegar.ParseTransitionRepr(transitionFlag); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			opts = append(opts, cegar.WithTransitionRepr(v))
		}
	}
	if flags.Changed("pick-split") {
		if v, err := cegar.ParsePickSplit(pickSplitFlag); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			opts = append(opts, cegar.WithPickSplit(v))
		}
	}
	if flags.Changed("pick-flaw") {
		if v, err := cegar.ParsePickFlaw(pickFlawFlag); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			opts = append(opts, cegar.WithPickFlaw(v))
		}
	}
	if flags.Changed("op-order") || flags.Changed("op-tiebreak") {
		primary, err1 := cegar.ParseOrderKey(orDefault(opOrderFlag, "id_up"))
		tiebreak, err2 := cegar.ParseOrderKey(orDefault(opTiebreakFlag, "id_up"))
		errs = multierr.Append(errs, multierr.Combine(err1, err2))
		opts = append(opts, cegar.WithOperatorOrder(primary, tiebreak))
	}
	return opts, errs
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func report(task *sastask.Task, result *cegar.Result) {
	fmt.Printf("run %s: %d iterations, %s elapsed, %d abstract states\n",
		result.RunID, result.Iterations, result.Elapsed.Round(time.Millisecond), result.Abstraction.NumStates())

	switch result.Exit {
	case cegar.ExitSolved:
		fmt.Printf("solved: %d-step plan\n", len(result.Plan))
		for i, hop := range result.Plan {
			fmt.Printf("  %d. %s\n", i+1, task.Operators[hop.Op].Name)
		}
	case cegar.ExitUnsolvable:
		fmt.Println("unsolvable: no goal state is reachable in this abstraction")
	case cegar.ExitOutOfTime:
		fmt.Println("out of time: returning the heuristic abstraction built so far")
	case cegar.ExitOutOfMemory:
		fmt.Println("out of memory: returning the heuristic abstraction built so far")
	case cegar.ExitStatesExhausted:
		fmt.Println("state budget exhausted: returning the heuristic abstraction built so far")
	case cegar.ExitTransitionsExhausted:
		fmt.Println("transition budget exhausted: returning the heuristic abstraction built so far")
	}
}
