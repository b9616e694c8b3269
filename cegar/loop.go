package cegar

import (
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goplanner/cartesian/abstraction"
	"github.com/goplanner/cartesian/flawsearch"
	"github.com/goplanner/cartesian/oracle"
	"github.com/goplanner/cartesian/sastask"
	"github.com/goplanner/cartesian/shortestpath"
	"github.com/goplanner/cartesian/transition"
)

// Loop owns one CEGAR refinement run: the abstraction under construction,
// whichever plan-extraction machinery its search strategy needs, and the
// budgets that bound how far it is allowed to go.
type Loop struct {
	runID uuid.UUID
	log   *zap.SugaredLogger
	opts  Options
	task  *sastask.Task

	abs   *abstraction.Abstraction
	fs    *flawsearch.FlawSearch
	costs []shortestpath.Cost64

	sp    *shortestpath.ShortestPaths // non-nil iff opts.Strategy == Incremental
	astar *AstarSearch                // non-nil iff opts.Strategy == Astar

	padding         []byte
	paddingReleased atomic.Bool
}

// New validates task, builds the trivial abstraction, splits it on every
// goal fact, and (for the incremental strategy) runs the first full
// shortest-path computation: the "initialize" phase of the refinement
// loop. The returned Loop is ready for Run.
func New(task *sastask.Task, opts Options, log *zap.SugaredLogger) (*Loop, error) {
	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputError, err)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	l := &Loop{
		runID: uuid.New(),
		log:   log,
		opts:  opts,
		task:  task,
	}
	if opts.Budgets.MemoryPaddingBytes > 0 {
		l.padding = make([]byte, opts.Budgets.MemoryPaddingBytes)
	}

	var relaxed *oracle.Relaxed
	if needsRelaxed(opts.OpOrder) || needsRelaxed(opts.OpTiebreak) ||
		opts.PickSplit == flawsearch.MinHadd || opts.PickSplit == flawsearch.MaxHadd {
		relaxed = oracle.BuildRelaxed(task)
	}
	var cgLevel []int
	if opts.PickSplit == flawsearch.MinCgLevel || opts.PickSplit == flawsearch.MaxCgLevel {
		cgLevel = sastask.CausalGraphLevels(task)
	}
	ordering := oracle.Ordering{
		Primary:   opts.OpOrder,
		Secondary: opts.OpTiebreak,
		Seed:      opts.RandomSeed,
		Relaxed:   relaxed,
	}

	l.abs = abstraction.New(task)
	mode := abstraction.ModeTS
	switch opts.Transitions {
	case MT:
		mode = abstraction.ModeMT
	case SG:
		mode = abstraction.ModeSG
	}
	l.abs.InitOracle(mode, ordering)
	if opts.Debug && (opts.Transitions == TS || opts.Transitions == TSThenSG) {
		l.abs.EnableDebugCrossCheck(oracle.NewMT(l.abs.Hierarchy(), task, ordering))
	}

	costs, _ := shortestpath.WidenCosts(operatorCosts(task))
	l.costs = costs

	if err := l.splitOnGoalFacts(); err != nil {
		return nil, err
	}

	l.fs = flawsearch.New(l.abs, relaxed, cgLevel, flawsearch.Config{
		PickFlaw:  opts.PickFlaw,
		PickSplit: opts.PickSplit,
		Seed:      opts.RandomSeed,
	})

	switch opts.Strategy {
	case Incremental:
		l.sp = shortestpath.Recompute(l.abs.NumStates(), l.abs.GoalStateIDs(), l.abs.Oracle(), l.costs)
	case Astar:
		l.astar = NewAstarSearch()
	}

	return l, nil
}

// splitOnGoalFacts narrows the trivial abstraction's single goal state down
// to exactly the task's goal facts, one variable at a time, tracking
// whichever child still satisfies the facts split off so far as the new
// current goal state.
func (l *Loop) splitOnGoalFacts() error {
	goal := append([]sastask.Fact(nil), l.task.Goal...)
	sort.Slice(goal, func(i, j int) bool { return goal[i].Less(goal[j]) })

	state := 0
	for _, f := range goal {
		v1, v2, err := l.abs.Refine(state, f.Var, []int{f.Value})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternalInvariantViolation, err)
		}
		if l.abs.Region(v2).Test(f.Var, f.Value) {
			state = v2
		} else {
			state = v1
		}
	}
	return nil
}

// Run executes the main refine loop until a concrete plan is found, the
// abstraction is proven unsolvable, or a budget runs out. It may be called
// only once per Loop.
func (l *Loop) Run() (*Result, error) {
	start := time.Now()
	iterations := 0

	for {
		if exit, hit := l.budgetExhausted(time.Since(start)); hit {
			l.log.Infow("budget exhausted", "run_id", l.runID, "iterations", iterations, "states", l.abs.NumStates(), "exit", exit)
			return l.finish(exit, nil, iterations, start), nil
		}

		plan, unsolvable, err := l.extractPlan()
		if err != nil {
			l.log.Errorw("search strategy failed", "run_id", l.runID, "iterations", iterations, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrSearchCriticalError, err)
		}
		if unsolvable {
			l.log.Infow("abstraction unsolvable", "run_id", l.runID, "iterations", iterations)
			return l.finish(ExitUnsolvable, nil, iterations, start), nil
		}

		split, err := l.fs.GetSplit(plan)
		if err != nil {
			l.log.Errorw("flaw search failed", "run_id", l.runID, "iterations", iterations, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrSearchCriticalError, err)
		}
		if split == nil {
			l.log.Infow("concrete plan found", "run_id", l.runID, "iterations", iterations, "plan_length", len(plan))
			return l.finish(ExitSolved, plan, iterations, start), nil
		}

		v1, v2, err := l.abs.Refine(split.StateID, split.Var, split.Wanted)
		if err != nil {
			l.log.Errorw("refine failed", "run_id", l.runID, "iterations", iterations, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrInternalInvariantViolation, err)
		}
		iterations++

		switch l.opts.Strategy {
		case Incremental:
			l.sp.UpdateIncrementally(split.StateID, v1, v2, l.abs.Oracle(), l.costs)
		case Astar:
			l.astar.Propagate(split.StateID, v1, v2)
		}
	}
}

// extractPlan runs the configured search strategy once and reports whether
// the abstraction is unsolvable rather than returning an error for that
// expected outcome.
func (l *Loop) extractPlan() (transition.Transitions, bool, error) {
	switch l.opts.Strategy {
	case Incremental:
		plan, err := shortestpath.ExtractSolution(l.sp, l.abs.InitialStateID(), l.abs.GoalStateIDs())
		if err != nil {
			if errors.Is(err, shortestpath.ErrUnsolvableInAbstraction) {
				return nil, true, nil
			}
			return nil, false, err
		}
		return plan, false, nil
	default: // Astar
		plan, err := l.astar.ExtractPlan(l.abs.InitialStateID(), l.abs.GoalStateIDs(), l.abs.Oracle(), l.costs)
		if err != nil {
			if errors.Is(err, ErrAstarUnsolvable) {
				return nil, true, nil
			}
			return nil, false, err
		}
		return plan, false, nil
	}
}

// finish assembles the Result the caller sees, downgrading a TSThenSG
// abstraction to an SG oracle before handing it back so a longer-lived
// consumer never pays to keep explicit transition lists rewired.
func (l *Loop) finish(exit ExitCode, plan transition.Transitions, iterations int, start time.Time) *Result {
	if l.opts.Transitions == TSThenSG {
		ordering := oracle.Ordering{Primary: l.opts.OpOrder, Secondary: l.opts.OpTiebreak, Seed: l.opts.RandomSeed}
		if needsRelaxed(l.opts.OpOrder) || needsRelaxed(l.opts.OpTiebreak) {
			ordering.Relaxed = oracle.BuildRelaxed(l.task)
		}
		l.abs.SwitchToSG(ordering)
	}
	return &Result{
		RunID:       l.runID,
		Abstraction: l.abs,
		Plan:        plan,
		Exit:        exit,
		Iterations:  iterations,
		Elapsed:     time.Since(start),
	}
}

// ReleaseMemoryPadding frees the reserved padding buffer and marks the
// memory budget exhausted, so Run stops cooperatively at its next check.
// Safe to call from a goroutine other than the one running Run, standing in
// for an external low-memory handler; the release is only observed between
// iterations, never mid-split.
func (l *Loop) ReleaseMemoryPadding() {
	l.padding = nil
	l.paddingReleased.Store(true)
}

func (l *Loop) budgetExhausted(elapsed time.Duration) (ExitCode, bool) {
	b := l.opts.Budgets
	if b.MaxStates > 0 && l.abs.NumStates() >= b.MaxStates {
		return ExitStatesExhausted, true
	}
	if b.MaxTransitions > 0 {
		if ts, ok := l.abs.Oracle().(*oracle.TS); ok && ts.NumNonLoopTransitions() >= b.MaxTransitions {
			return ExitTransitionsExhausted, true
		}
	}
	if b.MaxTime > 0 && elapsed >= b.MaxTime {
		return ExitOutOfTime, true
	}
	if l.paddingReleased.Load() {
		return ExitOutOfMemory, true
	}
	return 0, false
}

func needsRelaxed(k oracle.OrderKey) bool {
	switch k {
	case oracle.LayerUp, oracle.LayerDown, oracle.HaddUp, oracle.HaddDown, oracle.StepsUp, oracle.StepsDown:
		return true
	default:
		return false
	}
}

func operatorCosts(task *sastask.Task) []int64 {
	costs := make([]int64, len(task.Operators))
	for i := range task.Operators {
		costs[i] = task.Operators[i].Cost
	}
	return costs
}
