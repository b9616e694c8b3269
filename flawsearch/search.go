package flawsearch

import (
	"math/rand"

	"github.com/goplanner/cartesian/abstraction"
	"github.com/goplanner/cartesian/cartesianset"
	"github.com/goplanner/cartesian/oracle"
	"github.com/goplanner/cartesian/sastask"
	"github.com/goplanner/cartesian/transition"
)

// FlawSearch traces abstract plans against the concrete task, borrowing the
// abstraction immutably, and proposes splits. Relaxed and CgLevels are
// optional (nil disables the corresponding PickSplit tiers, falling back
// to the first candidate).
type FlawSearch struct {
	abs     *abstraction.Abstraction
	task    *sastask.Task
	relaxed *oracle.Relaxed
	cgLevel []int
	cfg     Config

	refined map[int]int
}

// New builds a FlawSearch over abs. relaxed and cgLevel feed the
// MinHadd/MaxHadd and MinCgLevel/MaxCgLevel PickSplit strategies; pass nil
// for either if not computed.
func New(abs *abstraction.Abstraction, relaxed *oracle.Relaxed, cgLevel []int, cfg Config) *FlawSearch {
	return &FlawSearch{
		abs:     abs,
		task:    abs.Task(),
		relaxed: relaxed,
		cgLevel: cgLevel,
		cfg:     cfg,
		refined: make(map[int]int),
	}
}

// GetSplit traces plan (a sequence of abstract transitions starting at the
// abstraction's current initial state) against the concrete task. It
// returns the first flaw found: an applicability flaw, a path-deviation
// flaw, or (if the plan runs out without either) a goal flaw. It returns
// nil if the plan is concretely executable end to end.
func (fs *FlawSearch) GetSplit(plan transition.Transitions) (*Split, error) {
	concrete := append([]int(nil), fs.task.Initial...)
	stateID := fs.abs.InitialStateID()

	for _, hop := range plan {
		op := &fs.task.Operators[hop.Op]
		if !op.Applicable(concrete) {
			return fs.applicabilityFlaw(stateID, concrete, op), nil
		}
		next := op.Apply(concrete)
		nextRegion := fs.abs.Region(hop.Target)
		if !containsConcrete(nextRegion, next) {
			return fs.pathDeviationFlaw(stateID, concrete, op, nextRegion), nil
		}
		concrete = next
		stateID = hop.Target
	}

	if !fs.task.GoalHolds(concrete) {
		return fs.goalFlaw(stateID, concrete), nil
	}
	return nil, nil
}

func (fs *FlawSearch) applicabilityFlaw(stateID int, concrete []int, op *sastask.Operator) *Split {
	desired := fs.fullDomainClone(stateID)
	for _, f := range op.Pre {
		desired.SetSingleValue(f.Var, f.Value)
	}
	v, wanted := fs.selectVar(stateID, concrete, desired)
	return &Split{StateID: stateID, Var: v, Wanted: wanted, Kind: Applicability}
}

func (fs *FlawSearch) pathDeviationFlaw(stateID int, concrete []int, op *sastask.Operator, nextRegion *cartesianset.Set) *Split {
	desired := oracle.Regress(nextRegion, op)
	v, wanted := fs.selectVar(stateID, concrete, desired)
	return &Split{StateID: stateID, Var: v, Wanted: wanted, Kind: PathDeviation}
}

func (fs *FlawSearch) goalFlaw(stateID int, concrete []int) *Split {
	desired := fs.fullDomainClone(stateID)
	for _, f := range fs.task.Goal {
		desired.SetSingleValue(f.Var, f.Value)
	}
	v, wanted := fs.selectVar(stateID, concrete, desired)
	return &Split{StateID: stateID, Var: v, Wanted: wanted, Kind: Goal}
}

// fullDomainClone returns a Cartesian set shaped like stateID's own region
// (so it shares VarInfos) but with every variable reset to its full
// domain, ready to be narrowed to an operator's precondition or the task's
// goal.
func (fs *FlawSearch) fullDomainClone(stateID int) *cartesianset.Set {
	region := fs.abs.Region(stateID)
	desired := region.Clone()
	for v := range region.Infos {
		desired.AddAll(v)
	}
	return desired
}

// selectVar picks the split variable among every variable where desired
// disagrees with concrete's value, per the configured PickSplit strategy,
// and returns that variable's wanted values: the intersection of the
// current abstract state's values for it with desired's values for it.
func (fs *FlawSearch) selectVar(stateID int, concrete []int, desired *cartesianset.Set) (int, []int) {
	region := fs.abs.Region(stateID)
	var candidates []int
	for v := range region.Infos {
		if !desired.Test(v, concrete[v]) {
			candidates = append(candidates, v)
		}
	}
	chosen := fs.pickSplitVar(candidates, concrete, region, desired)
	wanted := intersectValues(region, desired, chosen)
	fs.refined[chosen]++
	return chosen, wanted
}

func (fs *FlawSearch) pickSplitVar(candidates, concrete []int, region, desired *cartesianset.Set) int {
	if len(candidates) == 1 {
		return candidates[0]
	}
	if fs.cfg.PickSplit == RandomVar {
		rnd := rand.New(rand.NewSource(fs.cfg.Seed))
		return candidates[rnd.Intn(len(candidates))]
	}
	score := fs.scorerFor(concrete, region, desired)
	if score == nil {
		return candidates[0]
	}
	maximize := wantsMax(fs.cfg.PickSplit)
	best := candidates[0]
	bestVal := score(best)
	for _, v := range candidates[1:] {
		val := score(v)
		if (maximize && val > bestVal) || (!maximize && val < bestVal) {
			best, bestVal = v, val
		}
	}
	return best
}

func (fs *FlawSearch) scorerFor(concrete []int, region, desired *cartesianset.Set) func(int) float64 {
	switch fs.cfg.PickSplit {
	case MinUnwanted, MaxUnwanted:
		return func(v int) float64 {
			wanted := intersectValues(region, desired, v)
			return float64(region.Count(v) - len(wanted))
		}
	case MinRefined, MaxRefined:
		return func(v int) float64 { return float64(fs.refined[v]) }
	case MinHadd, MaxHadd:
		if fs.relaxed == nil {
			return nil
		}
		return func(v int) float64 { return float64(fs.relaxed.FactHadd(v, concrete[v])) }
	case MinCgLevel, MaxCgLevel:
		if fs.cgLevel == nil {
			return nil
		}
		return func(v int) float64 { return float64(fs.cgLevel[v]) }
	default:
		return nil
	}
}

func wantsMax(p PickSplit) bool {
	switch p {
	case MaxUnwanted, MaxRefined, MaxHadd, MaxCgLevel:
		return true
	default:
		return false
	}
}

func containsConcrete(region *cartesianset.Set, concrete []int) bool {
	for v := range region.Infos {
		if !region.Test(v, concrete[v]) {
			return false
		}
	}
	return true
}

func intersectValues(a, b *cartesianset.Set, v int) []int {
	var out []int
	for value := 0; value < a.Infos[v].DomainSize; value++ {
		if a.Test(v, value) && b.Test(v, value) {
			out = append(out, value)
		}
	}
	return out
}
