package abstraction

import (
	"github.com/goplanner/cartesian/cartesianset"
	"github.com/goplanner/cartesian/oracle"
	"github.com/goplanner/cartesian/refhierarchy"
	"github.com/goplanner/cartesian/sastask"
)

// Abstraction is one Cartesian abstraction's exclusive owner of its
// Cartesian sets, abstract states, refinement hierarchy, and (when the
// active representation needs it) explicit transition data.
type Abstraction struct {
	task *sastask.Task

	varInfos []cartesianset.VarInfo
	hierarchy *refhierarchy.Hierarchy
	regions   []*cartesianset.Set // indexed by StateID; never shrinks, never nils out a live entry

	initial []int // the one concrete state the engine tracks by ID stability
	goals   map[int]bool

	oracle oracle.Oracle

	// debugOracle, when non-nil, mirrors oracle as a second representation
	// used only to cross-check transition sets after every split.
	debugOracle oracle.Oracle
}

// New builds the trivial, single-state abstraction for task: one abstract
// state (ID 0) whose Cartesian set is the full joint domain. Call
// InitOracle next to pick TS, MT, or SG before refining.
func New(task *sastask.Task) *Abstraction {
	varInfos, totalBlocks := cartesianset.NewVarInfos(task.DomainSizes())
	trivial := cartesianset.NewTrivial(varInfos, totalBlocks)

	a := &Abstraction{
		task:      task,
		varInfos:  varInfos,
		hierarchy: refhierarchy.New(0, trivial),
		regions:   []*cartesianset.Set{trivial},
		initial:   append([]int(nil), task.Initial...),
		goals:     make(map[int]bool),
	}
	if a.isGoal(trivial) {
		a.goals[0] = true
	}
	return a
}

// OracleMode selects which transition-oracle representation Abstraction
// builds: TS maintains explicit per-state transition lists rewired on
// every split; MT and SG answer queries lazily from the live hierarchy
// and the grounded operator set, respectively, with no split-time upkeep.
type OracleMode int

const (
	ModeTS OracleMode = iota
	ModeMT
	ModeSG
)

// InitOracle builds and installs the chosen transition-oracle
// representation over the abstraction's current (normally still trivial)
// state. It must be called before the first Refine.
func (a *Abstraction) InitOracle(mode OracleMode, ordering oracle.Ordering) {
	switch mode {
	case ModeTS:
		a.oracle = oracle.NewTS(a.task, a.regions[0], ordering)
	case ModeMT:
		a.oracle = oracle.NewMT(a.hierarchy, a.task, ordering)
	case ModeSG:
		a.oracle = oracle.NewSG(a.task, a, ordering)
	}
}

// Region implements oracle.RegionLookup: the live Cartesian set for state,
// or nil if state has never been created.
func (a *Abstraction) Region(state int) *cartesianset.Set {
	if state < 0 || state >= len(a.regions) {
		return nil
	}
	return a.regions[state]
}

// NumStates implements oracle.RegionLookup: one past the highest StateID
// ever allocated.
func (a *Abstraction) NumStates() int { return len(a.regions) }

// Task returns the SAS⁺ task this abstraction was built over.
func (a *Abstraction) Task() *sastask.Task { return a.task }

// VarInfos returns the shared, immutable per-variable bitset metadata.
func (a *Abstraction) VarInfos() []cartesianset.VarInfo { return a.varInfos }

// Hierarchy returns the refinement hierarchy backing this abstraction.
func (a *Abstraction) Hierarchy() *refhierarchy.Hierarchy { return a.hierarchy }

// Oracle returns the active transition-oracle representation.
func (a *Abstraction) Oracle() oracle.Oracle { return a.oracle }

// InitialStateID returns the abstract state currently containing the
// concrete initial state. Refine keeps this value stable at 0.
func (a *Abstraction) InitialStateID() int {
	return a.hierarchy.GetAbstractStateID(a.initial)
}

// GoalStateIDs returns the current set of abstract states representing at
// least one concrete goal state.
func (a *Abstraction) GoalStateIDs() map[int]bool { return a.goals }

// State returns a snapshot of one abstract state.
func (a *Abstraction) State(stateID int) State {
	return State{
		StateID: stateID,
		NodeID:  a.hierarchy.LeafForState(stateID),
		Set:     a.regions[stateID],
	}
}

// query adapts stateID to refhierarchy.StateQuery.
func (a *Abstraction) query(stateID int) stateQuery { return stateQuery{a: a, id: stateID} }

func (a *Abstraction) isGoal(region *cartesianset.Set) bool {
	for _, f := range a.task.Goal {
		if !region.Test(f.Var, f.Value) {
			return false
		}
	}
	return true
}

// EnableDebugCrossCheck installs a second, independent oracle (normally an
// MT built fresh over the live hierarchy) that every subsequent Refine call
// checks against the active oracle; on the first divergence Refine returns
// an error wrapping ErrDebugCrossCheck; it does not panic.
func (a *Abstraction) EnableDebugCrossCheck(second oracle.Oracle) {
	a.debugOracle = second
}

// SwitchToSG discards whatever oracle representation is active and
// installs a successor-generator oracle in its place: the one-way
// TS-to-SG downgrade the refinement loop performs before a built abstraction is
// handed to cost-saturation reuse. No further refinement is permitted
// after this call.
func (a *Abstraction) SwitchToSG(ordering oracle.Ordering) {
	a.oracle = oracle.NewSG(a.task, a, ordering)
	a.debugOracle = nil
}
