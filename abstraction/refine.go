package abstraction

import (
	"fmt"

	"github.com/goplanner/cartesian/cartesianset"
	"github.com/goplanner/cartesian/oracle"
)

// Refine splits stateID on var into a "wanted" child (exactly the values in
// wanted) and an "other" child (everything else stateID's set held for
// var), and returns (v1, v2): v1 reuses stateID's own ID, v2 is freshly
// allocated. Per spec, v2 is always the side a caller should hand to
// shortestpath.UpdateIncrementally as the state inheriting the old
// shortest-path hop; v1 is the side needing that hop re-derived.
//
// Which of the wanted/other Cartesian sets lands on v1 vs v2 is decided by
// where the tracked concrete initial state falls: the side containing it
// keeps stateID (so InitialStateID never moves once assigned), and the
// other side is the fresh allocation. Applied at initialization time to
// splits off the trivial state 0, this same rule keeps state 0 stable.
func (a *Abstraction) Refine(stateID, var_ int, wanted []int) (v1, v2 int, err error) {
	oldRegion := a.regions[stateID]
	wantedRegion, otherRegion := oldRegion.SplitDomain(var_, wanted)

	freshID := len(a.regions)
	a.regions = append(a.regions, nil)

	initValue := a.initial[var_]
	initInWanted := containsInt(wanted, initValue)

	var leftID, rightID int
	var leftRegion, rightRegion *cartesianset.Set
	leftRegion, rightRegion = otherRegion, wantedRegion
	if initInWanted {
		rightID, leftID = stateID, freshID
	} else {
		leftID, rightID = stateID, freshID
	}

	leaf := a.hierarchy.LeafForState(stateID)
	a.hierarchy.Split(leaf, var_, wanted, leftRegion, rightRegion, leftID, rightID)
	a.regions[leftID] = leftRegion
	a.regions[rightID] = rightRegion

	if splittable, ok := a.oracle.(Splittable); ok {
		splittable.Split(stateID, leftID, rightID, var_, leftRegion, rightRegion, a)
	}

	a.refreshGoal(stateID, leftID, rightID)

	if a.debugOracle != nil {
		if splittable, ok := a.debugOracle.(Splittable); ok {
			splittable.Split(stateID, leftID, rightID, var_, leftRegion, rightRegion, a)
		}
		if cerr := oracle.CrossCheck(a.oracle, a.debugOracle, len(a.regions)); cerr != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrDebugCrossCheck, cerr)
		}
	}

	return stateID, freshID, nil
}

// refreshGoal updates the goal-state set after a split of oldState into
// leftID/rightID: oldState is removed (it no longer exists as a leaf) and
// each child is re-tested against the task's goal facts.
func (a *Abstraction) refreshGoal(oldState, leftID, rightID int) {
	wasGoal := a.goals[oldState]
	delete(a.goals, oldState)
	if !wasGoal {
		return
	}
	if a.isGoal(a.regions[leftID]) {
		a.goals[leftID] = true
	}
	if a.isGoal(a.regions[rightID]) {
		a.goals[rightID] = true
	}
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
