package abstraction

import (
	"github.com/goplanner/cartesian/cartesianset"
	"github.com/goplanner/cartesian/oracle"
	"github.com/goplanner/cartesian/refhierarchy"
)

// State is a read-only snapshot of one abstract state: its dense ID, the
// hierarchy leaf it currently occupies, and the Cartesian set it owns.
type State struct {
	StateID int
	NodeID  refhierarchy.NodeID
	Set     *cartesianset.Set
}

// Splittable is implemented by transition-oracle representations that keep
// explicit per-state data needing split-time maintenance (the TS mode).
// MT and SG do not implement it: they rebuild every answer lazily from the
// live hierarchy (MT) or the live region table (SG) and need no split-time
// callback at all.
type Splittable interface {
	Split(oldState, leftState, rightState, splitVar int, leftRegion, rightRegion *cartesianset.Set, regions oracle.RegionLookup)
}

// stateQuery adapts one abstract state to refhierarchy.StateQuery without
// the hierarchy package needing to know Abstraction's concrete type.
type stateQuery struct {
	a  *Abstraction
	id int
}

func (q stateQuery) LeafNode() refhierarchy.NodeID { return q.a.hierarchy.LeafForState(q.id) }
func (q stateQuery) Contains(var_, value int) bool { return q.a.regions[q.id].Test(var_, value) }
