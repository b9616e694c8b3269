package oracle

import (
	"github.com/goplanner/cartesian/cartesianset"
	"github.com/goplanner/cartesian/transition"
)

// Oracle answers, for an abstract state ID, the non-self-loop transitions
// leading out of and into it. All three implementations (TS, MT, SG) must
// agree on the set each method returns.
type Oracle interface {
	Outgoing(state int) transition.Transitions
	Incoming(state int) transition.Transitions
}

// RegionLookup is the abstraction's read surface the oracle needs: the
// current Cartesian set of any live abstract state, and how many abstract
// states currently exist (SG has no other way to enumerate them).
type RegionLookup interface {
	Region(state int) *cartesianset.Set
	NumStates() int
}
