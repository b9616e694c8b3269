package shortestpath

import (
	"math"

	"github.com/goplanner/cartesian/sastask"
	"github.com/goplanner/cartesian/transition"
)

// Cost64 is a 64-bit widened operator or path cost. Infinite represents an
// unreachable distance or a forbidden operator.
type Cost64 int64

// Infinite marks an unreachable goal distance or an uncrossable operator.
const Infinite Cost64 = math.MaxInt64

// AddSat adds two costs, saturating at Infinite instead of overflowing.
func (c Cost64) AddSat(other Cost64) Cost64 {
	if c == Infinite || other == Infinite {
		return Infinite
	}
	return c + other
}

// WidenCosts widens a task's operator costs to Cost64, rescaling by 2^32
// and bumping zero-cost operators to 1 whenever any operator has cost 0.
// Rescaled reports whether rescaling was applied, so callers can shift
// reported h-values back down by 32 bits (To32).
func WidenCosts(costs []int64) (widened []Cost64, rescaled bool) {
	for _, c := range costs {
		if c == 0 {
			rescaled = true
			break
		}
	}
	widened = make([]Cost64, len(costs))
	for i, c := range costs {
		switch {
		case c >= sastask.InfiniteCost:
			widened[i] = Infinite
		case rescaled && c == 0:
			widened[i] = 1
		case rescaled:
			widened[i] = Cost64(c) << 32
		default:
			widened[i] = Cost64(c)
		}
	}
	return widened, rescaled
}

// To32 shifts a rescaled Cost64 back down to the original 32-bit h-value
// scale; if rescaled is false it is returned unchanged. Infinite maps to
// Infinite either way.
func To32(c Cost64, rescaled bool) Cost64 {
	if c == Infinite || !rescaled {
		return c
	}
	return c >> 32
}

// undefinedTransition marks an Entry with no shortest-path hop: a goal
// state, or a state whose distance is Infinite.
var undefinedTransition = transition.Transition{Op: -1, Target: -1}

// Entry is one abstract state's shortest-path record.
type Entry struct {
	GoalDistance Cost64
	SPT          transition.Transition
}

// Incoming is the minimal read surface UpdateIncrementally and Recompute
// need from a transition oracle: the arcs leading into a state. Entries'
// Target names the predecessor, matching oracle.Oracle.Incoming.
type Incoming interface {
	Incoming(state int) transition.Transitions
}

// Outgoing is the minimal read surface UpdateIncrementally needs to test
// reconnection candidates: the arcs leading out of a state.
type Outgoing interface {
	Outgoing(state int) transition.Transitions
}

// TransitionOracle is the combined read surface UpdateIncrementally needs.
type TransitionOracle interface {
	Incoming
	Outgoing
}
