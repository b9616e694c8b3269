package oracle

import (
	"fmt"
	"sort"

	"github.com/goplanner/cartesian/transition"
)

// CrossCheck compares a and b's transition sets for every state in
// [0, numStates), ignoring order, and returns ErrTransitionSetMismatch
// wrapped with the offending state on the first divergence.
func CrossCheck(a, b Oracle, numStates int) error {
	for state := 0; state < numStates; state++ {
		if !sameSet(a.Outgoing(state), b.Outgoing(state)) {
			return fmt.Errorf("%w: state %d outgoing", ErrTransitionSetMismatch, state)
		}
		if !sameSet(a.Incoming(state), b.Incoming(state)) {
			return fmt.Errorf("%w: state %d incoming", ErrTransitionSetMismatch, state)
		}
	}
	return nil
}

func sameSet(a, b transition.Transitions) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := append(transition.Transitions(nil), a...), append(transition.Transitions(nil), b...)
	sort.Sort(sa)
	sort.Sort(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
