package oracle

import (
	"github.com/goplanner/cartesian/cartesianset"
	"github.com/goplanner/cartesian/sastask"
	"github.com/goplanner/cartesian/transition"
)

// TS is the explicit transition system oracle: for every live abstract
// state it keeps a list of self-looping operators and of genuine
// incoming/outgoing transitions, rewired in place by Split rather than
// recomputed from scratch. Incoming entries reuse Transition.Target to name
// the neighboring (source) state, matching Oracle.Incoming's contract.
type TS struct {
	task     *sastask.Task
	ordering Ordering
	loops    [][]int
	out      []transition.Transitions
	in       []transition.Transitions
}

// NewTS builds a transition system with a single state (ID 0) covering
// trivialRegion, the coarsest abstraction every operator self-loops on.
func NewTS(task *sastask.Task, trivialRegion *cartesianset.Set, ordering Ordering) *TS {
	t := &TS{task: task, ordering: ordering}
	var loops []int
	for i := range task.Operators {
		op := &task.Operators[i]
		if op.Cost < sastask.InfiniteCost && applicable(trivialRegion, op) {
			loops = append(loops, op.ID)
		}
	}
	t.loops = [][]int{loops}
	t.out = []transition.Transitions{nil}
	t.in = []transition.Transitions{nil}
	return t
}

func (t *TS) Outgoing(state int) transition.Transitions { return t.out[state] }
func (t *TS) Incoming(state int) transition.Transitions { return t.in[state] }

// NumNonLoopTransitions returns the total number of outgoing transitions
// across every live state, the quantity max_transitions budgets against.
func (t *TS) NumNonLoopTransitions() int {
	n := 0
	for _, out := range t.out {
		n += len(out)
	}
	return n
}

func (t *TS) ensure(state int) {
	for len(t.loops) <= state {
		t.loops = append(t.loops, nil)
		t.out = append(t.out, nil)
		t.in = append(t.in, nil)
	}
}

type tsArc struct{ source, op, target int }

// Split rewires oldState's loops and transitions into leftState and
// rightState after a split on splitVar. regions resolves the current
// Cartesian set of any other live state touched by oldState's transitions;
// leftRegion/rightRegion are the new children's own sets.
func (t *TS) Split(oldState, leftState, rightState, splitVar int, leftRegion, rightRegion *cartesianset.Set, regions RegionLookup) {
	t.ensure(leftState)
	t.ensure(rightState)

	oldLoops := t.loops[oldState]
	oldOutgoing := append(transition.Transitions(nil), t.out[oldState]...)
	oldIncoming := append(transition.Transitions(nil), t.in[oldState]...)

	sides := []struct {
		state  int
		region *cartesianset.Set
	}{{leftState, leftRegion}, {rightState, rightRegion}}

	newLoops := map[int][]int{leftState: nil, rightState: nil}
	var newArcs []tsArc

	for _, opID := range oldLoops {
		op := &t.task.Operators[opID]
		for _, s := range sides {
			if !applicable(s.region, op) {
				continue
			}
			if isSelfLoop(s.region, op) {
				newLoops[s.state] = append(newLoops[s.state], opID)
				continue
			}
			image := postImage(s.region, op)
			for _, other := range sides {
				if other.state != s.state && image.Intersects(other.region, splitVar) {
					newArcs = append(newArcs, tsArc{s.state, opID, other.state})
				}
			}
		}
	}

	for _, tr := range oldOutgoing {
		op := &t.task.Operators[tr.Op]
		targetRegion := regions.Region(tr.Target)
		for _, s := range sides {
			if applicable(s.region, op) && postImage(s.region, op).IntersectsAll(targetRegion) {
				newArcs = append(newArcs, tsArc{s.state, tr.Op, tr.Target})
			}
		}
	}

	for _, tr := range oldIncoming {
		op := &t.task.Operators[tr.Op]
		sourceRegion := regions.Region(tr.Target)
		if !applicable(sourceRegion, op) {
			continue
		}
		image := postImage(sourceRegion, op)
		for _, s := range sides {
			if image.IntersectsAll(s.region) {
				newArcs = append(newArcs, tsArc{tr.Target, tr.Op, s.state})
			}
		}
	}

	touched := map[int]bool{}
	for _, tr := range oldOutgoing {
		touched[tr.Target] = true
	}
	for _, tr := range oldIncoming {
		touched[tr.Target] = true
	}
	for st := range touched {
		t.out[st] = pruneTarget(t.out[st], oldState)
		t.in[st] = pruneTarget(t.in[st], oldState)
	}

	t.loops[oldState], t.out[oldState], t.in[oldState] = nil, nil, nil
	t.loops[leftState], t.out[leftState], t.in[leftState] = newLoops[leftState], nil, nil
	t.loops[rightState], t.out[rightState], t.in[rightState] = newLoops[rightState], nil, nil

	for _, a := range newArcs {
		t.out[a.source] = append(t.out[a.source], transition.Transition{Op: a.op, Target: a.target})
		t.in[a.target] = append(t.in[a.target], transition.Transition{Op: a.op, Target: a.source})
	}

	t.ordering.sortTransitions(t.out[leftState], t.task)
	t.ordering.sortTransitions(t.in[leftState], t.task)
	t.ordering.sortTransitions(t.out[rightState], t.task)
	t.ordering.sortTransitions(t.in[rightState], t.task)
	for st := range touched {
		t.ordering.sortTransitions(t.out[st], t.task)
		t.ordering.sortTransitions(t.in[st], t.task)
	}
}

func pruneTarget(ts transition.Transitions, target int) transition.Transitions {
	out := ts[:0]
	for _, tr := range ts {
		if tr.Target != target {
			out = append(out, tr)
		}
	}
	return out
}
