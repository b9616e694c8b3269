package oracle

import (
	"math/rand"
	"sort"

	"github.com/goplanner/cartesian/refhierarchy"
	"github.com/goplanner/cartesian/sastask"
	"github.com/goplanner/cartesian/transition"
)

// MT is the match-tree transition oracle: it keeps no per-state index at
// all beyond the shared refinement hierarchy, and enumerates transitions by
// walking Hierarchy.ForEachLeaf against each operator's hypothetical
// post-image (Outgoing) or pre-image (Incoming) at query time.
type MT struct {
	h        *refhierarchy.Hierarchy
	task     *sastask.Task
	ordering Ordering
}

// NewMT builds a match-tree oracle over h and task. h must already be
// shared with the Abstraction so leaves reflect the current split state.
func NewMT(h *refhierarchy.Hierarchy, task *sastask.Task, ordering Ordering) *MT {
	return &MT{h: h, task: task, ordering: ordering}
}

func (m *MT) Outgoing(state int) transition.Transitions {
	region := m.h.Region(m.h.LeafForState(state))
	var out transition.Transitions
	for i := range m.task.Operators {
		op := &m.task.Operators[i]
		if op.Cost >= sastask.InfiniteCost || !applicable(region, op) {
			continue
		}
		matcher := matcherFor(region, op)
		image := postImage(region, op)
		m.h.ForEachLeaf(image, matcher, func(id refhierarchy.NodeID) {
			target := m.h.StateIDOfLeaf(id)
			if target != state {
				out = append(out, transition.Transition{Op: op.ID, Target: target})
			}
		})
	}
	m.ordering.sortTransitions(out, m.task)
	return out
}

func (m *MT) Incoming(state int) transition.Transitions {
	region := m.h.Region(m.h.LeafForState(state))
	var in transition.Transitions
	for i := range m.task.Operators {
		op := &m.task.Operators[i]
		if op.Cost >= sastask.InfiniteCost || !effectReachable(region, op) {
			continue
		}
		query, matcher := preImageQuery(region, op)
		m.h.ForEachLeaf(query, matcher, func(id refhierarchy.NodeID) {
			source := m.h.StateIDOfLeaf(id)
			sourceRegion := m.h.Region(id)
			if source == state || !applicable(sourceRegion, op) {
				return
			}
			in = append(in, transition.Transition{Op: op.ID, Target: source})
		})
	}
	m.ordering.sortTransitions(in, m.task)
	return in
}

// sortTransitions orders ts by the configured two-level key: a seeded
// shuffle first (so ties break uniformly), then a stable sort by Primary
// and, on ties, Secondary, and finally by target state for determinism.
func (o Ordering) sortTransitions(ts transition.Transitions, task *sastask.Task) {
	if len(ts) < 2 {
		return
	}
	rnd := rand.New(rand.NewSource(o.Seed))
	rnd.Shuffle(len(ts), func(i, j int) { ts[i], ts[j] = ts[j], ts[i] })
	sort.SliceStable(ts, func(i, j int) bool {
		if cmp := o.compare(ts[i].Op, ts[j].Op, task, o.Primary); cmp != 0 {
			return cmp < 0
		}
		if cmp := o.compare(ts[i].Op, ts[j].Op, task, o.Secondary); cmp != 0 {
			return cmp < 0
		}
		return ts[i].Target < ts[j].Target
	})
}
