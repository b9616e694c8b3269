package oracle

import (
	"github.com/goplanner/cartesian/cartesianset"
	"github.com/goplanner/cartesian/sastask"
	"github.com/goplanner/cartesian/transition"
)

// SG is the successor-generator oracle: it keeps no per-state index at all,
// re-scanning every operator against the queried state's region on each
// call. It trades query-time cost for zero memory overhead beyond the
// abstraction's own Cartesian sets, and is the representation the CEGAR
// loop downgrades TS to once refinement is finished.
type SG struct {
	task     *sastask.Task
	regions  RegionLookup
	ordering Ordering
}

// NewSG builds a successor-generator oracle over task, resolving any live
// state's region through regions (normally the Abstraction itself).
func NewSG(task *sastask.Task, regions RegionLookup, ordering Ordering) *SG {
	return &SG{task: task, regions: regions, ordering: ordering}
}

func (s *SG) Outgoing(state int) transition.Transitions {
	region := s.regions.Region(state)
	var out transition.Transitions
	for i := range s.task.Operators {
		op := &s.task.Operators[i]
		if op.Cost >= sastask.InfiniteCost || !applicable(region, op) {
			continue
		}
		if isSelfLoop(region, op) {
			continue
		}
		image := postImage(region, op)
		s.forEachState(func(candidate int, candidateRegion *cartesianset.Set) {
			if candidate != state && image.IntersectsAll(candidateRegion) {
				out = append(out, transition.Transition{Op: op.ID, Target: candidate})
			}
		})
	}
	s.ordering.sortTransitions(out, s.task)
	return out
}

func (s *SG) Incoming(state int) transition.Transitions {
	region := s.regions.Region(state)
	var in transition.Transitions
	for i := range s.task.Operators {
		op := &s.task.Operators[i]
		if op.Cost >= sastask.InfiniteCost {
			continue
		}
		s.forEachState(func(candidate int, candidateRegion *cartesianset.Set) {
			if candidate == state || !applicable(candidateRegion, op) {
				return
			}
			image := postImage(candidateRegion, op)
			if image.IntersectsAll(region) {
				in = append(in, transition.Transition{Op: op.ID, Target: candidate})
			}
		})
	}
	s.ordering.sortTransitions(in, s.task)
	return in
}

// forEachState visits every currently live abstract state, in ID order.
func (s *SG) forEachState(callback func(state int, region *cartesianset.Set)) {
	for id := 0; id < s.regions.NumStates(); id++ {
		if region := s.regions.Region(id); region != nil {
			callback(id, region)
		}
	}
}
