package shortestpath

import (
	"container/heap"
	"fmt"

	"github.com/goplanner/cartesian/transition"
)

// ShortestPaths owns the goal-distance and shortest-path-tree arrays for
// one abstraction: Entry i describes abstract state i.
type ShortestPaths struct {
	dist []Cost64
	spt  []transition.Transition
}

func (sp *ShortestPaths) ensure(state int) {
	for len(sp.dist) <= state {
		sp.dist = append(sp.dist, Infinite)
		sp.spt = append(sp.spt, undefinedTransition)
	}
}

// GoalDistance returns state's current goal distance.
func (sp *ShortestPaths) GoalDistance(state int) Cost64 { return sp.dist[state] }

// Entry returns state's full shortest-path record.
func (sp *ShortestPaths) Entry(state int) Entry {
	return Entry{GoalDistance: sp.dist[state], SPT: sp.spt[state]}
}

// Recompute runs a full reverse Dijkstra from goals over numStates states,
// relaxing along oracle's incoming transitions, and returns the resulting
// goal distances and shortest-path tree from scratch.
func Recompute(numStates int, goals map[int]bool, oracle Incoming, costs []Cost64) *ShortestPaths {
	sp := &ShortestPaths{dist: make([]Cost64, numStates), spt: make([]transition.Transition, numStates)}
	for i := range sp.dist {
		sp.dist[i] = Infinite
		sp.spt[i] = undefinedTransition
	}

	pq := &itemPQ{}
	heap.Init(pq)
	for g := range goals {
		sp.dist[g] = 0
		heap.Push(pq, &item{g, 0})
	}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*item)
		if cur.dist > sp.dist[cur.state] {
			continue // stale, a shorter distance was already found
		}
		for _, tr := range oracle.Incoming(cur.state) {
			predecessor := tr.Target
			candidate := cur.dist.AddSat(costs[tr.Op])
			if candidate < sp.dist[predecessor] {
				sp.dist[predecessor] = candidate
				sp.spt[predecessor] = transition.Transition{Op: tr.Op, Target: cur.state}
				heap.Push(pq, &item{predecessor, candidate})
			}
		}
	}
	return sp
}

// UpdateIncrementally repairs sp after splitting state v into v1 (v's
// original ID, reused) and v2 (a fresh ID inheriting v's old shortest-path
// hop), following the four-step algorithm: seed both children from v's old
// record, re-aim other states' stale hops, reconnect candidates through
// non-dirty successors where possible, and Dijkstra-repair whatever is
// left dirty.
func (sp *ShortestPaths) UpdateIncrementally(v, v1, v2 int, oracle TransitionOracle, costs []Cost64) {
	sp.ensure(v1)
	sp.ensure(v2)

	oldDist := sp.dist[v]
	oldSPT := sp.spt[v]
	sp.dist[v1] = oldDist
	sp.spt[v1] = undefinedTransition
	sp.dist[v2] = oldDist
	sp.spt[v2] = oldSPT

	dirty := make(map[int]bool)
	var stale []int
	for s := range sp.spt {
		if s == v1 || s == v2 || sp.spt[s].Op < 0 || sp.spt[s].Target != v {
			continue
		}
		op := sp.spt[s].Op
		redirected := false
		for _, preferred := range []int{v2, v1} {
			for _, out := range oracle.Outgoing(s) {
				if out.Op == op && out.Target == preferred {
					sp.spt[s] = transition.Transition{Op: op, Target: preferred}
					redirected = true
					break
				}
			}
			if redirected {
				break
			}
		}
		if !redirected {
			sp.spt[s] = undefinedTransition
			stale = append(stale, s)
		}
	}

	pq := &itemPQ{}
	heap.Init(pq)
	heap.Push(pq, &item{v1, sp.dist[v1]})
	for _, s := range stale {
		heap.Push(pq, &item{s, sp.dist[s]})
	}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*item)
		if dirty[cur.state] && sp.spt[cur.state].Op < 0 {
			continue // already settled dirty in a previous pop
		}
		reconnected := false
		for _, out := range oracle.Outgoing(cur.state) {
			if dirty[out.Target] {
				continue
			}
			if sp.dist[out.Target].AddSat(costs[out.Op]) == sp.dist[cur.state] {
				sp.spt[cur.state] = transition.Transition{Op: out.Op, Target: out.Target}
				reconnected = true
				break
			}
		}
		if reconnected {
			delete(dirty, cur.state)
			continue
		}
		dirty[cur.state] = true
		sp.spt[cur.state] = undefinedTransition
		for s := range sp.spt {
			if sp.spt[s].Op >= 0 && sp.spt[s].Target == cur.state {
				heap.Push(pq, &item{s, sp.dist[s]})
			}
		}
	}

	sp.repairDirty(dirty, oracle, costs)
}

// repairDirty runs step 4: a Dijkstra-style relaxation among dirty states
// alone, seeded from the best non-dirty successor each reaches directly.
func (sp *ShortestPaths) repairDirty(dirty map[int]bool, oracle TransitionOracle, costs []Cost64) {
	if len(dirty) == 0 {
		return
	}
	states := make([]int, 0, len(dirty))
	for s := range dirty {
		states = append(states, s)
	}
	for _, s := range states {
		best := Infinite
		bestHop := undefinedTransition
		for _, out := range oracle.Outgoing(s) {
			if dirty[out.Target] {
				continue
			}
			if candidate := sp.dist[out.Target].AddSat(costs[out.Op]); candidate < best {
				best = candidate
				bestHop = transition.Transition{Op: out.Op, Target: out.Target}
			}
		}
		sp.dist[s] = best
		sp.spt[s] = bestHop
	}

	pq := &itemPQ{}
	heap.Init(pq)
	for _, s := range states {
		heap.Push(pq, &item{s, sp.dist[s]})
	}
	settled := make(map[int]bool, len(states))
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*item)
		if settled[cur.state] || cur.dist > sp.dist[cur.state] {
			continue
		}
		settled[cur.state] = true
		for _, tr := range oracle.Incoming(cur.state) {
			predecessor := tr.Target
			if !dirty[predecessor] {
				continue
			}
			candidate := cur.dist.AddSat(costs[tr.Op])
			if candidate < sp.dist[predecessor] {
				sp.dist[predecessor] = candidate
				sp.spt[predecessor] = transition.Transition{Op: tr.Op, Target: cur.state}
				heap.Push(pq, &item{predecessor, candidate})
			}
		}
	}
}

// ExtractSolution walks the shortest-path tree forward from initial until
// it reaches a goal state, returning the hop sequence.
func ExtractSolution(sp *ShortestPaths, initial int, goals map[int]bool) ([]transition.Transition, error) {
	if sp.dist[initial] == Infinite {
		return nil, fmt.Errorf("%w: state %d", ErrUnsolvableInAbstraction, initial)
	}
	var plan []transition.Transition
	state := initial
	for !goals[state] {
		hop := sp.spt[state]
		plan = append(plan, hop)
		state = hop.Target
	}
	return plan, nil
}
