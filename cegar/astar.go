package cegar

import (
	"container/heap"
	"errors"

	"github.com/goplanner/cartesian/shortestpath"
	"github.com/goplanner/cartesian/transition"
)

// ErrAstarUnsolvable is returned by AstarSearch.ExtractPlan when no goal
// state is reachable from initial over the oracle's current transitions.
var ErrAstarUnsolvable = errors.New("cegar: no goal reachable in abstraction")

// AstarSearch is the Astar-strategy counterpart to shortestpath's
// incrementally maintained structure: rather than repair a full
// goal-distance table after every split, it re-runs a single forward A*
// search each iteration and remembers, for every state the search settles
// on its way to the goal it finds, the exact distance from that state to
// that goal. Those remembered values seed Propagate, which copies a split
// parent's estimate onto both of its children, a valid lower bound since
// refining a Cartesian abstraction can only ever raise a state's true
// distance to goal, never lower it.
type AstarSearch struct {
	h map[int]shortestpath.Cost64
}

// NewAstarSearch returns an AstarSearch with every state's initial estimate
// at zero, the weakest admissible lower bound.
func NewAstarSearch() *AstarSearch {
	return &AstarSearch{h: make(map[int]shortestpath.Cost64)}
}

func (s *AstarSearch) heuristic(state int) shortestpath.Cost64 {
	if v, ok := s.h[state]; ok {
		return v
	}
	return 0
}

// Propagate copies parent's current heuristic estimate onto v1 and v2, its
// two children after a split.
func (s *AstarSearch) Propagate(parent, v1, v2 int) {
	h := s.heuristic(parent)
	s.h[v1] = h
	s.h[v2] = h
}

type outgoingOracle interface {
	Outgoing(state int) transition.Transitions
}

type astarItem struct {
	state int
	g, f  shortestpath.Cost64
}

type astarPQ []*astarItem

func (pq astarPQ) Len() int            { return len(pq) }
func (pq astarPQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq astarPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *astarPQ) Push(x interface{}) { *pq = append(*pq, x.(*astarItem)) }
func (pq *astarPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// ExtractPlan runs a forward A* search from initial to the nearest state in
// goals over oracle's outgoing transitions, weighted by costs. On success
// it tightens h for every state along the found path to its exact distance
// to the discovered goal before returning the hop sequence.
func (s *AstarSearch) ExtractPlan(initial int, goals map[int]bool, oracle outgoingOracle, costs []shortestpath.Cost64) (transition.Transitions, error) {
	g := map[int]shortestpath.Cost64{initial: 0}
	cameFromOp := map[int]int{}
	cameFromState := map[int]int{}
	closed := map[int]bool{}

	pq := &astarPQ{}
	heap.Init(pq)
	heap.Push(pq, &astarItem{state: initial, g: 0, f: s.heuristic(initial)})

	goalState := -1
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*astarItem)
		if closed[cur.state] {
			continue
		}
		if g[cur.state] < cur.g {
			continue // stale entry; a cheaper path to this state already closed it
		}
		closed[cur.state] = true
		if goals[cur.state] {
			goalState = cur.state
			break
		}
		for _, tr := range oracle.Outgoing(cur.state) {
			candidate := cur.g.AddSat(costs[tr.Op])
			if old, ok := g[tr.Target]; ok && old <= candidate {
				continue
			}
			g[tr.Target] = candidate
			cameFromOp[tr.Target] = tr.Op
			cameFromState[tr.Target] = cur.state
			heap.Push(pq, &astarItem{state: tr.Target, g: candidate, f: candidate.AddSat(s.heuristic(tr.Target))})
		}
	}

	if goalState == -1 {
		return nil, ErrAstarUnsolvable
	}

	var reversed transition.Transitions
	for state := goalState; state != initial; {
		prev := cameFromState[state]
		reversed = append(reversed, transition.Transition{Op: cameFromOp[state], Target: state})
		state = prev
	}
	plan := make(transition.Transitions, len(reversed))
	for i, hop := range reversed {
		plan[len(reversed)-1-i] = hop
	}

	total := g[goalState]
	running := total
	state := initial
	for _, hop := range plan {
		s.h[state] = running
		running -= costs[hop.Op]
		state = hop.Target
	}
	s.h[goalState] = 0

	return plan, nil
}
