package cegar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goplanner/cartesian/shortestpath"
	"github.com/goplanner/cartesian/transition"
)

// chainOracle is a 3-state linear chain: 0 -> 1 -> 2, operator IDs matching
// hop order.
type chainOracle struct{}

func (chainOracle) Outgoing(state int) transition.Transitions {
	switch state {
	case 0:
		return transition.Transitions{{Op: 0, Target: 1}}
	case 1:
		return transition.Transitions{{Op: 1, Target: 2}}
	default:
		return nil
	}
}

func TestAstarSearchExtractPlanFindsChain(t *testing.T) {
	s := NewAstarSearch()
	costs := []shortestpath.Cost64{1, 1}
	plan, err := s.ExtractPlan(0, map[int]bool{2: true}, chainOracle{}, costs)
	require.NoError(t, err)
	require.Equal(t, transition.Transitions{{Op: 0, Target: 1}, {Op: 1, Target: 2}}, plan)
}

func TestAstarSearchExtractPlanUnsolvable(t *testing.T) {
	s := NewAstarSearch()
	costs := []shortestpath.Cost64{1, 1}
	_, err := s.ExtractPlan(0, map[int]bool{99: true}, chainOracle{}, costs)
	require.ErrorIs(t, err, ErrAstarUnsolvable)
}

func TestAstarSearchPropagateCopiesParentEstimate(t *testing.T) {
	s := NewAstarSearch()
	s.h[5] = 42
	s.Propagate(5, 6, 7)
	require.EqualValues(t, 42, s.heuristic(6))
	require.EqualValues(t, 42, s.heuristic(7))
}
