package refhierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goplanner/cartesian/cartesianset"
	"github.com/goplanner/cartesian/refhierarchy"
)

type fakeState struct {
	leaf refhierarchy.NodeID
	set  *cartesianset.Set
}

func (s fakeState) LeafNode() refhierarchy.NodeID { return s.leaf }
func (s fakeState) Contains(v, val int) bool       { return s.set.Test(v, val) }

func TestSplitAndLookup(t *testing.T) {
	infos, total := cartesianset.NewVarInfos([]int{3})
	trivial := cartesianset.NewTrivial(infos, total)
	h := refhierarchy.New(0, trivial)

	wantedSet, otherSet := trivial.SplitDomain(0, []int{1})
	left, right := h.Split(0, 0, []int{1}, otherSet, wantedSet, 0, 1)

	require.Equal(t, 0, h.GetAbstractStateID([]int{0}))
	require.Equal(t, 0, h.GetAbstractStateID([]int{2}))
	require.Equal(t, 1, h.GetAbstractStateID([]int{1}))

	var visited []refhierarchy.NodeID
	h.ForEachVisitedNode(fakeState{leaf: right, set: wantedSet}, func(id refhierarchy.NodeID) {
		visited = append(visited, id)
	})
	require.Equal(t, []refhierarchy.NodeID{0, right}, visited)

	var families []refhierarchy.Family
	h.ForEachVisitedFamily(fakeState{leaf: left, set: otherSet}, func(f refhierarchy.Family) {
		families = append(families, f)
	})
	require.Equal(t, []refhierarchy.Family{{Parent: 0, CorrectChild: left, OtherChild: right}}, families)
}

func TestSplitChainWithMultipleWantedValues(t *testing.T) {
	infos, total := cartesianset.NewVarInfos([]int{5})
	trivial := cartesianset.NewTrivial(infos, total)
	h := refhierarchy.New(0, trivial)

	wanted, other := trivial.SplitDomain(0, []int{1, 3})
	_, right := h.Split(0, 0, []int{1, 3}, other, wanted, 1, 0)

	require.Equal(t, 0, h.GetAbstractStateID([]int{1}))
	require.Equal(t, 0, h.GetAbstractStateID([]int{3}))
	require.Equal(t, 1, h.GetAbstractStateID([]int{0}))
	require.Equal(t, 1, h.GetAbstractStateID([]int{2}))
	require.Equal(t, 1, h.GetAbstractStateID([]int{4}))
	require.True(t, h.NumNodes() >= 3)
	require.Equal(t, 0, h.GetAbstractStateID([]int{1}))
	_ = right
}

func TestForEachLeaf(t *testing.T) {
	infos, total := cartesianset.NewVarInfos([]int{4})
	trivial := cartesianset.NewTrivial(infos, total)
	h := refhierarchy.New(0, trivial)

	wanted, other := trivial.SplitDomain(0, []int{0, 1})
	left, right := h.Split(0, 0, []int{0, 1}, other, wanted, 1, 0)

	query := trivial.Clone()
	query.SetSingleValue(0, 1)
	matcher := []refhierarchy.Matcher{refhierarchy.SingleValue}

	var leaves []refhierarchy.NodeID
	h.ForEachLeaf(query, matcher, func(id refhierarchy.NodeID) { leaves = append(leaves, id) })
	require.Equal(t, []refhierarchy.NodeID{right}, leaves)
	_ = left
}
