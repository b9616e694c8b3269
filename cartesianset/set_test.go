package cartesianset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goplanner/cartesian/cartesianset"
)

func TestTrivialSetHasFullDomain(t *testing.T) {
	infos, total := cartesianset.NewVarInfos([]int{3, 70})
	s := cartesianset.NewTrivial(infos, total)

	require.True(t, s.HasFullDomain(0))
	require.True(t, s.HasFullDomain(1))
	require.Equal(t, 3, s.Count(0))
	require.Equal(t, 70, s.Count(1))
	require.Equal(t, []int{0, 1, 2}, s.Values(0))
}

func TestTrailingBitsAreZero(t *testing.T) {
	// Domain size 70 needs two 64-bit blocks; the second block must not
	// report bits 70..127 as set, even though AddAll sets every machine word.
	infos, total := cartesianset.NewVarInfos([]int{70})
	s := cartesianset.NewTrivial(infos, total)
	for v := 70; v < 128; v++ {
		require.False(t, s.Test(0, v))
	}
}

func TestAddRemoveSingleValue(t *testing.T) {
	infos, total := cartesianset.NewVarInfos([]int{4})
	s := cartesianset.NewTrivial(infos, total)

	s.SetSingleValue(0, 2)
	require.Equal(t, 1, s.Count(0))
	require.True(t, s.Test(0, 2))
	require.False(t, s.Test(0, 0))

	s.Add(0, 3)
	require.Equal(t, 2, s.Count(0))
	s.Remove(0, 2)
	require.Equal(t, []int{3}, s.Values(0))
}

func TestIntersectsAndSuperset(t *testing.T) {
	infos, total := cartesianset.NewVarInfos([]int{4, 4})
	a := cartesianset.NewTrivial(infos, total)
	b := cartesianset.NewTrivial(infos, total)

	b.SetSingleValue(0, 1)
	require.True(t, a.Intersects(b, 0))
	require.True(t, a.IsSupersetOf(b))
	require.False(t, b.IsSupersetOf(a))

	a.SetSingleValue(0, 2)
	require.False(t, a.Intersects(b, 0))
}

func TestSplitDomain(t *testing.T) {
	infos, total := cartesianset.NewVarInfos([]int{5})
	s := cartesianset.NewTrivial(infos, total)

	wanted, other := s.SplitDomain(0, []int{1, 2})
	require.Equal(t, []int{1, 2}, wanted.Values(0))
	require.Equal(t, []int{0, 3, 4}, other.Values(0))
}

func TestSplitDomain_InvalidPanicsInDebug(t *testing.T) {
	cartesianset.Debug = true
	defer func() { cartesianset.Debug = false }()

	infos, total := cartesianset.NewVarInfos([]int{3})
	s := cartesianset.NewTrivial(infos, total)

	require.Panics(t, func() {
		s.SplitDomain(0, []int{0, 1, 2}) // wanted == current values, no complement left
	})
	require.Panics(t, func() {
		s.SplitDomain(0, nil)
	})
}

func TestIntersectsAll(t *testing.T) {
	infos, total := cartesianset.NewVarInfos([]int{3, 3})
	a := cartesianset.NewTrivial(infos, total)
	b := cartesianset.NewTrivial(infos, total)

	require.True(t, a.IntersectsAll(b))

	b.SetSingleValue(0, 0)
	a.SetSingleValue(0, 1)
	require.False(t, a.IntersectsAll(b))
}

func TestEstimateSize(t *testing.T) {
	infos, total := cartesianset.NewVarInfos([]int{2, 3})
	s := cartesianset.NewTrivial(infos, total)
	require.Equal(t, 6.0, s.EstimateSize())
}
