package transition_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goplanner/cartesian/transition"
)

func TestIsDefined(t *testing.T) {
	require.True(t, transition.Transition{Op: 0, Target: 3}.IsDefined())
	require.False(t, transition.Transition{Op: -1}.IsDefined())
}

func TestTransitionsSortByOpThenTarget(t *testing.T) {
	ts := transition.Transitions{
		{Op: 2, Target: 0},
		{Op: 0, Target: 5},
		{Op: 0, Target: 1},
	}
	sort.Sort(ts)
	require.Equal(t, transition.Transitions{
		{Op: 0, Target: 1},
		{Op: 0, Target: 5},
		{Op: 2, Target: 0},
	}, ts)
}
