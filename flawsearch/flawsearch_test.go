package flawsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goplanner/cartesian/abstraction"
	"github.com/goplanner/cartesian/flawsearch"
	"github.com/goplanner/cartesian/oracle"
	"github.com/goplanner/cartesian/sastask"
	"github.com/goplanner/cartesian/transition"
)

func singletonTask() *sastask.Task {
	return &sastask.Task{
		Variables: []sastask.Variable{{ID: 0, Name: "v", DomainSize: 2}},
		Initial:   []int{0},
		Goal:      []sastask.Fact{{Var: 0, Value: 1}},
		Operators: []sastask.Operator{
			{ID: 0, Name: "op", Pre: []sastask.Fact{{Var: 0, Value: 0}}, Eff: []sastask.Fact{{Var: 0, Value: 1}}, Cost: 1},
		},
	}
}

func TestGetSplitOnTrivialAbstractionYieldsGoalFlaw(t *testing.T) {
	task := singletonTask()
	abs := abstraction.New(task)
	abs.InitOracle(abstraction.ModeTS, oracle.Ordering{Primary: oracle.IDUp, Secondary: oracle.IDUp})

	fs := flawsearch.New(abs, nil, nil, flawsearch.Config{})
	split, err := fs.GetSplit(nil)
	require.NoError(t, err)
	require.NotNil(t, split)
	require.Equal(t, flawsearch.Goal, split.Kind)
	require.Equal(t, 0, split.Var)
	require.Equal(t, []int{1}, split.Wanted)
	require.Equal(t, 0, split.StateID)
}

func TestGetSplitExecutablePlanReturnsNil(t *testing.T) {
	task := singletonTask()
	abs := abstraction.New(task)
	abs.InitOracle(abstraction.ModeTS, oracle.Ordering{Primary: oracle.IDUp, Secondary: oracle.IDUp})

	_, _, err := abs.Refine(0, 0, []int{1})
	require.NoError(t, err)

	fs := flawsearch.New(abs, nil, nil, flawsearch.Config{})
	split, err := fs.GetSplit(transition.Transitions{{Op: 0, Target: 1}})
	require.NoError(t, err)
	require.Nil(t, split)
}

func TestGetSplitApplicabilityFlaw(t *testing.T) {
	task := &sastask.Task{
		Variables: []sastask.Variable{
			{ID: 0, Name: "a", DomainSize: 2},
			{ID: 1, Name: "b", DomainSize: 2},
		},
		Initial: []int{0, 0},
		Goal:    []sastask.Fact{{Var: 1, Value: 1}},
		Operators: []sastask.Operator{
			{ID: 0, Name: "needs-a1", Pre: []sastask.Fact{{Var: 0, Value: 1}}, Eff: []sastask.Fact{{Var: 1, Value: 1}}, Cost: 1},
		},
	}
	abs := abstraction.New(task)
	abs.InitOracle(abstraction.ModeTS, oracle.Ordering{Primary: oracle.IDUp, Secondary: oracle.IDUp})

	// The trivial state's region covers var 0's full domain, so op 0 is
	// "applicable" abstractly; tracing it concretely must fail since the
	// concrete initial state has a=0, not a=1.
	fs := flawsearch.New(abs, nil, nil, flawsearch.Config{})
	split, err := fs.GetSplit(transition.Transitions{{Op: 0, Target: 0}})
	require.NoError(t, err)
	require.NotNil(t, split)
	require.Equal(t, flawsearch.Applicability, split.Kind)
	require.Equal(t, 0, split.Var)
	require.Equal(t, []int{1}, split.Wanted)
}
