package abstraction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goplanner/cartesian/abstraction"
	"github.com/goplanner/cartesian/oracle"
	"github.com/goplanner/cartesian/sastask"
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

func TestNewTrivialAbstractionIsInitialAndGoal(t *testing.T) {
	task := singletonTask()
	a := abstraction.New(task)
	a.InitOracle(abstraction.ModeTS, oracle.Ordering{Primary: oracle.IDUp, Secondary: oracle.IDUp})

	require.Equal(t, 1, a.NumStates())
	require.Equal(t, 0, a.InitialStateID())
	require.True(t, a.GoalStateIDs()[0])
}

func TestRefineKeepsInitialIDStable(t *testing.T) {
	task := singletonTask()
	a := abstraction.New(task)
	a.InitOracle(abstraction.ModeTS, oracle.Ordering{Primary: oracle.IDUp, Secondary: oracle.IDUp})

	// Split off the goal fact v=1: the concrete initial state has v=0, so
	// it falls on the "other" side, which must keep state ID 0.
	v1, v2, err := a.Refine(0, 0, []int{1})
	require.NoError(t, err)
	require.Equal(t, 2, a.NumStates())
	require.Equal(t, 0, v1)
	require.Equal(t, 1, v2)
	require.Equal(t, 0, a.InitialStateID())

	require.False(t, a.GoalStateIDs()[v1])
	require.True(t, a.GoalStateIDs()[v2])
}

func TestRefineRelocatesInitialIDWhenInitialFallsOnWantedSide(t *testing.T) {
	task := singletonTask()
	task.Initial = []int{1} // initial concrete state already satisfies v=1
	a := abstraction.New(task)
	a.InitOracle(abstraction.ModeTS, oracle.Ordering{Primary: oracle.IDUp, Secondary: oracle.IDUp})

	v1, v2, err := a.Refine(0, 0, []int{1})
	require.NoError(t, err)
	// The initial concrete state's value (1) is in the wanted set, so the
	// wanted side keeps the reused ID (v1), and InitialStateID must still
	// resolve to it.
	require.Equal(t, 0, v1)
	require.Equal(t, a.InitialStateID(), v1)
	_ = v2
}

func TestInitOracleMTAgreesWithTS(t *testing.T) {
	task := singletonTask()
	ts := abstraction.New(task)
	ts.InitOracle(abstraction.ModeTS, oracle.Ordering{Primary: oracle.IDUp, Secondary: oracle.IDUp})
	mt := abstraction.New(task)
	mt.InitOracle(abstraction.ModeMT, oracle.Ordering{Primary: oracle.IDUp, Secondary: oracle.IDUp})

	_, _, err := ts.Refine(0, 0, []int{1})
	require.NoError(t, err)
	_, _, err = mt.Refine(0, 0, []int{1})
	require.NoError(t, err)

	require.NoError(t, oracle.CrossCheck(ts.Oracle(), mt.Oracle(), ts.NumStates()))
}
