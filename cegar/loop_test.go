package cegar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goplanner/cartesian/cegar"
	"github.com/goplanner/cartesian/sastask"
)

func twoStepTask() *sastask.Task {
	return &sastask.Task{
		Variables: []sastask.Variable{
			{ID: 0, Name: "a", DomainSize: 2},
			{ID: 1, Name: "b", DomainSize: 2},
		},
		Initial: []int{0, 0},
		Goal:    []sastask.Fact{{Var: 1, Value: 1}},
		Operators: []sastask.Operator{
			{ID: 0, Name: "set-a", Pre: nil, Eff: []sastask.Fact{{Var: 0, Value: 1}}, Cost: 1},
			{ID: 1, Name: "set-b", Pre: []sastask.Fact{{Var: 0, Value: 1}}, Eff: []sastask.Fact{{Var: 1, Value: 1}}, Cost: 1},
		},
	}
}

func unsolvableTask() *sastask.Task {
	return &sastask.Task{
		Variables: []sastask.Variable{{ID: 0, Name: "v", DomainSize: 2}},
		Initial:   []int{0},
		Goal:      []sastask.Fact{{Var: 0, Value: 1}},
		Operators: nil,
	}
}

func TestRunIncrementalFindsConcretePlan(t *testing.T) {
	loop, err := cegar.New(twoStepTask(), cegar.DefaultOptions(), nil)
	require.NoError(t, err)

	result, err := loop.Run()
	require.NoError(t, err)
	require.Equal(t, cegar.ExitSolved, result.Exit)
	require.NotEmpty(t, result.Plan)

	state := append([]int(nil), twoStepTask().Initial...)
	task := twoStepTask()
	for _, hop := range result.Plan {
		require.True(t, task.Operators[hop.Op].Applicable(state))
		state = task.Operators[hop.Op].Apply(state)
	}
	require.True(t, task.GoalHolds(state))
}

func TestRunAstarFindsConcretePlan(t *testing.T) {
	opts := cegar.DefaultOptions()
	opts.Strategy = cegar.Astar
	loop, err := cegar.New(twoStepTask(), opts, nil)
	require.NoError(t, err)

	result, err := loop.Run()
	require.NoError(t, err)
	require.Equal(t, cegar.ExitSolved, result.Exit)

	task := twoStepTask()
	state := append([]int(nil), task.Initial...)
	for _, hop := range result.Plan {
		require.True(t, task.Operators[hop.Op].Applicable(state))
		state = task.Operators[hop.Op].Apply(state)
	}
	require.True(t, task.GoalHolds(state))
}

func TestRunUnsolvableTask(t *testing.T) {
	loop, err := cegar.New(unsolvableTask(), cegar.DefaultOptions(), nil)
	require.NoError(t, err)

	result, err := loop.Run()
	require.NoError(t, err)
	require.Equal(t, cegar.ExitUnsolvable, result.Exit)
}

func TestRunRespectsMaxStatesBudget(t *testing.T) {
	opts := cegar.DefaultOptions()
	opts.Budgets.MaxStates = 1
	loop, err := cegar.New(twoStepTask(), opts, nil)
	require.NoError(t, err)

	result, err := loop.Run()
	require.NoError(t, err)
	require.Equal(t, cegar.ExitStatesExhausted, result.Exit)
}

func TestRunRespectsMaxTransitionsBudget(t *testing.T) {
	opts := cegar.DefaultOptions()
	opts.Budgets.MaxTransitions = 1
	loop, err := cegar.New(twoStepTask(), opts, nil)
	require.NoError(t, err)

	result, err := loop.Run()
	require.NoError(t, err)
	require.Equal(t, cegar.ExitTransitionsExhausted, result.Exit)
}

func TestRunRespectsMaxTimeBudget(t *testing.T) {
	opts := cegar.DefaultOptions()
	opts.Budgets.MaxTime = 1 * time.Nanosecond
	loop, err := cegar.New(twoStepTask(), opts, nil)
	require.NoError(t, err)

	result, err := loop.Run()
	require.NoError(t, err)
	require.Equal(t, cegar.ExitOutOfTime, result.Exit)
}

func TestRunRespectsReleasedMemoryPadding(t *testing.T) {
	opts := cegar.DefaultOptions()
	opts.Budgets.MemoryPaddingBytes = 1024
	loop, err := cegar.New(twoStepTask(), opts, nil)
	require.NoError(t, err)
	loop.ReleaseMemoryPadding()

	result, err := loop.Run()
	require.NoError(t, err)
	require.Equal(t, cegar.ExitOutOfMemory, result.Exit)
}

func TestNewRejectsInvalidTask(t *testing.T) {
	bad := &sastask.Task{
		Variables: []sastask.Variable{{ID: 0, Name: "v", DomainSize: 2}},
		Initial:   []int{0},
		Goal:      []sastask.Fact{{Var: 5, Value: 0}},
	}
	_, err := cegar.New(bad, cegar.DefaultOptions(), nil)
	require.ErrorIs(t, err, cegar.ErrInputError)
}
