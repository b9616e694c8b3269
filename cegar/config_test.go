package cegar_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goplanner/cartesian/cegar"
	"github.com/goplanner/cartesian/flawsearch"
	"github.com/goplanner/cartesian/oracle"
)

func TestLoadOptionsParsesDocument(t *testing.T) {
	doc := `
max_states: 5000
max_time: 2.5
pick_split: max_hadd
search_strategy: astar
transition_repr: ts_then_sg
op_order: hadd_up
op_tiebreak: id_up
debug: true
random_seed: 7
`
	opts, err := cegar.LoadOptions(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 5000, opts.Budgets.MaxStates)
	require.Equal(t, 2500*time.Millisecond, opts.Budgets.MaxTime)
	require.Equal(t, flawsearch.MaxHadd, opts.PickSplit)
	require.Equal(t, cegar.Astar, opts.Strategy)
	require.Equal(t, cegar.TSThenSG, opts.Transitions)
	require.Equal(t, oracle.HaddUp, opts.OpOrder)
	require.True(t, opts.Debug)
	require.EqualValues(t, 7, opts.RandomSeed)
}

func TestLoadOptionsRejectsRandomTiebreak(t *testing.T) {
	doc := "op_tiebreak: random\n"
	_, err := cegar.LoadOptions(strings.NewReader(doc))
	require.ErrorIs(t, err, cegar.ErrBadConfig)
}

func TestLoadOptionsRejectsUnknownStrategy(t *testing.T) {
	doc := "search_strategy: quantum\n"
	_, err := cegar.LoadOptions(strings.NewReader(doc))
	require.ErrorIs(t, err, cegar.ErrBadConfig)
}

func TestLoadOptionsOverridesLayerOnTop(t *testing.T) {
	doc := "max_states: 10\n"
	opts, err := cegar.LoadOptions(strings.NewReader(doc), cegar.WithMaxStates(20))
	require.NoError(t, err)
	require.Equal(t, 20, opts.Budgets.MaxStates)
}
