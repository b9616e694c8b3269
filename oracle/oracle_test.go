package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goplanner/cartesian/cartesianset"
	"github.com/goplanner/cartesian/oracle"
	"github.com/goplanner/cartesian/refhierarchy"
	"github.com/goplanner/cartesian/sastask"
	"github.com/goplanner/cartesian/transition"
)

// regionMap is a minimal RegionLookup backed by a map, standing in for an
// Abstraction in tests that exercise the oracle package in isolation.
type regionMap map[int]*cartesianset.Set

func (m regionMap) Region(state int) *cartesianset.Set { return m[state] }
func (m regionMap) NumStates() int                      { return len(m) }

func sampleTask() *sastask.Task {
	return &sastask.Task{
		Variables: []sastask.Variable{{ID: 0, DomainSize: 3}, {ID: 1, DomainSize: 2}},
		Initial:   []int{0, 0},
		Goal:      []sastask.Fact{{Var: 0, Value: 2}},
		Operators: []sastask.Operator{
			{ID: 0, Name: "op0", Pre: []sastask.Fact{{Var: 0, Value: 0}}, Eff: []sastask.Fact{{Var: 0, Value: 1}}, Cost: 1},
			{ID: 1, Name: "op1", Pre: []sastask.Fact{{Var: 0, Value: 1}}, Eff: []sastask.Fact{{Var: 0, Value: 2}}, Cost: 1},
			{ID: 2, Name: "op2", Pre: []sastask.Fact{{Var: 1, Value: 0}}, Eff: []sastask.Fact{{Var: 1, Value: 1}}, Cost: 1},
		},
	}
}

// splitOnGoal builds the trivial abstraction, splits off the goal value of
// var 0, and returns a TS and an MT oracle over the resulting two states
// (0 = "other", 1 = "goal"), plus the regions backing them.
func splitOnGoal(t *testing.T, task *sastask.Task, order oracle.Ordering) (*oracle.TS, *oracle.MT, regionMap) {
	t.Helper()
	infos, total := cartesianset.NewVarInfos(task.DomainSizes())
	trivial := cartesianset.NewTrivial(infos, total)
	h := refhierarchy.New(0, trivial)

	wanted, other := trivial.SplitDomain(0, []int{2})
	h.Split(0, 0, []int{2}, other, wanted, 0, 1)

	ts := oracle.NewTS(task, trivial, order)
	regions := regionMap{0: other, 1: wanted}
	ts.Split(0, 0, 1, 0, other, wanted, regions)

	mt := oracle.NewMT(h, task, order)
	return ts, mt, regions
}

func TestTSAndMTAgreeAfterGoalSplit(t *testing.T) {
	task := sampleTask()
	order := oracle.Ordering{Primary: oracle.IDUp, Secondary: oracle.IDUp}
	ts, mt, _ := splitOnGoal(t, task, order)

	require.Equal(t, transition.Transitions{{Op: 1, Target: 1}}, ts.Outgoing(0))
	require.Empty(t, ts.Outgoing(1))
	require.Empty(t, ts.Incoming(0))
	require.Equal(t, transition.Transitions{{Op: 1, Target: 0}}, ts.Incoming(1))

	require.NoError(t, oracle.CrossCheck(ts, mt, 2))
}

func TestSGAgreesWithTS(t *testing.T) {
	task := sampleTask()
	order := oracle.Ordering{Primary: oracle.IDUp, Secondary: oracle.IDUp}
	ts, _, regions := splitOnGoal(t, task, order)

	sg := oracle.NewSG(task, regions, order)
	require.NoError(t, oracle.CrossCheck(ts, sg, 2))
}

func TestOrderingSortsByCostThenID(t *testing.T) {
	task := sampleTask()
	order := oracle.Ordering{Primary: oracle.CostUp, Secondary: oracle.IDUp, Seed: 1}
	ids := []int{2, 1, 0}
	order.Sort(ids, task)
	require.Equal(t, []int{0, 1, 2}, ids)
}

func TestRelaxedReachesGoalFact(t *testing.T) {
	task := sampleTask()
	r := oracle.BuildRelaxed(task)
	require.Equal(t, int64(2), r.FactHadd(0, 2))
	require.Equal(t, int64(2), r.OperatorHadd(1))
	require.Equal(t, 2, r.OperatorLayer(1))
}
