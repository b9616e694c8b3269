package sastask_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goplanner/cartesian/sastask"
)

const singletonSAS = `begin_version
3
end_version
begin_metric
0
end_metric
1
begin_variable
var0
-1
2
Atom at(v0, 0)
Atom at(v0, 1)
end_variable
0
begin_state
0
end_state
begin_goal
1
0 1
end_goal
1
begin_operator
move
0
1
0 0 0 1
1
end_operator
0
`

func TestParseSAS_Singleton(t *testing.T) {
	task, err := sastask.ParseSAS(strings.NewReader(singletonSAS))
	require.NoError(t, err)
	require.Len(t, task.Variables, 1)
	require.Equal(t, 2, task.Variables[0].DomainSize)
	require.Equal(t, []int{0}, task.Initial)
	require.Equal(t, []sastask.Fact{{Var: 0, Value: 1}}, task.Goal)
	require.Len(t, task.Operators, 1)
	require.Equal(t, int64(1), task.Operators[0].Cost)
	require.Equal(t, []sastask.Fact{{Var: 0, Value: 0}}, task.Operators[0].Pre)
	require.Equal(t, []sastask.Fact{{Var: 0, Value: 1}}, task.Operators[0].Eff)
}

func TestParseSAS_BadVersion(t *testing.T) {
	bad := strings.Replace(singletonSAS, "3\nend_version", "99\nend_version", 1)
	_, err := sastask.ParseSAS(strings.NewReader(bad))
	require.ErrorIs(t, err, sastask.ErrBadVersion)
}

func TestParseSAS_ConditionalEffectRejected(t *testing.T) {
	withCond := strings.Replace(singletonSAS, "0 0 0 1", "1 0 0 0 0 1", 1)
	_, err := sastask.ParseSAS(strings.NewReader(withCond))
	require.ErrorIs(t, err, sastask.ErrConditionalEffectsUnsupported)
}

func TestParseSAS_AxiomsRejected(t *testing.T) {
	withAxiom := strings.Replace(singletonSAS, "end_operator\n0\n", "end_operator\n1\nbegin_rule\nend_rule\n", 1)
	_, err := sastask.ParseSAS(strings.NewReader(withAxiom))
	require.ErrorIs(t, err, sastask.ErrAxiomsUnsupported)
}

func TestOperator_PostconditionsAndEffectVars(t *testing.T) {
	op := &sastask.Operator{
		Pre: []sastask.Fact{{Var: 0, Value: 0}},
		Eff: []sastask.Fact{{Var: 0, Value: 1}, {Var: 1, Value: 2}},
	}
	post := op.Postconditions()
	require.Equal(t, []sastask.Fact{{Var: 0, Value: 1}, {Var: 1, Value: 2}}, post)
	require.Equal(t, []int{1}, op.EffectVarsWithoutPrecondition())
}
