package sastask

import (
	"fmt"
	"sort"
)

// Fact is a single variable/value assignment (var = value).
type Fact struct {
	Var   int
	Value int
}

// Less orders facts by (Var, Value), matching the "sorted preconditions and
// effects" requirement of the grounded task model.
func (f Fact) Less(other Fact) bool {
	if f.Var != other.Var {
		return f.Var < other.Var
	}
	return f.Value < other.Value
}

// Variable is a fixed, finite-domain state variable.
type Variable struct {
	ID         int
	Name       string
	DomainSize int
	FactNames  []string
	AxiomLayer int // -1 for non-axiom variables
}

// Operator is a grounded SAS⁺ action: sorted preconditions, sorted effects,
// and a non-negative cost (math.MaxInt64 represents "forbidden").
type Operator struct {
	ID   int
	Name string
	Pre  []Fact
	Eff  []Fact
	Cost int64
}

// Postconditions returns precondition ∪ effect, with effect values winning
// on conflict, sorted by (Var, Value).
func (op *Operator) Postconditions() []Fact {
	byVar := make(map[int]int, len(op.Pre)+len(op.Eff))
	for _, f := range op.Pre {
		byVar[f.Var] = f.Value
	}
	for _, f := range op.Eff {
		byVar[f.Var] = f.Value
	}
	out := make([]Fact, 0, len(byVar))
	for v, val := range byVar {
		out = append(out, Fact{Var: v, Value: val})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// EffectVarsWithoutPrecondition returns, in ascending order, the variables
// that appear in Eff but have no corresponding fact in Pre.
func (op *Operator) EffectVarsWithoutPrecondition() []int {
	hasPre := make(map[int]bool, len(op.Pre))
	for _, f := range op.Pre {
		hasPre[f.Var] = true
	}
	seen := make(map[int]bool, len(op.Eff))
	var out []int
	for _, f := range op.Eff {
		if !hasPre[f.Var] && !seen[f.Var] {
			seen[f.Var] = true
			out = append(out, f.Var)
		}
	}
	sort.Ints(out)
	return out
}

// Applicable reports whether every precondition of op holds in state.
func (op *Operator) Applicable(state []int) bool {
	for _, f := range op.Pre {
		if state[f.Var] != f.Value {
			return false
		}
	}
	return true
}

// Apply returns the state obtained by applying op's effects to state. The
// input is not mutated.
func (op *Operator) Apply(state []int) []int {
	out := make([]int, len(state))
	copy(out, state)
	for _, f := range op.Eff {
		out[f.Var] = f.Value
	}
	return out
}

// Task is a grounded SAS⁺ planning task.
type Task struct {
	Variables []Variable
	Initial   []int // Initial[var] = value
	Goal      []Fact
	Operators []Operator
	// MutexGroups is round-tripped from the file format but unused by the
	// core CEGAR engine (mutex reasoning belongs to the preprocessor).
	MutexGroups [][]Fact
}

// DomainSizes returns the domain size of every variable, indexed by ID.
func (t *Task) DomainSizes() []int {
	sizes := make([]int, len(t.Variables))
	for i, v := range t.Variables {
		sizes[i] = v.DomainSize
	}
	return sizes
}

// Validate checks structural invariants of the task: every fact in Goal and
// in every operator's Pre/Eff references a declared variable and an
// in-range value, and every operator cost is non-negative.
func (t *Task) Validate() error {
	checkFact := func(f Fact) error {
		if f.Var < 0 || f.Var >= len(t.Variables) {
			return fmt.Errorf("%w: var %d", ErrVariableNotFound, f.Var)
		}
		if f.Value < 0 || f.Value >= t.Variables[f.Var].DomainSize {
			return fmt.Errorf("%w: var %d value %d", ErrValueOutOfRange, f.Var, f.Value)
		}
		return nil
	}
	for _, v := range t.Variables {
		if v.DomainSize <= 0 {
			return fmt.Errorf("%w: var %d", ErrEmptyDomain, v.ID)
		}
	}
	for _, f := range t.Goal {
		if err := checkFact(f); err != nil {
			return err
		}
	}
	for _, op := range t.Operators {
		if op.Cost < 0 {
			return fmt.Errorf("%w: operator %q cost=%d", ErrNegativeCost, op.Name, op.Cost)
		}
		for _, f := range op.Pre {
			if err := checkFact(f); err != nil {
				return err
			}
		}
		for _, f := range op.Eff {
			if err := checkFact(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// GoalHolds reports whether state satisfies every goal fact.
func (t *Task) GoalHolds(state []int) bool {
	for _, f := range t.Goal {
		if state[f.Var] != f.Value {
			return false
		}
	}
	return true
}
