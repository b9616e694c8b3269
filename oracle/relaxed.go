package oracle

import "github.com/goplanner/cartesian/sastask"

type factKey struct{ Var, Value int }

// Relaxed is the delete-relaxation fixpoint computed once from a task's
// initial state: for every reachable fact, the BFS layer it first appears
// in (0 for initial facts), its additive h^add cost under the task's real operator costs, and its
// additive cost under unit operator costs ("steps"). It feeds the
// LayerUp/Down, HaddUp/Down and StepsUp/Down operator-ordering keys and the
// MinHadd/MaxHadd pick-split strategies; it is not a search and never
// produces a relaxed plan.
type Relaxed struct {
	layer     map[factKey]int
	haddReal  map[factKey]int64
	haddUnit  map[factKey]int64
	opLayer   []int
	opHadd    []int64
	opSteps   []int64
}

const unreached = -1

// BuildRelaxed computes the fixpoint for task and caches per-operator
// summaries so OperatorLayer/OperatorHadd/OperatorSteps are O(1) lookups.
func BuildRelaxed(task *sastask.Task) *Relaxed {
	r := &Relaxed{
		layer:    make(map[factKey]int),
		haddReal: make(map[factKey]int64),
		haddUnit: make(map[factKey]int64),
	}
	for v, val := range task.Initial {
		k := factKey{v, val}
		r.layer[k] = 0
		r.haddReal[k] = 0
		r.haddUnit[k] = 0
	}
	changed := true
	for changed {
		changed = false
		for i := range task.Operators {
			op := &task.Operators[i]
			layer, ok1 := r.preLayer(op)
			haddR, ok2 := r.preHadd(op, false)
			haddU, ok3 := r.preHadd(op, true)
			if !ok1 && !ok2 && !ok3 {
				continue
			}
			for _, f := range op.Eff {
				k := factKey{f.Var, f.Value}
				if ok1 {
					if v, seen := r.layer[k]; !seen || layer < v {
						r.layer[k] = layer
						changed = true
					}
				}
				if ok2 {
					factHadd := haddR + op.Cost
					if v, seen := r.haddReal[k]; !seen || factHadd < v {
						r.haddReal[k] = factHadd
						changed = true
					}
				}
				if ok3 {
					factSteps := haddU + 1
					if v, seen := r.haddUnit[k]; !seen || factSteps < v {
						r.haddUnit[k] = factSteps
						changed = true
					}
				}
			}
		}
	}
	r.opLayer = make([]int, len(task.Operators))
	r.opHadd = make([]int64, len(task.Operators))
	r.opSteps = make([]int64, len(task.Operators))
	for i := range task.Operators {
		op := &task.Operators[i]
		if layer, ok := r.preLayer(op); ok {
			r.opLayer[i] = layer
		} else {
			r.opLayer[i] = unreached
		}
		if h, ok := r.preHadd(op, false); ok {
			r.opHadd[i] = h + op.Cost
		} else {
			r.opHadd[i] = unreached
		}
		if h, ok := r.preHadd(op, true); ok {
			r.opSteps[i] = h + 1
		} else {
			r.opSteps[i] = unreached
		}
	}
	return r
}

func (r *Relaxed) preLayer(op *sastask.Operator) (int, bool) {
	best := 0
	for _, f := range op.Pre {
		l, ok := r.layer[factKey{f.Var, f.Value}]
		if !ok {
			return 0, false
		}
		if l > best {
			best = l
		}
	}
	return best + 1, true
}

func (r *Relaxed) preHadd(op *sastask.Operator, unit bool) (int64, bool) {
	table := r.haddReal
	if unit {
		table = r.haddUnit
	}
	var sum int64
	for _, f := range op.Pre {
		h, ok := table[factKey{f.Var, f.Value}]
		if !ok {
			return 0, false
		}
		sum += h
	}
	return sum, true
}

// OperatorLayer returns the relaxed-reachability layer in which op's effects
// first appear: one more than the highest layer among its preconditions (1
// for an operator with no preconditions), or -1 if it is never applicable
// under delete relaxation from the task's initial state.
func (r *Relaxed) OperatorLayer(opID int) int { return r.opLayer[opID] }

// OperatorHadd returns op's additive h^add cost (sum of its preconditions'
// h^add values plus its own cost), or -1 if unreachable.
func (r *Relaxed) OperatorHadd(opID int) int64 { return r.opHadd[opID] }

// OperatorSteps returns op's additive cost under unit operator costs, or -1
// if unreachable.
func (r *Relaxed) OperatorSteps(opID int) int64 { return r.opSteps[opID] }

// FactHadd returns the additive h^add value of var=value, or -1 if
// unreachable under delete relaxation.
func (r *Relaxed) FactHadd(v, value int) int64 {
	if h, ok := r.haddReal[factKey{v, value}]; ok {
		return h
	}
	return unreached
}
