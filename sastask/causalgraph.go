package sastask

// CausalGraphLevels computes a topological level for every variable in the
// task's causal graph: an edge var -> var2 exists whenever some operator's
// precondition mentions var and its effect mentions var2 (var influences
// var2), or whenever one operator's effect mentions both (co-occurring
// effects, oriented arbitrarily by variable ID to break the cycle the same
// way every run). The level of a variable is the length of the longest
// path ending at it; variables with no incoming edges are level 0.
//
// Co-occurring effects only add edges from a lower-ID variable to a
// higher-ID one, so they alone never form a cycle. Precondition-to-effect
// edges can still form cycles; propagation is capped at one pass per
// variable, so variables on or downstream of such a cycle end with levels
// that reflect that cap rather than a longest path.
func CausalGraphLevels(t *Task) []int {
	n := len(t.Variables)
	successors := make([]map[int]bool, n)
	for i := range successors {
		successors[i] = make(map[int]bool)
	}
	addEdge := func(from, to int) {
		if from != to {
			successors[from][to] = true
		}
	}
	for i := range t.Operators {
		op := &t.Operators[i]
		for _, pre := range op.Pre {
			for _, eff := range op.Eff {
				addEdge(pre.Var, eff.Var)
			}
		}
		for _, a := range op.Eff {
			for _, b := range op.Eff {
				if a.Var < b.Var {
					addEdge(a.Var, b.Var)
				}
			}
		}
	}

	levels := make([]int, n)
	for pass := 0; pass < n; pass++ {
		changed := false
		for from := 0; from < n; from++ {
			for to := range successors[from] {
				if levels[to] < levels[from]+1 {
					levels[to] = levels[from] + 1
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return levels
}
