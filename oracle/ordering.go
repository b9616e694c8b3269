package oracle

import (
	"math/rand"
	"sort"

	"github.com/goplanner/cartesian/sastask"
)

// OrderKey names one field an operator list can be sorted by. Up sorts
// ascending, Down sorts descending; Random and Fixed treat every pair of
// operators as equal, so the order they leave is the seeded shuffle each
// sort call applies first. Fixed keeps no separate per-operator permutation
// and behaves exactly like Random.
type OrderKey int

const (
	Random OrderKey = iota
	IDUp
	IDDown
	CostUp
	CostDown
	PostconditionsUp
	PostconditionsDown
	LayerUp
	LayerDown
	HaddUp
	HaddDown
	StepsUp
	StepsDown
	Fixed
)

// Ordering picks a two-level sort key for operator lists: every list is
// first shuffled by Seed (so ties break uniformly across runs with
// different seeds but identically within one run), then stably sorted by
// Primary and, on ties, Secondary.
type Ordering struct {
	Primary, Secondary OrderKey
	Seed               int64
	Relaxed            *Relaxed // required when Primary/Secondary reference Layer/Hadd/Steps
}

// Sort reorders ops (a slice of operator IDs) in place according to o.
func (o Ordering) Sort(ops []int, task *sastask.Task) {
	rnd := rand.New(rand.NewSource(o.Seed))
	rnd.Shuffle(len(ops), func(i, j int) { ops[i], ops[j] = ops[j], ops[i] })
	if o.Primary == Random && o.Secondary == Random {
		return
	}
	sort.SliceStable(ops, func(i, j int) bool {
		if cmp := o.compare(ops[i], ops[j], task, o.Primary); cmp != 0 {
			return cmp < 0
		}
		return o.compare(ops[i], ops[j], task, o.Secondary) < 0
	})
}

func (o Ordering) compare(a, b int, task *sastask.Task, key OrderKey) int {
	switch key {
	case IDUp:
		return a - b
	case IDDown:
		return b - a
	case CostUp:
		return int(task.Operators[a].Cost - task.Operators[b].Cost)
	case CostDown:
		return int(task.Operators[b].Cost - task.Operators[a].Cost)
	case PostconditionsUp:
		return len(task.Operators[a].Postconditions()) - len(task.Operators[b].Postconditions())
	case PostconditionsDown:
		return len(task.Operators[b].Postconditions()) - len(task.Operators[a].Postconditions())
	case LayerUp:
		return o.Relaxed.OperatorLayer(a) - o.Relaxed.OperatorLayer(b)
	case LayerDown:
		return o.Relaxed.OperatorLayer(b) - o.Relaxed.OperatorLayer(a)
	case HaddUp:
		return int(o.Relaxed.OperatorHadd(a) - o.Relaxed.OperatorHadd(b))
	case HaddDown:
		return int(o.Relaxed.OperatorHadd(b) - o.Relaxed.OperatorHadd(a))
	case StepsUp:
		return int(o.Relaxed.OperatorSteps(a) - o.Relaxed.OperatorSteps(b))
	case StepsDown:
		return int(o.Relaxed.OperatorSteps(b) - o.Relaxed.OperatorSteps(a))
	default: // Random, Fixed: already handled by the shuffle above
		return 0
	}
}
