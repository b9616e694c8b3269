package oracle

import (
	"github.com/goplanner/cartesian/cartesianset"
	"github.com/goplanner/cartesian/sastask"
)

// Regress returns the Cartesian set a predecessor must satisfy for op to
// land some successor inside target: every precondition variable is forced
// to its precondition value, every variable op's effects touch without a
// precondition is opened to its full domain (op overwrites it regardless of
// what held before), and every other variable keeps target's own values
// (op leaves it untouched, so it must already have held whatever target
// requires). Exported for flawsearch's path-deviation flaw, which needs
// exactly this predecessor region to decide where a traced abstract plan's
// concrete execution diverges from it.
func Regress(target *cartesianset.Set, op *sastask.Operator) *cartesianset.Set {
	query, _ := preImageQuery(target, op)
	return query
}
