package oracle

import (
	"github.com/goplanner/cartesian/cartesianset"
	"github.com/goplanner/cartesian/refhierarchy"
	"github.com/goplanner/cartesian/sastask"
)

// applicable reports whether op could apply to some concrete state inside
// region: every precondition value must be present in region's subset for
// that variable.
func applicable(region *cartesianset.Set, op *sastask.Operator) bool {
	for _, f := range op.Pre {
		if !region.Test(f.Var, f.Value) {
			return false
		}
	}
	return true
}

// postImage returns the Cartesian set reached by applying op's effects to
// every concrete state in region: for every variable op mentions (as
// precondition, effect, or both), the image is restricted to that
// variable's postcondition value; every other variable is untouched.
func postImage(region *cartesianset.Set, op *sastask.Operator) *cartesianset.Set {
	img := region.Clone()
	for _, f := range op.Postconditions() {
		img.SetSingleValue(f.Var, f.Value)
	}
	return img
}

// isSelfLoop reports whether op's post-image from region is a subset of
// region itself, the defining condition for excluding a transition from
// the oracle-facing stream. Every variable op does not mention is
// untouched by definition; a variable it forces to a value stays inside
// region only if region already contained that value.
func isSelfLoop(region *cartesianset.Set, op *sastask.Operator) bool {
	for _, f := range op.Postconditions() {
		if !region.Test(f.Var, f.Value) {
			return false
		}
	}
	return true
}

// matcherFor builds the per-variable Matcher for_each_leaf needs to find the
// leaves reachable by op's post-image from region: SingleValue where op
// forces var to one value, otherwise FullDomain where region already covers
// var's whole domain (no point testing intersection), Unaffected otherwise.
func matcherFor(region *cartesianset.Set, op *sastask.Operator) []refhierarchy.Matcher {
	forced := make(map[int]bool, len(op.Pre)+len(op.Eff))
	for _, f := range op.Postconditions() {
		forced[f.Var] = true
	}
	m := make([]refhierarchy.Matcher, len(region.Infos))
	for v := range region.Infos {
		switch {
		case forced[v]:
			m[v] = refhierarchy.SingleValue
		case region.HasFullDomain(v):
			m[v] = refhierarchy.FullDomain
		default:
			m[v] = refhierarchy.Unaffected
		}
	}
	return m
}

// effectReachable reports whether op's forced effect values are all
// present in region, a necessary condition for region to be reachable as
// op's post-image from anywhere, since every effect variable lands on a
// single, fixed value regardless of the predecessor.
func effectReachable(region *cartesianset.Set, op *sastask.Operator) bool {
	for _, f := range op.Eff {
		if !region.Test(f.Var, f.Value) {
			return false
		}
	}
	return true
}

// preImageQuery builds the query region and matcher used to find the
// predecessor leaves of op leading into targetRegion: precondition
// variables are pinned to their precondition value (a predecessor must
// have held it), effect-without-precondition variables are opened to their
// full domain (a predecessor could have held anything there), and every
// other variable keeps targetRegion's own value (op leaves it untouched).
func preImageQuery(targetRegion *cartesianset.Set, op *sastask.Operator) (*cartesianset.Set, []refhierarchy.Matcher) {
	query := targetRegion.Clone()
	effectOnly := make(map[int]bool, len(op.Eff))
	for _, v := range op.EffectVarsWithoutPrecondition() {
		effectOnly[v] = true
	}
	for _, f := range op.Pre {
		query.SetSingleValue(f.Var, f.Value)
	}
	for v := range effectOnly {
		query.AddAll(v)
	}
	matcher := make([]refhierarchy.Matcher, len(query.Infos))
	for v := range query.Infos {
		switch {
		case effectOnly[v], query.HasFullDomain(v):
			matcher[v] = refhierarchy.FullDomain
		default:
			matcher[v] = refhierarchy.SingleValue
		}
	}
	return query, matcher
}
