// Package flawsearch traces an abstract plan through the concrete state
// space and, at the first point it breaks, proposes a Split the CEGAR loop
// can apply to rule that counterexample out.
//
// Three kinds of flaw can end a trace: an applicability flaw (the plan's
// next operator is not applicable in the concrete state the abstract plan
// promised it would be), a path-deviation flaw (the operator applies, but
// its concrete result falls outside the abstract plan's next state), and a
// goal flaw (the plan's end state is not a concrete goal). If none of these
// trigger, the plan is concretely executable and GetSplit returns nil.
//
// PickSplit chooses among several candidate split variables when a flaw's
// desired region disagrees with the concrete state on more than one
// variable. PickFlaw names a strategy for choosing among several
// simultaneously available flaws; since the refinement loop hands
// FlawSearch exactly one extracted abstract plan per iteration, every trace
// has at most one flaw to find, so all PickFlaw variants currently observe
// the same flaw: the first (and only) one the single trace produces. The
// field is kept and threaded through Config so the external pick_flaw
// configuration knob is honored, and so a future caller that hands
// FlawSearch several tied-optimal plans at once has a place to plug in real
// batch selection.
package flawsearch
