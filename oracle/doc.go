// Package oracle answers "what abstract transitions lead into or out of
// this state" for one Cartesian abstraction, in one of three interchangeable
// representations:
//
//   - TS maintains explicit incoming/outgoing transition lists per state and
//     rewires them in place when a state splits.
//   - MT (match tree) keeps no operator lists on hierarchy nodes: every
//     query tests each of the task's operators against the queried state's
//     region and enumerates target or source leaves lazily via
//     Hierarchy.ForEachLeaf.
//   - SG (successor generator) keeps no index at all: every query re-scans
//     the task's operators.
//
// All three must agree on the transition set a query returns; CrossCheck
// compares two oracles state by state and returns ErrTransitionSetMismatch
// on the first divergence rather than panicking.
package oracle
