// Package cegar drives the counterexample-guided refinement loop that turns
// a trivial, single-state Cartesian abstraction into either an exact
// concrete plan or a heuristic abstraction, whichever budget runs out
// first.
//
// Loop owns one abstraction.Abstraction plus whichever shortest-path
// machinery its search strategy needs: a full shortestpath.ShortestPaths,
// incrementally repaired after every split, or a single-shot AstarSearch
// that re-runs A* each iteration and propagates parent heuristic estimates
// down to newly split children. Both strategies terminate on the same
// three conditions: a concrete plan is found, the abstraction is proven
// unsolvable, or a configured budget (state count, transition count, wall
// time, or memory padding) is exhausted first.
package cegar
