// Package shortestpath computes and incrementally maintains abstract goal
// distances and a shortest-path tree (SPT) over a Cartesian abstraction's
// transition graph.
//
// Distances are kept in Cost64, a 64-bit widening of the task's operator
// costs: if any operator costs zero, every cost is rescaled by 2^32 and
// the zero-cost operators become cost 1, guaranteeing every step strictly
// increases distance while preserving relative ordering. Recompute runs a
// reverse Dijkstra from the goal states; UpdateIncrementally repairs the
// result after one refinement split without rerunning it from scratch.
package shortestpath
