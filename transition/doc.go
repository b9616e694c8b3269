// Package transition defines the shared arc type used by every transition
// oracle (explicit transition system, match tree, successor generator) and
// by the shortest-path service that consumes their output.
//
// A Transition never records a self-loop: an operator whose effect leaves
// an abstract state unchanged produces no arc, matching how self-loops
// carry no information for either Dijkstra or incremental distance repair.
package transition
