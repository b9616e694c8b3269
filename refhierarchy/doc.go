// Package refhierarchy implements the refinement hierarchy of a Cartesian
// abstraction: a DAG recording every split performed so far, with inner
// nodes for splits and leaf nodes for the abstraction's current abstract
// states.
//
// A split on "wanted values" {v1, ..., vk} installs a chain of k inner
// nodes that all share the same right child (the "wanted" leaf) and link
// through their left children to the next helper node or to the final
// "other" leaf. A lookup answers "does var take one of these k values?" by
// walking the chain one helper node per wanted value until it meets the
// state's value (and jumps to the wanted leaf) or reaches the "other" leaf,
// so it inspects up to k values. The chain is the one place the hierarchy
// is a DAG rather than a tree: multiple helper nodes point at the same
// right child.
//
// Nodes live in an arena (a slice indexed by NodeID) for the lifetime of
// the abstraction; there is no reference counting and nothing is ever
// removed from the arena, matching how the abstraction itself never
// destroys abstract states, only splits them.
package refhierarchy
