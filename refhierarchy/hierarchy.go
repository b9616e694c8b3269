package refhierarchy

import "github.com/goplanner/cartesian/cartesianset"

// Hierarchy is the refinement DAG of one Cartesian abstraction. Nodes live
// in an arena; NodeID 0 is always the root, created by New.
type Hierarchy struct {
	nodes   []node
	regions []*cartesianset.Set // regions[id] mirrors the Cartesian set associated with each node, leaf or split
	leaves  map[int]NodeID       // stateID -> its leaf NodeID, for oracles that index by state
}

// New creates a hierarchy whose sole node is a leaf carrying initialStateID
// and region (normally the trivial, all-domains-full Cartesian set).
func New(initialStateID int, region *cartesianset.Set) *Hierarchy {
	h := &Hierarchy{leaves: make(map[int]NodeID)}
	h.addLeaf(initialStateID, region)
	return h
}

func (h *Hierarchy) addLeaf(stateID int, region *cartesianset.Set) NodeID {
	id := NodeID(len(h.nodes))
	h.nodes = append(h.nodes, node{StateID: stateID})
	h.regions = append(h.regions, region)
	h.leaves[stateID] = id
	return id
}

// LeafForState returns the NodeID of the leaf currently carrying stateID.
func (h *Hierarchy) LeafForState(stateID int) NodeID {
	return h.leaves[stateID]
}

func (h *Hierarchy) reserve() NodeID {
	id := NodeID(len(h.nodes))
	h.nodes = append(h.nodes, node{})
	h.regions = append(h.regions, nil)
	return id
}

// Split installs a chain of helper nodes at nodeID for a split on var into
// "wanted" values (the right/correct side, becoming rightStateID with
// region rightRegion) versus everything else (the left/other side, becoming
// leftStateID with region leftRegion). nodeID must currently be a leaf.
//
// It returns the NodeIDs of the two new leaves.
func (h *Hierarchy) Split(nodeID NodeID, var_ int, wanted []int, leftRegion, rightRegion *cartesianset.Set, leftStateID, rightStateID int) (leftLeaf, rightLeaf NodeID) {
	oldRegion := h.regions[nodeID]
	rightLeaf = h.addLeaf(rightStateID, rightRegion)
	leftLeaf = h.addLeaf(leftStateID, leftRegion)

	ids := make([]NodeID, len(wanted))
	ids[0] = nodeID
	for i := 1; i < len(wanted); i++ {
		ids[i] = h.reserve()
	}
	for i, val := range wanted {
		var left NodeID
		if i == len(wanted)-1 {
			left = leftLeaf
		} else {
			left = ids[i+1]
		}
		h.nodes[ids[i]] = node{Var: var_, Value: val, Left: left, Right: rightLeaf, StateID: Undefined}
		// Every helper node in the chain conservatively carries the
		// pre-split region: precise enough for ForEachLeaf's pruning,
		// since the exact per-step region only differs on var.
		h.regions[ids[i]] = oldRegion
	}
	return leftLeaf, rightLeaf
}

// StateIDOfLeaf returns the StateID carried by a leaf node.
func (h *Hierarchy) StateIDOfLeaf(id NodeID) int {
	return h.nodes[id].StateID
}

// GetAbstractStateID follows children from the root according to state's
// value for each split's variable, and returns the leaf's StateID.
func (h *Hierarchy) GetAbstractStateID(state []int) int {
	id := NodeID(0)
	for h.nodes[id].isSplit() {
		n := &h.nodes[id]
		if state[n.Var] == n.Value {
			id = n.Right
		} else {
			id = n.Left
		}
	}
	return h.nodes[id].StateID
}

// ForEachVisitedNode walks from the root to state's own leaf, invoking
// callback on every node visited (including the root and the leaf itself).
func (h *Hierarchy) ForEachVisitedNode(state StateQuery, callback func(NodeID)) {
	target := state.LeafNode()
	id := NodeID(0)
	for {
		callback(id)
		if id == target {
			return
		}
		n := &h.nodes[id]
		if state.Contains(n.Var, n.Value) {
			id = n.Right
		} else {
			id = n.Left
		}
	}
}

// ForEachVisitedFamily walks from the root to state's own leaf, invoking
// callback with each split node's Family: the correct child (the one
// state's own path takes) and the other child (its sibling), so callers
// can rewrite data cached on both sides of each split along the way.
func (h *Hierarchy) ForEachVisitedFamily(state StateQuery, callback func(Family)) {
	id := NodeID(0)
	for h.nodes[id].isSplit() {
		n := &h.nodes[id]
		var correct, other NodeID
		if state.Contains(n.Var, n.Value) {
			correct, other = n.Right, n.Left
		} else {
			correct, other = n.Left, n.Right
		}
		callback(Family{Parent: id, CorrectChild: correct, OtherChild: other})
		id = correct
	}
}

// ForEachLeaf enumerates every leaf whose region intersects query,
// respecting matcher: for a split node's variable, matcher[var]==FullDomain
// always matches (no pruning on that variable); otherwise the node is
// descended into only if its region intersects query on that variable.
// A leaf shared by several helper nodes of one split chain is reported once.
func (h *Hierarchy) ForEachLeaf(query *cartesianset.Set, matcher []Matcher, callback func(NodeID)) {
	seen := make(map[NodeID]bool)
	h.forEachLeaf(0, query, matcher, func(id NodeID) {
		if !seen[id] {
			seen[id] = true
			callback(id)
		}
	})
}

func (h *Hierarchy) forEachLeaf(id NodeID, query *cartesianset.Set, matcher []Matcher, callback func(NodeID)) {
	n := &h.nodes[id]
	if !n.isSplit() {
		callback(id)
		return
	}
	if matcher[n.Var] == FullDomain || query.Intersects(h.regions[n.Left], n.Var) {
		h.forEachLeaf(n.Left, query, matcher, callback)
	}
	if matcher[n.Var] == FullDomain || query.Intersects(h.regions[n.Right], n.Var) {
		h.forEachLeaf(n.Right, query, matcher, callback)
	}
}

// Region returns the Cartesian set cached for a node (leaf or split).
func (h *Hierarchy) Region(id NodeID) *cartesianset.Set {
	return h.regions[id]
}

// IsSplit reports whether id names a split (or helper) node rather than a leaf.
func (h *Hierarchy) IsSplit(id NodeID) bool {
	return h.nodes[id].isSplit()
}

// NumNodes returns the current size of the node arena.
func (h *Hierarchy) NumNodes() int {
	return len(h.nodes)
}
