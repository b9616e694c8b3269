package refhierarchy

// NodeID indexes a node in a Hierarchy's arena. Node 0 is always the root.
type NodeID = int32

// Undefined marks a node field that does not apply: Var/Value on a leaf,
// or StateID on a split node.
const Undefined = -1

// Matcher expresses, for one variable, how ForEachLeaf should test a
// candidate child's region against a query's region: Unaffected and
// SingleValue both require the two regions to intersect on that variable;
// FullDomain always matches (the query's region already covers the whole
// domain there, so testing it is wasted work).
type Matcher int

const (
	Unaffected Matcher = iota
	FullDomain
	SingleValue
)

// node is either a leaf (StateID valid, Var/Value/Left/Right undefined) or
// a split/helper node (Var/Value/Left/Right valid, StateID undefined).
//
// Right always points at the node carrying the "wanted" side of a split;
// Left may point at another helper node (multi-value split chains) or at
// the "other" side's leaf.
type node struct {
	Var, Value  int
	Left, Right NodeID
	StateID     int
}

func (n *node) isSplit() bool { return n.StateID == Undefined }

// Siblings names the two children reached from a split node for a given
// concrete value: CorrectChild is the one that value would actually follow,
// OtherChild is the sibling.
type Siblings struct {
	CorrectChild NodeID
	OtherChild   NodeID
}

// Family names a split node together with the two children reached while
// walking toward a particular abstract state.
type Family struct {
	Parent       NodeID
	CorrectChild NodeID
	OtherChild   NodeID
}

// StateQuery is the minimal view of an abstract state the hierarchy needs
// to walk from the root to that state's leaf: its own leaf NodeID, and
// whether its Cartesian set contains a given (var, value) fact. Abstraction
// states satisfy this interface without refhierarchy importing their
// concrete type.
type StateQuery interface {
	LeafNode() NodeID
	Contains(var_, value int) bool
}
