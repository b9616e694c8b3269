package cartesianset

import "math/bits"

// Set is a Cartesian subset of the joint variable-assignment space: for
// every variable, a bitset subset of its domain. Blocks is the
// concatenation of all per-variable bitsets; VarInfo (shared across every
// Set of one abstraction) says where each variable's run of blocks starts.
type Set struct {
	Infos  []VarInfo
	Blocks []Block
}

// NewTrivial returns the Cartesian set with every bit set in every
// variable: the abstract state space's initial, coarsest abstraction.
func NewTrivial(infos []VarInfo, totalBlocks int) *Set {
	s := &Set{Infos: infos, Blocks: make([]Block, totalBlocks)}
	for var_ := range infos {
		s.AddAll(var_)
	}
	return s
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	blocks := make([]Block, len(s.Blocks))
	copy(blocks, s.Blocks)
	return &Set{Infos: s.Infos, Blocks: blocks}
}

func (s *Set) view(v int) []Block {
	info := s.Infos[v]
	return s.Blocks[info.BlockOffset : info.BlockOffset+info.NumBlocks]
}

// Add puts value into var's subset.
func (s *Set) Add(v, value int) {
	blocks := s.view(v)
	blocks[blockIndex(value)] |= bitMask(value)
}

// Remove takes value out of var's subset.
func (s *Set) Remove(v, value int) {
	blocks := s.view(v)
	blocks[blockIndex(value)] &^= bitMask(value)
}

// SetSingleValue restricts var's subset to exactly {value}.
func (s *Set) SetSingleValue(v, value int) {
	s.RemoveAll(v)
	s.Add(v, value)
}

// AddAll restricts var's subset to its full domain, zeroing any bits beyond
// DomainSize in the last block.
func (s *Set) AddAll(v int) {
	info := s.Infos[v]
	blocks := s.view(v)
	for i := range blocks {
		blocks[i] = ^Block(0)
	}
	if len(blocks) > 0 {
		blocks[len(blocks)-1] &= trailingMask(info.DomainSize)
	}
}

// RemoveAll empties var's subset. The resulting Set violates the
// no-empty-domain invariant until another value is added; callers must
// never leave it this way except transiently inside SetSingleValue.
func (s *Set) RemoveAll(v int) {
	blocks := s.view(v)
	for i := range blocks {
		blocks[i] = 0
	}
}

// Test reports whether value is in var's subset.
func (s *Set) Test(v, value int) bool {
	blocks := s.view(v)
	return blocks[blockIndex(value)]&bitMask(value) != 0
}

// Count returns the number of values in var's subset.
func (s *Set) Count(v int) int {
	n := 0
	for _, b := range s.view(v) {
		n += popcount(b)
	}
	return n
}

// HasFullDomain reports whether var's subset equals its full domain.
func (s *Set) HasFullDomain(v int) bool {
	return s.Count(v) == s.Infos[v].DomainSize
}

// Values returns, in ascending order, the values currently in var's subset.
func (s *Set) Values(v int) []int {
	info := s.Infos[v]
	out := make([]int, 0, info.DomainSize)
	for value := 0; value < info.DomainSize; value++ {
		if s.Test(v, value) {
			out = append(out, value)
		}
	}
	return out
}

// Intersects reports whether s and other share at least one value for var.
func (s *Set) Intersects(other *Set, v int) bool {
	a := s.view(v)
	b := other.view(v)
	for i := range a {
		if a[i]&b[i] != 0 {
			return true
		}
	}
	return false
}

// IntersectsAll reports whether s and other share at least one joint
// assignment: every variable's subsets must intersect simultaneously.
func (s *Set) IntersectsAll(other *Set) bool {
	for v := range s.Infos {
		if !s.Intersects(other, v) {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether, for every variable, s's subset contains
// other's subset.
func (s *Set) IsSupersetOf(other *Set) bool {
	for v := range s.Infos {
		a := s.view(v)
		b := other.view(v)
		for i := range a {
			if b[i]&^a[i] != 0 {
				return false
			}
		}
	}
	return true
}

// SplitDomain partitions var's current subset into a "wanted" side (exactly
// the values in wanted) and an "other" side (the current subset's values
// minus wanted), returning two independent clones of s with var's subset
// replaced accordingly. wanted must be a non-empty proper subset of var's
// current values, and the complement must also be non-empty; violating
// this is a programming error.
func (s *Set) SplitDomain(v int, wanted []int) (wantedSet, otherSet *Set) {
	if Debug {
		if err := s.checkSplit(v, wanted); err != nil {
			panic(err)
		}
	}
	wantedSet = s.Clone()
	otherSet = s.Clone()
	wantedSet.RemoveAll(v)
	for _, val := range wanted {
		wantedSet.Add(v, val)
	}
	for _, val := range wanted {
		otherSet.Remove(v, val)
	}
	return wantedSet, otherSet
}

func (s *Set) checkSplit(v int, wanted []int) error {
	if len(wanted) == 0 {
		return ErrInvalidSplit
	}
	seen := make(map[int]bool, len(wanted))
	for _, val := range wanted {
		if !s.Test(v, val) {
			return ErrInvalidSplit
		}
		seen[val] = true
	}
	if len(seen) >= s.Count(v) {
		// wanted must be a strict subset of the current values so the
		// "other" side keeps at least one value.
		return ErrInvalidSplit
	}
	return nil
}

// EstimateSize returns the product of per-variable counts, a
// floating-point approximation of how many concrete states this Cartesian
// set covers (used only for reporting, not for correctness).
func (s *Set) EstimateSize() float64 {
	size := 1.0
	for v := range s.Infos {
		size *= float64(s.Count(v))
	}
	return size
}

func popcount(b Block) int {
	return bits.OnesCount64(b)
}
