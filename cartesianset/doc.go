// Package cartesianset implements the per-variable bitset representation of
// a Cartesian abstract state: for each SAS⁺ variable, a subset of its
// domain, with every variable's bitset concatenated into one contiguous
// block array.
//
// Variable metadata (domain size, block offset, block count) is shared and
// immutable for the lifetime of one abstraction; build it once with
// NewVarInfos and hand it to NewTrivial. Every Set holds a reference to that
// shared slice (Infos) next to its concatenated []uint64 block array, so Set
// operations take no metadata argument; there is no per-variable
// allocation.
//
// Invariants enforced by this package: no variable's bitset is ever empty
// (an empty bitset would make the set unsatisfiable, and callers must never
// produce one via SplitDomain); trailing bits beyond a variable's domain
// size are always zero; the trivial set (every bit set in every variable)
// is what NewTrivial returns.
package cartesianset
