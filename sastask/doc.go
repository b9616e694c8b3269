// Package sastask defines the grounded SAS⁺ planning task model consumed by
// the Cartesian CEGAR engine: variables with finite domains, operators with
// sorted preconditions/effects and non-negative costs, an initial state, and
// a partial-assignment goal.
//
// The package also implements the line-oriented preprocessed SAS⁺ file
// format described in the engine's external-interface contract: a reader
// (ParseSAS) that is compatibility-critical on the version number, the
// literal begin_X/end_X delimiters, and zero-based variable/value indices.
// Parsing the file format is the only input-handling responsibility this
// package takes on; the variable-ordering preprocessing pipeline that
// produces such files is an external collaborator and out of scope here.
//
// Axioms and conditional effects are rejected outright: the CEGAR engine
// requires a pure STRIPS-with-costs task and fails fast, collecting every
// violation found during a single parse pass rather than stopping at the
// first one.
package sastask
