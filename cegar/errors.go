package cegar

import "errors"

var (
	// ErrInputError wraps a task that failed validation before the loop
	// could start.
	ErrInputError = errors.New("cegar: input task failed validation")

	// ErrInternalInvariantViolation wraps a debug cross-check failure
	// surfaced from the underlying abstraction during refinement.
	ErrInternalInvariantViolation = errors.New("cegar: internal invariant violation")

	// ErrSearchCriticalError wraps an unexpected error from a search
	// strategy or flaw search, distinct from the expected "unsolvable in
	// this abstraction" outcome both report via a bool return instead.
	ErrSearchCriticalError = errors.New("cegar: search strategy failed critically")

	// ErrBadConfig wraps a YAML configuration document that named an
	// unrecognized strategy, or set op_tiebreak to Random (disallowed,
	// since a tiebreak key exists only to make an otherwise-tied primary
	// ordering deterministic).
	ErrBadConfig = errors.New("cegar: invalid configuration")
)
