package cartesianset

import "errors"

// ErrInvalidSplit indicates a SplitDomain precondition was violated: wanted
// must be a proper, non-empty subset of the variable's current values, and
// the current values must not already equal wanted.
var ErrInvalidSplit = errors.New("cartesianset: invalid split: wanted must be a proper subset of the current domain")

// Debug gates SplitDomain's precondition check, which panics with
// ErrInvalidSplit on violation. Trailing bits are not checked; AddAll masks
// them unconditionally. Production builds should leave it false.
var Debug = false
