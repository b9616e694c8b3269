package abstraction

import "errors"

// ErrDebugCrossCheck is wrapped by the error Refine returns when a debug
// cross-check, run after the split, finds the active and debug oracles
// disagree: an internal invariant violation. The oracle's mismatch message
// is appended as text, not wrapped.
var ErrDebugCrossCheck = errors.New("abstraction: debug oracle cross-check failed after split")
