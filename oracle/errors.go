package oracle

import "errors"

// ErrTransitionSetMismatch is returned by CrossCheck when two oracles
// disagree on the transition set for some state: an internal invariant
// violation, never a user-facing condition. MT queries themselves never
// check or return it.
var ErrTransitionSetMismatch = errors.New("oracle: TS and MT transition sets diverge")

// Debug is not read by this package: CrossCheck always runs when called,
// and Abstraction.Refine calls it whenever Abstraction.EnableDebugCrossCheck
// has installed a second oracle.
var Debug = false
