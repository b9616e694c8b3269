package shortestpath

import "errors"

// ErrUnsolvableInAbstraction is returned by ExtractSolution when the
// initial state's goal distance is Infinite: no abstract plan exists.
var ErrUnsolvableInAbstraction = errors.New("shortestpath: no path to a goal in this abstraction")
