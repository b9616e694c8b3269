package sastask

import "errors"

// Sentinel errors for task construction and SAS⁺ parsing.
var (
	// ErrEmptyDomain indicates a variable was declared with a non-positive domain size.
	ErrEmptyDomain = errors.New("sastask: variable domain size must be positive")

	// ErrVariableNotFound indicates a fact or operator referenced an unknown variable.
	ErrVariableNotFound = errors.New("sastask: variable not found")

	// ErrValueOutOfRange indicates a fact value fell outside its variable's domain.
	ErrValueOutOfRange = errors.New("sastask: value out of range for variable domain")

	// ErrNegativeCost indicates an operator was given a negative cost.
	ErrNegativeCost = errors.New("sastask: operator cost must be non-negative")

	// ErrBadVersion indicates the SAS⁺ stream's version number does not match
	// the version this reader understands.
	ErrBadVersion = errors.New("sastask: unsupported SAS+ file version")

	// ErrBadMagic indicates a begin_X/end_X delimiter did not match what was expected.
	ErrBadMagic = errors.New("sastask: malformed SAS+ stream: unexpected token")

	// ErrAxiomsUnsupported indicates the stream declared one or more axioms,
	// which the core CEGAR engine cannot represent.
	ErrAxiomsUnsupported = errors.New("sastask: axioms are not supported")

	// ErrConditionalEffectsUnsupported indicates an operator effect carried
	// one or more effect conditions, which the core CEGAR engine cannot represent.
	ErrConditionalEffectsUnsupported = errors.New("sastask: conditional effects are not supported")

	// ErrTruncatedStream indicates the stream ended before a block was closed.
	ErrTruncatedStream = errors.New("sastask: truncated SAS+ stream")
)
