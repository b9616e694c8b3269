package cegar

import (
	"time"

	"github.com/google/uuid"

	"github.com/goplanner/cartesian/abstraction"
	"github.com/goplanner/cartesian/transition"
)

// Result is what one Loop.Run call produces: the abstraction as it stood
// when the loop stopped, a concrete plan when Exit is ExitSolved, and
// bookkeeping about how the run got there.
type Result struct {
	RunID       uuid.UUID
	Abstraction *abstraction.Abstraction
	Plan        transition.Transitions
	Exit        ExitCode
	Iterations  int
	Elapsed     time.Duration
}
