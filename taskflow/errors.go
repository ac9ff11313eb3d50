package taskflow // import "github.com/orkestr8/taskgraph/taskflow"

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch documents the slot/producer mismatch that, in the
// original design, is only caught by wiring a producer of the wrong type
// into a parent slot. Here that check is pushed to the compiler: SetParentN
// takes a Producer[AN], so a mismatched producer simply fails to compile.
// No code path returns this error; it is named for parity with the
// original taxonomy.
var ErrTypeMismatch = errors.New("taskflow: producer result type does not match parent slot type")

var (
	// ErrFanOutViolation is returned by SetParentN/After-style wiring
	// calls when a move-only parent already has one value-carrying child.
	ErrFanOutViolation = errors.New("taskflow: move-only result already has a value-carrying child")

	// ErrOutputConflict is returned when a move-only node is wired to a
	// value-carrying child after having been marked as an output, or
	// vice versa — the two are mutually exclusive for a move-only result.
	ErrOutputConflict = errors.New("taskflow: move-only node cannot be both an output and wired to a value-carrying child")

	// ErrNoResult is returned by Collect when a node's result was handed
	// off to a child (move-only, single consumer) rather than retained.
	ErrNoResult = errors.New("taskflow: node did not retain a result to collect")

	// ErrCycleDetected is returned by Execute when the wired graph
	// contains a cycle.
	ErrCycleDetected = errors.New("taskflow: graph has a cycle")

	// ErrAlreadyExecuted is returned by Execute when called a second time
	// without an intervening Reset.
	ErrAlreadyExecuted = errors.New("taskflow: Execute called again without an intervening Reset")
)

// PanicError wraps a value recovered from a task callback's panic. Task
// panics no longer escape into the pool's goroutines; they are converted
// into a failed Result carrying a *PanicError, and the first one observed
// by the executor is also returned from Execute.
type PanicError struct {
	Recovered interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("taskflow: task panicked: %v", e.Recovered)
}
