package workload

import (
	"errors"
	"fmt"
)

// ErrDivergence indicates the array and the reference model disagree.
var ErrDivergence = errors.New("array diverged from model")

// DivergenceError describes the first disagreement found during a run.
type DivergenceError struct {
	// Step is the zero-based operation number, or -1 for a full contents comparison.
	Step int
	// Op is the operation that exposed the divergence.
	Op Op
	// Index is the element index involved, if any.
	Index int
	// Detail describes what differed.
	Detail string
}

// Error implements the error interface.
func (e *DivergenceError) Error() string {
	if e.Step < 0 {
		return fmt.Sprintf("contents check: %s", e.Detail)
	}
	return fmt.Sprintf("step %d: %s at index %d: %s", e.Step, e.Op, e.Index, e.Detail)
}

// Unwrap returns ErrDivergence so callers can match with errors.Is.
func (e *DivergenceError) Unwrap() error {
	return ErrDivergence
}
