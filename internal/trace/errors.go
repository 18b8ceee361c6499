package trace

import (
	"errors"
	"fmt"
)

// Structural violations reported by [Trace.Validate].
var (
	// ErrEmptyTrace indicates a trace with no steps.
	ErrEmptyTrace = errors.New("trace: empty trace")

	// ErrDirtyFirstStep indicates the first step carries highlighted indices.
	ErrDirtyFirstStep = errors.New("trace: first step has active or eliminated indices")

	// ErrLengthMismatch indicates a step whose array length differs from the input.
	ErrLengthMismatch = errors.New("trace: step array length mismatch")

	// ErrIndexOutOfRange indicates an active or eliminated index outside the array.
	ErrIndexOutOfRange = errors.New("trace: index out of range")

	// ErrEliminatedShrank indicates an eliminated index was un-marked.
	ErrEliminatedShrank = errors.New("trace: eliminated set shrank")
)

// StepError wraps a validation failure with the offending step.
type StepError struct {
	Step    int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
