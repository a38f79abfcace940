package numeric

import (
	"errors"
	"fmt"
)

// Domain errors for the lab's numerical routines.
var (
	// ErrInvalidArgument indicates a caller-supplied parameter that no
	// routine can integrate from: non-positive step size, negative step
	// count, or a dimension mismatch between state and derivative.
	ErrInvalidArgument = errors.New("numeric: invalid argument")

	// ErrUnstable indicates the solution left the representable range
	// (NaN or Inf) during stepping.
	ErrUnstable = errors.New("numeric: solution diverged (NaN or Inf)")

	// ErrNoConvergence indicates an iterative routine hit its iteration
	// cap before meeting its tolerance.
	ErrNoConvergence = errors.New("numeric: iteration did not converge")
)

// StepError wraps an error with the step and time at which it occurred.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
