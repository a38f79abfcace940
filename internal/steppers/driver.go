package steppers

import (
	"fmt"

	"github.com/rbhatt/numlab/internal/numeric"
)

// Method is one per-step update rule: advance y from t to t+h.
type Method interface {
	Step(sys numeric.System, t float64, y numeric.State, h float64) numeric.State
	Name() string
}

// Integrate advances sys from (t0, y0) through n fixed steps of size h and
// returns the full trajectory, initial node included. Arguments are
// validated, and the derivative dimension is probed against y0, before any
// step executes; on any failure no partial trajectory is returned.
func Integrate(sys numeric.System, y0 numeric.State, t0, h float64, n int, m Method) (*numeric.Trajectory, error) {
	return drive(sys, y0, t0, h, n, m, true, nil)
}

// IntegrateTo covers the (T, n) parameterization: n steps of size T/n over
// [0, T].
func IntegrateTo(sys numeric.System, y0 numeric.State, T float64, n int, m Method) (*numeric.Trajectory, error) {
	if T <= 0 {
		return nil, fmt.Errorf("%w: total time must be positive, got %g", numeric.ErrInvalidArgument, T)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one step, got %d", numeric.ErrInvalidArgument, n)
	}
	return drive(sys, y0, 0, T/float64(n), n, m, true, nil)
}

// EulerFromTwoPoints integrates with explicit Euler over [0, T] when the
// caller already knows the solution at the second node: the trajectory
// starts with the given (0, y0) and (h, y1) pair and Euler stepping takes
// over from node 1.
func EulerFromTwoPoints(sys numeric.System, y0, y1 numeric.State, T float64, n int) (*numeric.Trajectory, error) {
	if T <= 0 {
		return nil, fmt.Errorf("%w: total time must be positive, got %g", numeric.ErrInvalidArgument, T)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one step, got %d", numeric.ErrInvalidArgument, n)
	}
	if len(y0) != len(y1) {
		return nil, fmt.Errorf("%w: node dimensions disagree (%d vs %d)", numeric.ErrInvalidArgument, len(y0), len(y1))
	}
	h := T / float64(n)
	if err := validate(sys, y0, h, n); err != nil {
		return nil, err
	}
	if probe := sys.Derive(0, y0); len(probe) != len(y0) {
		return nil, fmt.Errorf("%w: derivative has dimension %d, state has %d", numeric.ErrInvalidArgument, len(probe), len(y0))
	}

	tr := numeric.NewTrajectory(n + 1)
	tr.Append(0, y0)
	tr.Append(h, y1)

	m := NewEuler()
	y := y1.Clone()
	for k := 1; k < n; k++ {
		t := float64(k) * h
		y = m.Step(sys, t, y, h)
		if !y.IsValid() {
			return nil, &numeric.StepError{Step: k, Time: t + h, Err: numeric.ErrUnstable}
		}
		tr.Append(float64(k+1)*h, y)
	}
	return tr, nil
}

// IntegrateWithCallback runs the same driver as Integrate but invokes fn
// with each node before stepping from it; a non-nil return from fn aborts
// the run with that error. checkState toggles the per-step NaN/Inf scan.
func IntegrateWithCallback(sys numeric.System, y0 numeric.State, t0, h float64, n int, m Method, checkState bool, fn func(step int, t float64, y numeric.State) error) (*numeric.Trajectory, error) {
	return drive(sys, y0, t0, h, n, m, checkState, fn)
}

func validate(sys numeric.System, y0 numeric.State, h float64, n int) error {
	if h <= 0 {
		return fmt.Errorf("%w: step size must be positive, got %g", numeric.ErrInvalidArgument, h)
	}
	if n < 0 {
		return fmt.Errorf("%w: step count must be non-negative, got %d", numeric.ErrInvalidArgument, n)
	}
	if sys.Dim() != len(y0) {
		return fmt.Errorf("%w: initial state has dimension %d, system expects %d", numeric.ErrInvalidArgument, len(y0), sys.Dim())
	}
	return nil
}

// drive is the single stepping loop shared by every entry point. fn, when
// non-nil, runs before each step and may abort the run.
func drive(sys numeric.System, y0 numeric.State, t0, h float64, n int, m Method, checkState bool, fn func(step int, t float64, y numeric.State) error) (*numeric.Trajectory, error) {
	if err := validate(sys, y0, h, n); err != nil {
		return nil, err
	}

	// The derivative is pure, so one probe evaluation catches dimension
	// mismatches before the first step runs.
	probe := sys.Derive(t0, y0)
	if len(probe) != len(y0) {
		return nil, fmt.Errorf("%w: derivative has dimension %d, state has %d", numeric.ErrInvalidArgument, len(probe), len(y0))
	}

	tr := numeric.NewTrajectory(n + 1)
	tr.Append(t0, y0)

	y := y0.Clone()
	for k := 0; k < n; k++ {
		t := t0 + float64(k)*h
		if fn != nil {
			if err := fn(k, t, y); err != nil {
				return nil, err
			}
		}
		y = m.Step(sys, t, y, h)
		tNext := t0 + float64(k+1)*h
		if checkState && !y.IsValid() {
			return nil, &numeric.StepError{Step: k, Time: tNext, Err: numeric.ErrUnstable}
		}
		tr.Append(tNext, y)
	}

	return tr, nil
}
