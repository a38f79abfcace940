package solve

import (
	"context"
	"fmt"

	"github.com/rbhatt/numlab/internal/numeric"
	"github.com/rbhatt/numlab/internal/steppers"
)

// Observer receives every node of a run as it is produced.
type Observer interface {
	OnStep(t float64, y numeric.State)
}

// Solver drives one system with one method and fans nodes out to
// observers. Not safe for concurrent use; see Ensemble.
type Solver struct {
	sys       numeric.System
	method    steppers.Method
	observers []Observer
}

func New(sys numeric.System, method steppers.Method) *Solver {
	return &Solver{
		sys:       sys,
		method:    method,
		observers: make([]Observer, 0),
	}
}

func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run integrates from y0 per cfg. Steps wins when both Steps and Duration
// are set; Duration alone means Steps = Duration/Dt.
func (s *Solver) Run(ctx context.Context, y0 numeric.State, cfg numeric.Config) (*numeric.Trajectory, error) {
	steps := cfg.Steps
	if steps == 0 && cfg.Duration > 0 {
		if cfg.Dt <= 0 {
			return nil, fmt.Errorf("%w: dt must be positive, got %g", numeric.ErrInvalidArgument, cfg.Dt)
		}
		steps = int(cfg.Duration / cfg.Dt)
	}

	tr, err := steppers.IntegrateWithCallback(s.sys, y0, 0, cfg.Dt, steps, s.method, cfg.ValidateState,
		func(step int, t float64, y numeric.State) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			for _, o := range s.observers {
				o.OnStep(t, y)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	t, y := tr.Final()
	for _, o := range s.observers {
		o.OnStep(t, y)
	}
	return tr, nil
}
