package lab

import (
	"context"
	"fmt"

	"github.com/rbhatt/numlab/internal/numeric"
	"github.com/rbhatt/numlab/internal/solve"
	"github.com/rbhatt/numlab/internal/steppers"
)

type Config struct {
	Problem   string
	Method    string
	InitState []float64
	Dt        float64
	Steps     int
}

// Experiment bundles one configured integration run.
type Experiment struct {
	cfg    Config
	solver *solve.Solver
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(sys numeric.System, method steppers.Method, observers ...solve.Observer) error {
	e.solver = solve.New(sys, method)
	for _, o := range observers {
		e.solver.AddObserver(o)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*numeric.Trajectory, error) {
	if e.solver == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	y0 := make(numeric.State, len(e.cfg.InitState))
	copy(y0, e.cfg.InitState)

	cfg := numeric.Config{
		Dt:            e.cfg.Dt,
		Steps:         e.cfg.Steps,
		ValidateState: true,
	}
	return e.solver.Run(ctx, y0, cfg)
}
