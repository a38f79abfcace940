package solve

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rbhatt/numlab/internal/numeric"
	"github.com/rbhatt/numlab/internal/problems"
	"github.com/rbhatt/numlab/internal/steppers"
)

type countingObserver struct {
	calls int
	lastT float64
}

func (c *countingObserver) OnStep(t float64, y numeric.State) {
	c.calls++
	c.lastT = t
}

func TestSolver_ObserversSeeEveryNode(t *testing.T) {
	s := New(problems.NewDecay(), steppers.NewRK4())
	obs := &countingObserver{}
	s.AddObserver(obs)

	cfg := numeric.Config{Dt: 0.1, Steps: 5}
	tr, err := s.Run(context.Background(), numeric.State{1}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if tr.Len() != 6 {
		t.Errorf("trajectory length %d, want 6", tr.Len())
	}
	if obs.calls != 6 {
		t.Errorf("observer called %d times, want 6", obs.calls)
	}
	if math.Abs(obs.lastT-0.5) > 1e-12 {
		t.Errorf("last observed time %v, want 0.5", obs.lastT)
	}
}

func TestSolver_DurationSetsSteps(t *testing.T) {
	s := New(problems.NewDecay(), steppers.NewEuler())

	cfg := numeric.Config{Dt: 0.1, Duration: 1.0}
	tr, err := s.Run(context.Background(), numeric.State{1}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 11 {
		t.Errorf("trajectory length %d, want 11", tr.Len())
	}
}

func TestSolver_ContextCancel(t *testing.T) {
	s := New(problems.NewDecay(), steppers.NewEuler())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr, err := s.Run(ctx, numeric.State{1}, numeric.Config{Dt: 0.01, Steps: 1000})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if tr != nil {
		t.Error("expected no trajectory after cancellation")
	}
}

func TestSolver_ValidateStateGatesStabilityCheck(t *testing.T) {
	blowup := numeric.Func{
		Fn:  func(tm float64, y numeric.State) numeric.State { return numeric.State{math.NaN()} },
		Len: 1,
	}

	s := New(blowup, steppers.NewEuler())
	cfg := numeric.Config{Dt: 0.1, Steps: 5, ValidateState: true}
	if _, err := s.Run(context.Background(), numeric.State{1}, cfg); !errors.Is(err, numeric.ErrUnstable) {
		t.Errorf("with validation on, expected ErrUnstable, got %v", err)
	}

	cfg.ValidateState = false
	tr, err := s.Run(context.Background(), numeric.State{1}, cfg)
	if err != nil {
		t.Fatalf("with validation off, expected no error, got %v", err)
	}
	if tr.Len() != 6 {
		t.Errorf("trajectory length %d, want 6", tr.Len())
	}
}

func TestEnsemble_IndependentRuns(t *testing.T) {
	osc := problems.NewOscillator()
	e := NewEnsemble(osc, func() steppers.Method { return steppers.NewRK4() })

	inits := []numeric.State{
		{1, 0},
		{0, 1},
		{2, -1},
	}
	cfg := numeric.Config{Dt: 0.01, Steps: 100}

	results, err := e.Run(context.Background(), inits, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	for i, tr := range results {
		if tr.Len() != 101 {
			t.Errorf("run %d: trajectory length %d, want 101", i, tr.Len())
		}
		tFinal, final := tr.Final()
		exact := osc.Exact(tFinal, inits[i])
		if final.Sub(exact).Norm() > 1e-6 {
			t.Errorf("run %d: endpoint %v too far from exact %v", i, final, exact)
		}
	}
}

func TestEnsemble_PropagatesErrors(t *testing.T) {
	e := NewEnsemble(problems.NewDecay(), func() steppers.Method { return steppers.NewEuler() })

	inits := []numeric.State{{1}, {1, 2}} // second state has the wrong dimension
	_, err := e.Run(context.Background(), inits, numeric.Config{Dt: 0.1, Steps: 10})
	if !errors.Is(err, numeric.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
