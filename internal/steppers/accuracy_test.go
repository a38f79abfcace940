package steppers

import (
	"math"
	"testing"

	"github.com/rbhatt/numlab/internal/numeric"
	"github.com/rbhatt/numlab/internal/problems"
)

func TestEuler_DecayTextbookValue(t *testing.T) {
	// dy/dt = -y, y0 = 1, h = 0.1, 10 steps: Euler compounds to (1-h)^n.
	tr, err := Integrate(problems.NewDecay(), numeric.State{1}, 0, 0.1, 10, NewEuler())
	if err != nil {
		t.Fatal(err)
	}

	_, final := tr.Final()
	want := math.Pow(0.9, 10) // 0.34867844...
	if math.Abs(final[0]-want) > 1e-12 {
		t.Errorf("Euler endpoint %.12f, want %.12f", final[0], want)
	}
}

func TestRK4_DecayMatchesExponential(t *testing.T) {
	tr, err := Integrate(problems.NewDecay(), numeric.State{1}, 0, 0.1, 10, NewRK4())
	if err != nil {
		t.Fatal(err)
	}

	_, final := tr.Final()
	want := math.Exp(-1)
	if math.Abs(final[0]-want) > 1e-5 {
		t.Errorf("RK4 endpoint %.8f, want %.8f within 1e-5", final[0], want)
	}
}

func TestRK4_OscillatorAccuracy(t *testing.T) {
	osc := problems.NewOscillator()
	y0 := numeric.State{1, 0}
	dt := 0.01
	steps := 100

	tr, err := Integrate(osc, y0, 0, dt, steps, NewRK4())
	if err != nil {
		t.Fatal(err)
	}

	tFinal, final := tr.Final()
	exact := osc.Exact(tFinal, y0)

	if math.Abs(final[0]-exact[0]) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", final[0], exact[0])
	}
	if math.Abs(final[1]-exact[1]) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", final[1], exact[1])
	}
}

func TestRK4_EnergyDrift(t *testing.T) {
	osc := problems.NewOscillator()
	y0 := numeric.State{1, 0}
	initial := osc.Energy(y0)

	tr, err := Integrate(osc, y0, 0, 0.01, 10000, NewRK4())
	if err != nil {
		t.Fatal(err)
	}

	_, final := tr.Final()
	drift := math.Abs(osc.Energy(final)-initial) / initial
	if drift > 1e-6 {
		t.Errorf("RK4 energy drift too high: %e", drift)
	}
}

func TestMethods_ShiftedSqrtEndpoint(t *testing.T) {
	sys := problems.NewShiftedSqrt()
	y0 := numeric.State{1}
	T := 5.0
	exact := sys.Exact(T, y0)

	tests := []struct {
		name string
		m    Method
		n    int
		tol  float64
	}{
		{"euler coarse", NewEuler(), 10, 0.06},
		{"euler fine", NewEuler(), 1000, 1e-3},
		{"rk4 coarse", NewRK4(), 10, 1e-5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := IntegrateTo(sys, y0, T, tt.n, tt.m)
			if err != nil {
				t.Fatal(err)
			}
			_, final := tr.Final()
			if got := math.Abs(final[0] - exact[0]); got > tt.tol {
				t.Errorf("endpoint error %e exceeds %e", got, tt.tol)
			}
		})
	}
}
