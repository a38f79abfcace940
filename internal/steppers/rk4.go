package steppers

import "github.com/rbhatt/numlab/internal/numeric"

// RK4 is the classical 4th-order Runge-Kutta rule. Stage buffers are
// reused across steps, so an RK4 value must not be shared between
// concurrent runs.
type RK4 struct {
	k1, k2, k3, k4 numeric.State
	scratch        numeric.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(numeric.State, n)
		r.k2 = make(numeric.State, n)
		r.k3 = make(numeric.State, n)
		r.k4 = make(numeric.State, n)
		r.scratch = make(numeric.State, n)
	}
}

func (r *RK4) Step(sys numeric.System, t float64, y numeric.State, h float64) numeric.State {
	n := len(y)
	r.ensureScratch(n)

	k1 := sys.Derive(t, y)
	copy(r.k1, k1)

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + h*0.5*r.k1[i]
	}
	k2 := sys.Derive(t+h*0.5, r.scratch)
	copy(r.k2, k2)

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + h*0.5*r.k2[i]
	}
	k3 := sys.Derive(t+h*0.5, r.scratch)
	copy(r.k3, k3)

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + h*r.k3[i]
	}
	k4 := sys.Derive(t+h, r.scratch)
	copy(r.k4, k4)

	result := make(numeric.State, n)
	h6 := h / 6.0
	for i := 0; i < n; i++ {
		result[i] = y[i] + h6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}
