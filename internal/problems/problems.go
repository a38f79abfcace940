package problems

import "github.com/rbhatt/numlab/internal/numeric"

// Analytic is a system with a known closed-form solution from a given
// initial condition at t = 0.
type Analytic interface {
	numeric.System
	Exact(t float64, y0 numeric.State) numeric.State
}

// Configurable mirrors the runtime parameter surface of the problems.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
