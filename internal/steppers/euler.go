package steppers

import "github.com/rbhatt/numlab/internal/numeric"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(sys numeric.System, t float64, y numeric.State, h float64) numeric.State {
	dy := sys.Derive(t, y)
	result := make(numeric.State, len(y))
	for i := range y {
		result[i] = y[i] + h*dy[i]
	}
	return result
}
