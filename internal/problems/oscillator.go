package problems

import (
	"fmt"
	"math"

	"github.com/rbhatt/numlab/internal/numeric"
)

// Oscillator is the undamped harmonic oscillator x'' = -omega^2 x, written
// as the 2-D first-order system over state {x, v}.
type Oscillator struct {
	Omega float64
}

func NewOscillator() *Oscillator {
	return &Oscillator{Omega: 1.0}
}

func (o *Oscillator) Dim() int { return 2 }

func (o *Oscillator) Derive(t float64, y numeric.State) numeric.State {
	return numeric.State{y[1], -o.Omega * o.Omega * y[0]}
}

func (o *Oscillator) Exact(t float64, y0 numeric.State) numeric.State {
	wt := o.Omega * t
	c, s := math.Cos(wt), math.Sin(wt)
	x := y0[0]*c + y0[1]/o.Omega*s
	v := -y0[0]*o.Omega*s + y0[1]*c
	return numeric.State{x, v}
}

func (o *Oscillator) Energy(y numeric.State) float64 {
	return 0.5 * (o.Omega*o.Omega*y[0]*y[0] + y[1]*y[1])
}

func (o *Oscillator) GetParams() map[string]float64 {
	return map[string]float64{"omega": o.Omega}
}

func (o *Oscillator) SetParam(name string, value float64) error {
	switch name {
	case "omega":
		o.Omega = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
