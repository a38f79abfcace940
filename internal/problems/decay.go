package problems

import (
	"fmt"
	"math"

	"github.com/rbhatt/numlab/internal/numeric"
)

// Decay is the scalar test equation dy/dt = -lambda*y.
type Decay struct {
	Lambda float64
}

func NewDecay() *Decay {
	return &Decay{Lambda: 1.0}
}

func (d *Decay) Dim() int { return 1 }

func (d *Decay) Derive(t float64, y numeric.State) numeric.State {
	return numeric.State{-d.Lambda * y[0]}
}

func (d *Decay) Exact(t float64, y0 numeric.State) numeric.State {
	return numeric.State{y0[0] * math.Exp(-d.Lambda*t)}
}

func (d *Decay) GetParams() map[string]float64 {
	return map[string]float64{"lambda": d.Lambda}
}

func (d *Decay) SetParam(name string, value float64) error {
	switch name {
	case "lambda":
		d.Lambda = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
