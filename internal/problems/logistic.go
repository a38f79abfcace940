package problems

import (
	"fmt"
	"math"

	"github.com/rbhatt/numlab/internal/numeric"
)

// Logistic is bounded growth dy/dt = r*y*(1 - y/K).
type Logistic struct {
	R float64
	K float64
}

func NewLogistic() *Logistic {
	return &Logistic{R: 1.0, K: 10.0}
}

func (l *Logistic) Dim() int { return 1 }

func (l *Logistic) Derive(t float64, y numeric.State) numeric.State {
	return numeric.State{l.R * y[0] * (1 - y[0]/l.K)}
}

func (l *Logistic) Exact(t float64, y0 numeric.State) numeric.State {
	e := math.Exp(l.R * t)
	return numeric.State{l.K * y0[0] * e / (l.K + y0[0]*(e-1))}
}

func (l *Logistic) GetParams() map[string]float64 {
	return map[string]float64{"r": l.R, "k": l.K}
}

func (l *Logistic) SetParam(name string, value float64) error {
	switch name {
	case "r":
		l.R = value
	case "k":
		l.K = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
