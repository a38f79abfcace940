package problems

import (
	"fmt"
	"math"

	"github.com/rbhatt/numlab/internal/numeric"
)

// ShiftedSqrt is dy/dt = 1/(1+y), whose solution is a shifted square root:
// y(t) = -1 + sqrt((1+y0)^2 + 2t). Valid for y > -1.
type ShiftedSqrt struct{}

func NewShiftedSqrt() *ShiftedSqrt {
	return &ShiftedSqrt{}
}

func (s *ShiftedSqrt) Dim() int { return 1 }

func (s *ShiftedSqrt) Derive(t float64, y numeric.State) numeric.State {
	return numeric.State{1 / (1 + y[0])}
}

func (s *ShiftedSqrt) Exact(t float64, y0 numeric.State) numeric.State {
	c := 1 + y0[0]
	return numeric.State{-1 + math.Sqrt(c*c+2*t)}
}

func (s *ShiftedSqrt) GetParams() map[string]float64 {
	return map[string]float64{}
}

func (s *ShiftedSqrt) SetParam(name string, value float64) error {
	return fmt.Errorf("unknown param: %s", name)
}
