package numeric

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// System is a first-order ODE system dy/dt = f(t, y). Derive must be pure:
// no retained state, no side effects, output dimension equal to Dim.
type System interface {
	Derive(t float64, y State) State
	Dim() int
}

// Func adapts a plain derivative function to the System interface.
type Func struct {
	Fn  func(t float64, y State) State
	Len int
}

func (f Func) Derive(t float64, y State) State { return f.Fn(t, y) }
func (f Func) Dim() int                        { return f.Len }

type Config struct {
	Dt            float64
	Steps         int
	Duration      float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Steps:         1000,
		ValidateState: true,
	}
}
