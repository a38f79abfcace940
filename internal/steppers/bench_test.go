package steppers

import (
	"testing"

	"github.com/rbhatt/numlab/internal/numeric"
)

type benchOscillator struct{}

func (b *benchOscillator) Dim() int { return 2 }
func (b *benchOscillator) Derive(t float64, y numeric.State) numeric.State {
	return numeric.State{y[1], -y[0]}
}

func BenchmarkEuler(b *testing.B) {
	m := NewEuler()
	sys := &benchOscillator{}
	y := numeric.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = m.Step(sys, 0, y, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	m := NewRK4()
	sys := &benchOscillator{}
	y := numeric.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = m.Step(sys, 0, y, 0.01)
	}
}

type benchChain struct{}

func (b *benchChain) Dim() int { return 20 }
func (b *benchChain) Derive(t float64, y numeric.State) numeric.State {
	dy := make(numeric.State, 20)
	for i := 0; i < 10; i++ {
		dy[i*2] = y[i*2+1]
		dy[i*2+1] = -y[i*2] * 0.1
	}
	return dy
}

func BenchmarkRK4_Chain10(b *testing.B) {
	m := NewRK4()
	sys := &benchChain{}
	y := make(numeric.State, 20)
	for i := range y {
		y[i] = float64(i) * 0.1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = m.Step(sys, 0, y, 0.001)
	}
}

func BenchmarkIntegrate_RK4(b *testing.B) {
	sys := &benchOscillator{}
	y0 := numeric.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Integrate(sys, y0, 0, 0.01, 100, NewRK4()); err != nil {
			b.Fatal(err)
		}
	}
}
