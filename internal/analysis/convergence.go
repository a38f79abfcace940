// Package analysis measures how the steppers behave as the step size
// shrinks.
package analysis

import (
	"math"

	"github.com/rbhatt/numlab/internal/numeric"
	"github.com/rbhatt/numlab/internal/steppers"
)

// Level is one row of a convergence study: steps and step size over the
// same interval, the endpoint error against the exact solution, and the
// error ratio to the previous (coarser) level.
type Level struct {
	Steps int
	H     float64
	Err   float64
	Ratio float64
}

// Convergence integrates sys over [0, T] at successive h-halvings
// (n0, 2*n0, 4*n0, ...) and records the endpoint error against exact.
// For a method of order p the ratio column approaches 2^p.
func Convergence(sys numeric.System, exact func(t float64) numeric.State, y0 numeric.State, T float64, n0, levels int, factory func() steppers.Method) ([]Level, error) {
	out := make([]Level, 0, levels)
	target := exact(T)

	n := n0
	for i := 0; i < levels; i++ {
		tr, err := steppers.IntegrateTo(sys, y0, T, n, factory())
		if err != nil {
			return nil, err
		}
		_, final := tr.Final()
		lv := Level{
			Steps: n,
			H:     T / float64(n),
			Err:   final.Sub(target).Norm(),
		}
		if i > 0 && lv.Err > 0 {
			lv.Ratio = out[i-1].Err / lv.Err
		}
		out = append(out, lv)
		n *= 2
	}
	return out, nil
}

// ObservedOrder estimates the convergence order from the error ratios,
// averaging log2 of the ratios across levels.
func ObservedOrder(levels []Level) float64 {
	sum := 0.0
	count := 0
	for _, lv := range levels {
		if lv.Ratio > 0 {
			sum += math.Log2(lv.Ratio)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
