// Package poly generates Legendre polynomials by the Bonnet recurrence.
package poly

import (
	"fmt"

	"github.com/rbhatt/numlab/internal/numeric"
)

// Legendre evaluates P_0..P_p at every point of xs, one row per degree,
// using n*P_n(x) = (2n-1)*x*P_{n-1}(x) - (n-1)*P_{n-2}(x).
func Legendre(xs []float64, p int) ([][]float64, error) {
	if p < 0 {
		return nil, fmt.Errorf("%w: degree must be non-negative, got %d", numeric.ErrInvalidArgument, p)
	}

	rows := make([][]float64, p+1)
	for n := range rows {
		rows[n] = make([]float64, len(xs))
	}

	for i := range xs {
		rows[0][i] = 1
	}
	if p >= 1 {
		copy(rows[1], xs)
	}
	for n := 2; n <= p; n++ {
		for i, x := range xs {
			rows[n][i] = (float64(2*n-1)*x*rows[n-1][i] - float64(n-1)*rows[n-2][i]) / float64(n)
		}
	}
	return rows, nil
}

// Linspace returns n evenly spaced points over [lo, hi], endpoints
// included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
