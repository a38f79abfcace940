// Package roots approximates square roots with a truncated Taylor
// expansion and an error-based stopping rule.
//
// Each iteration rewrites sqrt(a) as x*sqrt(1 + dx/x^2) with dx = a - x^2
// and replaces the square root by the first Terms+1 terms of the binomial
// series, so the accuracy per iteration is set by how many terms are kept
// and how far the current estimate is from the root.
package roots

import (
	"fmt"
	"math"

	"github.com/rbhatt/numlab/internal/numeric"
)

const defaultMaxIter = 1000

// TaylorSqrt approximates square roots iteratively. Terms is the highest
// retained order of the expansion; iteration stops when |x^2 - a| <= Tol.
type TaylorSqrt struct {
	Terms   int
	Tol     float64
	MaxIter int
}

func NewTaylorSqrt(terms int, tol float64) *TaylorSqrt {
	return &TaylorSqrt{
		Terms:   terms,
		Tol:     tol,
		MaxIter: defaultMaxIter,
	}
}

// Approx computes sqrt(a) from the initial guess x0, returning the
// estimate and the number of iterations taken.
func (s *TaylorSqrt) Approx(a, x0 float64) (float64, int, error) {
	if a <= 0 {
		return 0, 0, fmt.Errorf("%w: operand must be positive, got %g", numeric.ErrInvalidArgument, a)
	}
	if x0 == 0 {
		return 0, 0, fmt.Errorf("%w: initial guess must be non-zero", numeric.ErrInvalidArgument)
	}
	if s.Terms < 0 {
		return 0, 0, fmt.Errorf("%w: term count must be non-negative, got %d", numeric.ErrInvalidArgument, s.Terms)
	}
	if s.Tol <= 0 {
		return 0, 0, fmt.Errorf("%w: tolerance must be positive, got %g", numeric.ErrInvalidArgument, s.Tol)
	}

	maxIter := s.MaxIter
	if maxIter <= 0 {
		maxIter = defaultMaxIter
	}

	x := x0
	iters := 0
	for math.Abs(x*x-a) > s.Tol {
		if iters >= maxIter {
			return x, iters, fmt.Errorf("%w: |x^2-a|=%g after %d iterations", numeric.ErrNoConvergence, math.Abs(x*x-a), iters)
		}
		dx := a - x*x
		sum := 0.0
		for k := 0; k <= s.Terms; k++ {
			sum += taylorTerm(k, dx, x)
		}
		x *= sum
		iters++
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return x, iters, fmt.Errorf("%w: expansion diverged", numeric.ErrNoConvergence)
		}
	}
	return x, iters, nil
}

// taylorTerm is term k of the binomial series for sqrt(1+u) at u = dx/x^2:
// (-1)^k * C(2k,k) / ((1-2k) * 4^k) * u^k.
func taylorTerm(k int, dx, x float64) float64 {
	if k == 0 {
		return 1
	}
	sign := 1.0
	if k%2 == 1 {
		sign = -1.0
	}
	coeff := sign / (float64(1-2*k) * math.Pow(4, float64(k)))
	return coeff * binomial(2*k, k) * math.Pow(dx/(x*x), float64(k))
}

// binomial computes C(n, k) in floating point via the multiplicative form.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 1; i <= k; i++ {
		result *= float64(n-k+i) / float64(i)
	}
	return result
}

// RelativeError compares an approximation of sqrt(a) against math.Sqrt.
func RelativeError(approx, a float64) float64 {
	exact := math.Sqrt(a)
	if exact == 0 {
		return 0
	}
	return math.Abs(approx-exact) / exact
}
