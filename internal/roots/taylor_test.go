package roots_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rbhatt/numlab/internal/numeric"
	"github.com/rbhatt/numlab/internal/roots"
)

var _ = Describe("TaylorSqrt", func() {
	It("computes sqrt(25) from a nearby guess with two terms", func() {
		s := roots.NewTaylorSqrt(2, 1e-13)
		value, iters, err := s.Approx(25, 3)

		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(BeNumerically("~", 5.0, 1e-6))
		Expect(iters).To(BeNumerically(">", 0))
		Expect(iters).To(BeNumerically("<", 20))
	})

	It("computes sqrt(16) with five terms", func() {
		s := roots.NewTaylorSqrt(5, 1e-13)
		value, _, err := s.Approx(16, 3)

		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(BeNumerically("~", 4.0, 1e-6))
	})

	It("computes an irrational root to the requested tolerance", func() {
		s := roots.NewTaylorSqrt(3, 1e-13)
		value, _, err := s.Approx(10, 3)

		Expect(err).NotTo(HaveOccurred())
		Expect(value * value).To(BeNumerically("~", 10.0, 1e-12))
	})

	It("returns zero iterations when the guess is already exact", func() {
		s := roots.NewTaylorSqrt(3, 1e-13)
		value, iters, err := s.Approx(9, 3)

		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(3.0))
		Expect(iters).To(BeZero())
	})

	DescribeTable("rejects invalid arguments",
		func(a, guess, tol float64, terms int) {
			s := roots.NewTaylorSqrt(terms, tol)
			_, _, err := s.Approx(a, guess)
			Expect(err).To(MatchError(numeric.ErrInvalidArgument))
		},
		Entry("negative operand", -4.0, 1.0, 1e-10, 3),
		Entry("zero operand", 0.0, 1.0, 1e-10, 3),
		Entry("zero guess", 4.0, 0.0, 1e-10, 3),
		Entry("zero tolerance", 4.0, 1.0, 0.0, 3),
		Entry("negative term count", 4.0, 1.0, 1e-10, -1),
	)

	It("reports non-convergence when no terms are kept", func() {
		// With zero expansion terms the multiplier is always 1 and the
		// iterate never moves.
		s := roots.NewTaylorSqrt(0, 1e-13)
		_, iters, err := s.Approx(25, 3)

		Expect(err).To(MatchError(numeric.ErrNoConvergence))
		Expect(iters).To(Equal(s.MaxIter))
	})
})

var _ = Describe("RelativeError", func() {
	It("is zero for the exact root", func() {
		Expect(roots.RelativeError(5, 25)).To(BeZero())
	})

	It("measures deviation against math.Sqrt", func() {
		Expect(roots.RelativeError(5.05, 25)).To(BeNumerically("~", 0.01, 1e-12))
	})
})

var _ = Describe("RunExperiment", func() {
	It("records every trial, including failures", func() {
		trials := []roots.Trial{
			{A: 25, Terms: 2, Guess: 3, Tol: 1e-10},
			{A: 16, Terms: 5, Guess: 3, Tol: 1e-10},
			{A: -1, Terms: 2, Guess: 1, Tol: 1e-10},
		}

		results := roots.RunExperiment(trials)
		Expect(results).To(HaveLen(3))

		Expect(results[0].Err).NotTo(HaveOccurred())
		Expect(results[0].Value).To(BeNumerically("~", 5.0, 1e-4))
		Expect(results[0].RelError).To(BeNumerically("<", 1e-5))

		Expect(results[1].Err).NotTo(HaveOccurred())
		Expect(results[1].Value).To(BeNumerically("~", 4.0, 1e-4))

		Expect(results[2].Err).To(MatchError(numeric.ErrInvalidArgument))
	})
})
