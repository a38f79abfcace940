package roots

// Trial is one configuration of the approximation to evaluate.
type Trial struct {
	A     float64
	Terms int
	Guess float64
	Tol   float64
}

// TrialResult carries the outcome of one trial alongside its inputs.
type TrialResult struct {
	Trial
	Value      float64
	Iterations int
	RelError   float64
	Err        error
}

// RunExperiment evaluates every trial, recording per-trial failures
// instead of aborting the sweep.
func RunExperiment(trials []Trial) []TrialResult {
	results := make([]TrialResult, 0, len(trials))
	for _, tr := range trials {
		s := NewTaylorSqrt(tr.Terms, tr.Tol)
		value, iters, err := s.Approx(tr.A, tr.Guess)
		res := TrialResult{
			Trial:      tr,
			Value:      value,
			Iterations: iters,
			Err:        err,
		}
		if err == nil {
			res.RelError = RelativeError(value, tr.A)
		}
		results = append(results, res)
	}
	return results
}
