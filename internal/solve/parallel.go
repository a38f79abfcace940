package solve

import (
	"context"
	"sync"

	"github.com/rbhatt/numlab/internal/numeric"
	"github.com/rbhatt/numlab/internal/steppers"
)

// Ensemble integrates many independent initial conditions concurrently.
// Each run gets its own method instance from the factory, so methods with
// scratch buffers (RK4) never cross goroutines.
type Ensemble struct {
	sys     numeric.System
	factory func() steppers.Method
}

func NewEnsemble(sys numeric.System, factory func() steppers.Method) *Ensemble {
	return &Ensemble{sys: sys, factory: factory}
}

func (e *Ensemble) Run(ctx context.Context, inits []numeric.State, cfg numeric.Config) ([]*numeric.Trajectory, error) {
	results := make([]*numeric.Trajectory, len(inits))
	errs := make([]error, len(inits))

	var wg sync.WaitGroup
	for i := range inits {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			s := New(e.sys, e.factory())
			results[idx], errs[idx] = s.Run(ctx, inits[idx], cfg)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
