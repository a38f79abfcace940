// Package lab wires problems and methods together by name for the CLI.
package lab

import (
	"fmt"
	"sort"

	"github.com/rbhatt/numlab/internal/numeric"
	"github.com/rbhatt/numlab/internal/problems"
	"github.com/rbhatt/numlab/internal/steppers"
)

type Registry struct {
	problems map[string]func() problems.Analytic
	methods  map[string]func() steppers.Method
	inits    map[string]numeric.State
}

func NewRegistry() *Registry {
	r := &Registry{
		problems: make(map[string]func() problems.Analytic),
		methods:  make(map[string]func() steppers.Method),
		inits:    make(map[string]numeric.State),
	}

	r.problems["decay"] = func() problems.Analytic { return problems.NewDecay() }
	r.problems["oscillator"] = func() problems.Analytic { return problems.NewOscillator() }
	r.problems["logistic"] = func() problems.Analytic { return problems.NewLogistic() }
	r.problems["shifted_sqrt"] = func() problems.Analytic { return problems.NewShiftedSqrt() }

	r.inits["decay"] = numeric.State{1.0}
	r.inits["oscillator"] = numeric.State{1.0, 0.0}
	r.inits["logistic"] = numeric.State{0.5}
	r.inits["shifted_sqrt"] = numeric.State{1.0}

	r.methods["euler"] = func() steppers.Method { return steppers.NewEuler() }
	r.methods["rk4"] = func() steppers.Method { return steppers.NewRK4() }

	return r
}

func (r *Registry) GetProblem(name string) (problems.Analytic, error) {
	fn, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetMethod(name string) (steppers.Method, error) {
	fn, ok := r.methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s", name)
	}
	return fn(), nil
}

// MethodFactory returns a constructor so callers needing fresh method
// instances per goroutine can make their own.
func (r *Registry) MethodFactory(name string) (func() steppers.Method, error) {
	fn, ok := r.methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s", name)
	}
	return fn, nil
}

// DefaultInitState returns the stock initial condition for a problem.
func (r *Registry) DefaultInitState(name string) numeric.State {
	if init, ok := r.inits[name]; ok {
		return init.Clone()
	}
	return numeric.State{1.0}
}

func (r *Registry) ListProblems() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListMethods() []string {
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
