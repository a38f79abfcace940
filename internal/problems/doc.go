// Package problems provides benchmark ODE systems for the steppers.
//
// Each problem implements [numeric.System]; all of them also carry a
// closed-form solution via [Analytic], which is what the convergence study
// measures endpoint error against:
//
//   - [Decay]: dy/dt = -lambda*y
//   - [Oscillator]: 2-D harmonic oscillator
//   - [Logistic]: bounded growth
//   - [ShiftedSqrt]: dy/dt = 1/(1+y)
//
// Problems expose their parameters through GetParams/SetParam for runtime
// adjustment from the CLI.
package problems
