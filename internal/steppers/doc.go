// Package steppers implements fixed-step explicit time integration.
//
// A [Method] is one per-step update rule ([Euler], [RK4]); the shared
// driver [Integrate] owns the time and trajectory bookkeeping, so the two
// rules differ only in how they advance a single step.
package steppers
