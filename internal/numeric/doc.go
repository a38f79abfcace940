// Package numeric provides the core primitives shared by the lab's
// numerical routines:
//
//   - [State]: vector holding the solution of an ODE at one time
//   - [System]: interface for first-order ODE systems (dy/dt = f(t, y))
//   - [Trajectory]: ordered (time, state) output of an integration run
//   - [Config]: fixed-step integration parameters
//
// # Example
//
//	sys := problems.NewDecay()
//	traj, err := steppers.Integrate(sys, numeric.State{1}, 0, 0.1, 10, steppers.NewRK4())
//
// # Thread Safety
//
// State and Trajectory values are not synchronized. Independent
// integration runs may execute concurrently as long as each run owns its
// own state and method; see [solve.Ensemble].
package numeric
