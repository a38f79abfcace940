package numeric

// Trajectory is the ordered (time, state) output of an integration run.
// Nodes are append-only; index 0 is the initial condition, so a run of n
// steps holds n+1 nodes.
type Trajectory struct {
	Times  []float64
	States []State
}

func NewTrajectory(capacity int) *Trajectory {
	return &Trajectory{
		Times:  make([]float64, 0, capacity),
		States: make([]State, 0, capacity),
	}
}

// Append records one node. The state is cloned so callers may keep
// mutating their working vector.
func (tr *Trajectory) Append(t float64, y State) {
	tr.Times = append(tr.Times, t)
	tr.States = append(tr.States, y.Clone())
}

func (tr *Trajectory) Len() int {
	return len(tr.Times)
}

func (tr *Trajectory) At(i int) (float64, State) {
	return tr.Times[i], tr.States[i]
}

func (tr *Trajectory) Final() (float64, State) {
	last := len(tr.Times) - 1
	return tr.Times[last], tr.States[last]
}

// Component extracts one state component across all nodes, in node order.
func (tr *Trajectory) Component(i int) []float64 {
	out := make([]float64, len(tr.States))
	for k, s := range tr.States {
		if i < len(s) {
			out[k] = s[i]
		}
	}
	return out
}

// Dim reports the state dimension, 0 for an empty trajectory.
func (tr *Trajectory) Dim() int {
	if len(tr.States) == 0 {
		return 0
	}
	return len(tr.States[0])
}
