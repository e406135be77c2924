package domain

// Snapshot is a read-only view of the simulation at a completed step.
// Grid is a private copy owned by the receiver; mutating it cannot corrupt
// the running simulation.
type Snapshot struct {
	Step int
	Grid *Grid
}
