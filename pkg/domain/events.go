package domain

import "time"

// StepEvent describes one completed simulation step.
type StepEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Step      int           `json:"step"`
	Census    map[State]int `json:"census"`
	Duration  time.Duration `json:"duration"`
}

// SeedEvent describes one seeding pass over the grid.
type SeedEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Ratio     float64   `json:"ratio"`
	State     State     `json:"state"`
	Affected  int       `json:"affected"`
}

// LifecycleHooks defines optional callbacks for kernel observability.
// Hooks run synchronously inside the mutating call; keep them cheap.
type LifecycleHooks struct {
	OnStep func(StepEvent)
	OnSeed func(SeedEvent)
}
