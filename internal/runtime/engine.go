package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/contagion/internal/logging"
	"github.com/aretw0/contagion/pkg/domain"
	"github.com/aretw0/contagion/pkg/ports"
)

// Engine is the core simulation kernel. It owns the grid exclusively and
// advances it one step at a time.
//
// Engine is not safe for concurrent use; the public facade in the root
// package serializes access. Within a step the four phases always run in
// the same order (recovery, symptom, infection, movement) and consume
// random draws in a documented order (one draw per affected cell, row by
// row), so a seeded RandSource reproduces the exact trajectory.
type Engine struct {
	grid   *domain.Grid
	params domain.Params
	rng    ports.RandSource
	step   int
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithHooks registers lifecycle callbacks.
func WithHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger for per-step debug output.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine over an already-validated grid and parameter
// set. The caller (the root package) is responsible for validation; the
// engine trusts its inputs.
func NewEngine(grid *domain.Grid, params domain.Params, rng ports.RandSource, opts ...EngineOption) *Engine {
	e := &Engine{
		grid:   grid,
		params: params,
		rng:    rng,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Seed performs one seeding pass: every cell independently draws a uniform
// value in [0, 1) and is set to state when the draw is strictly below ratio.
// Repeated calls only ever add (or overwrite) affected cells.
func (e *Engine) Seed(ratio float64, state domain.State) (int, error) {
	if !state.Valid() {
		return 0, domain.ErrInvalidSeedState
	}
	if ratio < 0 || ratio > 1 {
		return 0, &domain.ParamError{Name: "ratio", Value: ratio, Reason: "must be in [0, 1]"}
	}

	affected := 0
	for y := 0; y < e.grid.Height(); y++ {
		for x := 0; x < e.grid.Width(); x++ {
			if e.rng.Float64() < ratio {
				e.grid.Set(x, y, state)
				affected++
			}
		}
	}

	if e.hooks.OnSeed != nil {
		e.hooks.OnSeed(domain.SeedEvent{
			Timestamp: time.Now(),
			Ratio:     ratio,
			State:     state,
			Affected:  affected,
		})
	}
	e.logger.Debug("grid seeded", "ratio", ratio, "state", state.String(), "affected", affected)
	return affected, nil
}

// Step advances the simulation by one time unit: recovery, then symptom
// onset, then infection, then movement, each phase reading the result of
// the previous one. It increments the step counter and returns the new
// snapshot.
func (e *Engine) Step() domain.Snapshot {
	start := time.Now()

	e.applyRecovery()
	e.applySymptoms()
	e.applyInfection()
	if e.params.Move > 0 {
		e.exchange()
	}

	e.step++
	snap := e.Snapshot()

	if e.hooks.OnStep != nil {
		e.hooks.OnStep(domain.StepEvent{
			Timestamp: time.Now(),
			Step:      e.step,
			Census:    snap.Grid.Census(),
			Duration:  time.Since(start),
		})
	}
	e.logger.Debug("step complete", "step", e.step, "elapsed", time.Since(start))
	return snap
}

// Snapshot returns the current step number and a copy of the grid.
func (e *Engine) Snapshot() domain.Snapshot {
	return domain.Snapshot{Step: e.step, Grid: e.grid.Clone()}
}

// applyRecovery turns each infected cell into recovered with probability
// params.Recover.
func (e *Engine) applyRecovery() {
	for y := 0; y < e.grid.Height(); y++ {
		for x := 0; x < e.grid.Width(); x++ {
			if e.grid.At(x, y) != domain.Infected {
				continue
			}
			if e.rng.Float64() <= e.params.Recover {
				e.grid.Set(x, y, domain.Recovered)
			}
		}
	}
}

// applySymptoms turns each latent cell into infected with probability
// params.Symptom. Cells that just recovered this step are no longer latent
// and are never touched here; a cell that turns infected here is eligible
// for recovery only on the next step.
func (e *Engine) applySymptoms() {
	for y := 0; y < e.grid.Height(); y++ {
		for x := 0; x < e.grid.Width(); x++ {
			if e.grid.At(x, y) != domain.Latent {
				continue
			}
			if e.rng.Float64() <= e.params.Symptom {
				e.grid.Set(x, y, domain.Infected)
			}
		}
	}
}

// applyInfection turns susceptible cells latent with probability
// params.Infect, conditional on at least one of the four axis-aligned
// neighbors being exposed. Neighbor reads go through the clamped accessor:
// an edge cell sees itself in the missing direction, so the grid boundary
// never acts as an infection source.
//
// The phase reads from a snapshot taken at phase start, so cells that turn
// latent here cannot infect others within the same step and iteration order
// does not affect the outcome. The draw happens before the neighbor check:
// one draw per susceptible cell regardless of its surroundings, which keeps
// the draw sequence independent of grid content.
func (e *Engine) applyInfection() {
	prev := e.grid.Clone()
	for y := 0; y < prev.Height(); y++ {
		for x := 0; x < prev.Width(); x++ {
			if prev.At(x, y) != domain.Susceptible {
				continue
			}
			if e.rng.Float64() > e.params.Infect {
				continue
			}
			if prev.ClampedAt(x-1, y).Exposed() ||
				prev.ClampedAt(x+1, y).Exposed() ||
				prev.ClampedAt(x, y-1).Exposed() ||
				prev.ClampedAt(x, y+1).Exposed() {
				e.grid.Set(x, y, domain.Latent)
			}
		}
	}
}

// exchange performs floor(move * width * height) swap attempts. Each
// attempt draws a uniform cell and a uniform direction; attempts that would
// leave the grid are discarded with no retry and no compensating draw.
// Attempts apply sequentially, so overlapping attempts compose in order.
func (e *Engine) exchange() {
	w, h := e.grid.Width(), e.grid.Height()
	n := int(e.params.Move * float64(w*h))
	for i := 0; i < n; i++ {
		x := e.rng.Intn(w)
		y := e.rng.Intn(h)
		x2, y2 := x, y
		switch e.rng.Intn(4) {
		case 0: // left
			if x == 0 {
				continue
			}
			x2--
		case 1: // right
			if x == w-1 {
				continue
			}
			x2++
		case 2: // up
			if y == 0 {
				continue
			}
			y2--
		default: // down
			if y == h-1 {
				continue
			}
			y2++
		}
		e.grid.Swap(x, y, x2, y2)
	}
}
