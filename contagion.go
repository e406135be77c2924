package contagion

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/aretw0/contagion/internal/runtime"
	"github.com/aretw0/contagion/pkg/domain"
	"github.com/aretw0/contagion/pkg/ports"
)

// Version of the contagion library.
var Version = "0.1.0"

// Simulation is the high-level entry point for the contagion library.
// It wraps the internal kernel and serializes all calls with a mutex, so a
// single instance can be shared across goroutines (the HTTP adapter does
// exactly that). The kernel itself requires exclusive access per call.
type Simulation struct {
	mu     sync.Mutex
	engine *runtime.Engine
	params domain.Params
	width  int
	height int
}

// Option defines a functional option for configuring the Simulation.
type Option func(*config)

type config struct {
	rng    ports.RandSource
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// WithRand injects the random source consumed by all stochastic rules.
// Defaults to a time-seeded math/rand generator. Inject a seeded source for
// reproducible runs, or a scripted one in tests.
func WithRand(rng ports.RandSource) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithLogger sets a structured logger for kernel debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks registers lifecycle callbacks invoked after every seed and step.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// New constructs a simulation over a width x height grid with every cell
// Susceptible and the step counter at zero. It fails if a dimension is not
// positive or any rate falls outside [0, 1]; no partial object is returned.
func New(width, height int, params domain.Params, opts ...Option) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	grid, err := domain.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	engineOpts := []runtime.EngineOption{runtime.WithHooks(cfg.hooks)}
	if cfg.logger != nil {
		engineOpts = append(engineOpts, runtime.WithLogger(cfg.logger))
	}

	return &Simulation{
		engine: runtime.NewEngine(grid, params, cfg.rng, engineOpts...),
		params: params,
		width:  width,
		height: height,
	}, nil
}

// Seed sets each cell independently to state with probability ratio (one
// uniform draw per cell, accepted when strictly below ratio). It returns
// the number of cells affected. Calling it again only ever adds further
// affected cells.
func (s *Simulation) Seed(ratio float64, state domain.State) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Seed(ratio, state)
}

// Step advances the simulation by one time unit and returns the new
// snapshot. This is the only state-advancing operation.
func (s *Simulation) Step() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Step()
}

// Snapshot returns the current step number and a copy of the grid without
// advancing the simulation.
func (s *Simulation) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// Params returns the immutable rate set the simulation was built with.
func (s *Simulation) Params() domain.Params { return s.params }

// Size returns the fixed grid dimensions.
func (s *Simulation) Size() (width, height int) { return s.width, s.height }
