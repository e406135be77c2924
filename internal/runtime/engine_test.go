package runtime_test

import (
	"math/rand"
	"testing"

	"github.com/aretw0/contagion/internal/runtime"
	"github.com/aretw0/contagion/internal/testutils"
	"github.com/aretw0/contagion/pkg/domain"
	"github.com/aretw0/contagion/pkg/ports"
	"github.com/stretchr/testify/require"
)

const (
	su = domain.Susceptible
	la = domain.Latent
	in = domain.Infected
	re = domain.Recovered
)

// panicOnIntn fails the test if the movement phase consumes any draw.
type panicOnIntn struct {
	testutils.ConstRand
}

func (panicOnIntn) Intn(int) int {
	panic("movement phase ran with move rate 0")
}

// The embedded ConstRand must keep value receivers or this value type loses
// Float64 from its method set.
var _ ports.RandSource = panicOnIntn{}

func newGrid(t *testing.T, w, h int) *domain.Grid {
	t.Helper()
	g, err := domain.NewGrid(w, h)
	require.NoError(t, err)
	return g
}

func TestEngine_CenterInfectionSpreadsToAxisNeighbors(t *testing.T) {
	g := testutils.MustGrid(t, [][]domain.State{
		{su, su, su},
		{su, in, su},
		{su, su, su},
	})
	eng := runtime.NewEngine(g, domain.Params{Infect: 1.0}, &testutils.ConstRand{F: 0.5})

	snap := eng.Step()

	want := testutils.MustGrid(t, [][]domain.State{
		{su, la, su},
		{la, in, la},
		{su, la, su},
	})
	require.Equal(t, want.Cells(), snap.Grid.Cells())
	require.Equal(t, 1, snap.Step)
}

func TestEngine_InfectionReadsPhaseSnapshot(t *testing.T) {
	// With live reads the middle cell, freshly latent, would infect the
	// right cell in the same sweep. The phase contract forbids that.
	g := testutils.MustGrid(t, [][]domain.State{
		{in, su, su},
	})
	eng := runtime.NewEngine(g, domain.Params{Infect: 1.0}, &testutils.ConstRand{F: 0.5})

	snap := eng.Step()

	require.Equal(t, []domain.State{in, la, su}, snap.Grid.Cells())
}

func TestEngine_RecoveredCountsAsInfectionSource(t *testing.T) {
	g := testutils.MustGrid(t, [][]domain.State{
		{re, su},
	})
	eng := runtime.NewEngine(g, domain.Params{Infect: 1.0}, &testutils.ConstRand{F: 0.5})

	snap := eng.Step()

	require.Equal(t, []domain.State{re, la}, snap.Grid.Cells(),
		"ordinal neighbor test treats recovered as exposed")
}

func TestEngine_ZeroInfectRateNeverInfects(t *testing.T) {
	g := testutils.MustGrid(t, [][]domain.State{
		{in, su},
		{su, su},
	})
	eng := runtime.NewEngine(g, domain.Params{}, &testutils.ConstRand{F: 0.5})

	for i := 0; i < 10; i++ {
		snap := eng.Step()
		require.Equal(t, []domain.State{in, su, su, su}, snap.Grid.Cells(), "step %d", i+1)
	}
}

func TestEngine_FullRecoveryRate(t *testing.T) {
	g := testutils.MustGrid(t, [][]domain.State{
		{in, in},
		{su, in},
	})
	eng := runtime.NewEngine(g, domain.Params{Recover: 1.0}, &testutils.ConstRand{F: 0.999})

	snap := eng.Step()

	require.Equal(t, []domain.State{re, re, su, re}, snap.Grid.Cells(),
		"recover rate 1.0 recovers every infected cell unconditionally")
}

func TestEngine_PhaseOrderIsOneStagePerStep(t *testing.T) {
	// A latent cell with symptom and recover rates of 1.0 turns infected in
	// one step and recovers only on the next: recovery runs before symptom
	// onset, so a cell can never skip two stages in a single step.
	g := testutils.MustGrid(t, [][]domain.State{{la}})
	eng := runtime.NewEngine(g, domain.Params{Symptom: 1.0, Recover: 1.0}, &testutils.ConstRand{F: 0.5})

	snap := eng.Step()
	require.Equal(t, []domain.State{in}, snap.Grid.Cells())

	snap = eng.Step()
	require.Equal(t, []domain.State{re}, snap.Grid.Cells())
}

func TestEngine_ZeroMoveRateSkipsMovement(t *testing.T) {
	g := newGrid(t, 4, 4)
	eng := runtime.NewEngine(g, domain.Params{}, panicOnIntn{testutils.ConstRand{F: 0.5}})

	for i := 0; i < 5; i++ {
		eng.Step()
	}
}

func TestEngine_MovementOnUnitGridIsAlwaysDiscarded(t *testing.T) {
	g := testutils.MustGrid(t, [][]domain.State{{in}})
	rng := &testutils.ScriptedRand{
		Floats: []float64{0.999},
		Ints:   []int{0, 0, 0, 1, 0, 0, 2, 0, 0, 3},
	}
	eng := runtime.NewEngine(g, domain.Params{Move: 1.0}, rng)

	snap := eng.Step()

	require.Equal(t, []domain.State{in}, snap.Grid.Cells(),
		"every direction leaves a 1x1 grid, so every attempt is discarded")
}

func TestEngine_MovementSwapsStates(t *testing.T) {
	g := testutils.MustGrid(t, [][]domain.State{
		{in, su},
	})
	// One attempt (move=0.5 on 2 cells): source (0,0), direction right.
	rng := &testutils.ScriptedRand{
		Floats: []float64{0.999},
		Ints:   []int{0, 0, 1},
	}
	eng := runtime.NewEngine(g, domain.Params{Move: 0.5}, rng)

	snap := eng.Step()

	require.Equal(t, []domain.State{su, in}, snap.Grid.Cells())
}

func TestEngine_MovementDiscardsOutOfBoundsAttempt(t *testing.T) {
	g := testutils.MustGrid(t, [][]domain.State{
		{in, su},
	})
	// One attempt: source (0,0), direction left -> off-grid, discarded.
	rng := &testutils.ScriptedRand{
		Floats: []float64{0.999},
		Ints:   []int{0, 0, 0},
	}
	eng := runtime.NewEngine(g, domain.Params{Move: 0.5}, rng)

	snap := eng.Step()

	require.Equal(t, []domain.State{in, su}, snap.Grid.Cells())
}

func TestEngine_StepCounterMatchesCalls(t *testing.T) {
	g := newGrid(t, 3, 3)
	eng := runtime.NewEngine(g, domain.Params{}, &testutils.ConstRand{F: 0.5})

	require.Equal(t, 0, eng.Snapshot().Step)
	for k := 1; k <= 7; k++ {
		require.Equal(t, k, eng.Step().Step)
	}
	require.Equal(t, 7, eng.Snapshot().Step)
}

func TestEngine_DeterministicUnderFixedDraws(t *testing.T) {
	params := domain.Params{Infect: 0.4, Symptom: 0.3, Recover: 0.2, Move: 0.5}

	run := func(seed int64) [][]domain.State {
		g := newGrid(t, 8, 8)
		eng := runtime.NewEngine(g, params, rand.New(rand.NewSource(seed)))
		_, err := eng.Seed(0.2, domain.Latent)
		require.NoError(t, err)

		var trajectory [][]domain.State
		for i := 0; i < 20; i++ {
			trajectory = append(trajectory, eng.Step().Grid.Cells())
		}
		return trajectory
	}

	require.Equal(t, run(1234), run(1234), "identical draw sequences must yield identical trajectories")
}

func TestEngine_StateClosureUnderRandomRun(t *testing.T) {
	g := newGrid(t, 10, 10)
	eng := runtime.NewEngine(g, domain.Params{Infect: 0.8, Symptom: 0.5, Recover: 0.3, Move: 0.4},
		rand.New(rand.NewSource(99)))
	_, err := eng.Seed(0.3, domain.Latent)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		for _, s := range eng.Step().Grid.Cells() {
			require.True(t, s.Valid(), "invalid state after step %d", i+1)
		}
	}
}

func TestEngine_NoStateRegressionWithoutMovement(t *testing.T) {
	g := newGrid(t, 10, 10)
	eng := runtime.NewEngine(g, domain.Params{Infect: 0.9, Symptom: 0.6, Recover: 0.4},
		rand.New(rand.NewSource(7)))
	_, err := eng.Seed(0.2, domain.Infected)
	require.NoError(t, err)

	prev := eng.Snapshot().Grid.Cells()
	for i := 0; i < 40; i++ {
		next := eng.Step().Grid.Cells()
		for j := range next {
			require.GreaterOrEqual(t, next[j], prev[j],
				"cell %d regressed at step %d", j, i+1)
		}
		prev = next
	}
}

func TestEngine_Seed(t *testing.T) {
	t.Run("ratio one marks every cell", func(t *testing.T) {
		g := newGrid(t, 4, 4)
		eng := runtime.NewEngine(g, domain.Params{}, rand.New(rand.NewSource(1)))

		affected, err := eng.Seed(1.0, domain.Latent)
		require.NoError(t, err)
		require.Equal(t, 16, affected)
		for _, s := range eng.Snapshot().Grid.Cells() {
			require.Equal(t, la, s)
		}
	})

	t.Run("ratio zero marks nothing", func(t *testing.T) {
		g := newGrid(t, 4, 4)
		eng := runtime.NewEngine(g, domain.Params{}, rand.New(rand.NewSource(1)))

		affected, err := eng.Seed(0.0, domain.Latent)
		require.NoError(t, err)
		require.Zero(t, affected)
	})

	t.Run("repeated seeding only adds", func(t *testing.T) {
		g := newGrid(t, 6, 6)
		eng := runtime.NewEngine(g, domain.Params{}, rand.New(rand.NewSource(5)))

		_, err := eng.Seed(0.5, domain.Latent)
		require.NoError(t, err)
		first := eng.Snapshot().Grid.Census()[la]

		_, err = eng.Seed(0.5, domain.Latent)
		require.NoError(t, err)
		second := eng.Snapshot().Grid.Census()[la]
		require.GreaterOrEqual(t, second, first)
	})

	t.Run("invalid state is rejected without mutation", func(t *testing.T) {
		g := newGrid(t, 2, 2)
		eng := runtime.NewEngine(g, domain.Params{}, rand.New(rand.NewSource(1)))

		_, err := eng.Seed(0.5, domain.State(42))
		require.ErrorIs(t, err, domain.ErrInvalidSeedState)
		for _, s := range eng.Snapshot().Grid.Cells() {
			require.Equal(t, su, s)
		}
	})

	t.Run("out of range ratio is rejected", func(t *testing.T) {
		g := newGrid(t, 2, 2)
		eng := runtime.NewEngine(g, domain.Params{}, rand.New(rand.NewSource(1)))

		_, err := eng.Seed(1.5, domain.Latent)
		var perr *domain.ParamError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, "ratio", perr.Name)
	})
}

func TestEngine_HooksObserveStepAndSeed(t *testing.T) {
	g := newGrid(t, 3, 3)

	var steps []int
	var seeded int
	hooks := domain.LifecycleHooks{
		OnStep: func(ev domain.StepEvent) {
			steps = append(steps, ev.Step)
			require.Equal(t, 9, ev.Census[su]+ev.Census[la]+ev.Census[in]+ev.Census[re])
		},
		OnSeed: func(ev domain.SeedEvent) {
			seeded = ev.Affected
		},
	}
	eng := runtime.NewEngine(g, domain.Params{}, rand.New(rand.NewSource(3)), runtime.WithHooks(hooks))

	_, err := eng.Seed(1.0, domain.Infected)
	require.NoError(t, err)
	eng.Step()
	eng.Step()

	require.Equal(t, 9, seeded)
	require.Equal(t, []int{1, 2}, steps)
}
