package testutils

import (
	"testing"

	"github.com/aretw0/contagion/pkg/domain"
	"github.com/aretw0/contagion/pkg/ports"
	"github.com/stretchr/testify/require"
)

// ScriptedRand is a deterministic RandSource for tests. Float64 draws come
// from Floats in order (cycling when exhausted); Intn draws come from Ints
// the same way, reduced modulo n.
type ScriptedRand struct {
	Floats []float64
	Ints   []int

	fi int
	ii int
}

func (r *ScriptedRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0.5
	}
	v := r.Floats[r.fi%len(r.Floats)]
	r.fi++
	return v
}

func (r *ScriptedRand) Intn(n int) int {
	if n <= 0 {
		panic("testutils: Intn with non-positive n")
	}
	if len(r.Ints) == 0 {
		return 0
	}
	v := r.Ints[r.ii%len(r.Ints)] % n
	r.ii++
	return v
}

// ConstRand always returns the same float draw and zero for Intn.
// A value of 1.0 never satisfies "draw <= rate" for rate < 1, which makes
// it a convenient "nothing happens" source.
type ConstRand struct {
	F float64
}

func (r ConstRand) Float64() float64 { return r.F }
func (r ConstRand) Intn(n int) int {
	if n <= 0 {
		panic("testutils: Intn with non-positive n")
	}
	return 0
}

// Both fakes must stay usable as rand sources, ConstRand also when embedded
// by value.
var (
	_ ports.RandSource = (*ScriptedRand)(nil)
	_ ports.RandSource = ConstRand{}
)

// MustGrid builds a grid from rows of states, failing the test on invalid
// dimensions. Rows are indexed [y][x].
func MustGrid(t *testing.T, rows [][]domain.State) *domain.Grid {
	t.Helper()

	require.NotEmpty(t, rows, "grid needs at least one row")
	g, err := domain.NewGrid(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, g.Width(), "ragged row %d", y)
		for x, s := range row {
			g.Set(x, y, s)
		}
	}
	return g
}
