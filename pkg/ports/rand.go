package ports

// RandSource is the randomness capability consumed by the kernel.
// The engine advances it in a documented, fixed order (one draw per affected
// cell, phase by phase), so two runs fed identical draw sequences produce
// identical grid trajectories.
//
// *math/rand.Rand satisfies this interface.
type RandSource interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform draw in [0, n). It panics if n <= 0,
	// matching math/rand.
	Intn(n int) int
}
