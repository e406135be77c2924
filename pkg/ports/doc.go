/*
Package ports defines the driven ports (interfaces) for the simulation kernel.

These interfaces decouple the kernel from its capabilities, most importantly
the source of randomness, so tests can substitute deterministic
implementations and reproduce exact trajectories.

# Key Interfaces

  - RandSource: the uniform random draws consumed by the transition and
    movement phases. *math/rand.Rand satisfies it.
*/
package ports
