/*
Package contagion is a stochastic simulation kernel for the spatial spread
of an infectious disease on a 2D lattice of agents.

Every grid cell holds exactly one of four ordered disease states
(Susceptible, Latent, Infected, Recovered). Each step applies three
stochastic transition phases in a fixed order (recovery, symptom onset,
infection) followed by randomized pairwise position exchanges that model
movement. The kernel does nothing about visualization or persistence;
downstream callers (visualizers, analysis scripts, batch runners) drive it
step by step and query snapshots.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/contagion"
		"github.com/aretw0/contagion/pkg/domain"
	)

	func main() {
		sim, err := contagion.New(100, 100, domain.Params{
			Infect:  0.3,
			Symptom: 0.2,
			Recover: 0.1,
			Move:    0.05,
		})
		if err != nil {
			log.Fatal(err)
		}

		// Seed 1% of the grid with undetected carriers.
		if _, err := sim.Seed(0.01, domain.Latent); err != nil {
			log.Fatal(err)
		}

		for i := 0; i < 200; i++ {
			snap := sim.Step()
			fmt.Println(snap.Step, snap.Grid.Census())
		}
	}

# Determinism

The kernel draws randomness only from its injected RandSource, in a fixed
documented order. Construct the simulation with WithRand and a seeded
source to reproduce exact trajectories.
*/
package contagion
