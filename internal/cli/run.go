// Package cli contains the shared wiring between the cobra commands and
// the simulation kernel: building a simulation from a scenario and the
// headless, watch and GIF run loops.
package cli

import (
	"fmt"
	"image"
	"io"
	"math/rand"
	"os"

	"github.com/aretw0/contagion"
	"github.com/aretw0/contagion/pkg/display"
	"github.com/aretw0/contagion/pkg/domain"
	"github.com/aretw0/contagion/pkg/scenario"
)

// BuildSimulation constructs and seeds a simulation from a validated
// scenario. Extra options (logger, metrics hooks) are appended after the
// scenario-derived ones so callers can extend but not break reproducibility.
func BuildSimulation(sc scenario.Scenario, opts ...contagion.Option) (*contagion.Simulation, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	if sc.RandomSeed != 0 {
		opts = append([]contagion.Option{
			contagion.WithRand(rand.New(rand.NewSource(sc.RandomSeed))),
		}, opts...)
	}

	sim, err := contagion.New(sc.Grid.Width, sc.Grid.Height, sc.Params(), opts...)
	if err != nil {
		return nil, err
	}

	if sc.Seed.Ratio > 0 {
		state, err := sc.SeedState()
		if err != nil {
			return nil, err
		}
		if _, err := sim.Seed(sc.Seed.Ratio, state); err != nil {
			return nil, fmt.Errorf("seeding failed: %w", err)
		}
	}
	return sim, nil
}

// RunHeadless advances the simulation for steps steps, writing one census
// line per step. The output is stable and machine-readable (CSV), suitable
// for piping into analysis scripts.
func RunHeadless(sim *contagion.Simulation, steps int, out io.Writer) error {
	if _, err := fmt.Fprintln(out, "step,susceptible,latent,infected,recovered"); err != nil {
		return err
	}
	if err := writeCensus(out, sim.Snapshot()); err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		if err := writeCensus(out, sim.Step()); err != nil {
			return err
		}
	}
	return nil
}

func writeCensus(out io.Writer, snap domain.Snapshot) error {
	census := snap.Grid.Census()
	_, err := fmt.Fprintf(out, "%d,%d,%d,%d,%d\n",
		snap.Step,
		census[domain.Susceptible],
		census[domain.Latent],
		census[domain.Infected],
		census[domain.Recovered],
	)
	return err
}

// RunGIF advances the simulation for steps steps, capturing every
// "every"-th frame (plus the initial state), and writes an animated GIF.
func RunGIF(sim *contagion.Simulation, steps, every, scale, delay int, path string) error {
	if every < 1 {
		every = 1
	}

	frame, err := display.Image(sim.Snapshot().Grid, scale)
	if err != nil {
		return err
	}
	frames := []image.Image{frame}

	for i := 1; i <= steps; i++ {
		snap := sim.Step()
		if i%every != 0 {
			continue
		}
		frame, err := display.Image(snap.Grid, scale)
		if err != nil {
			return err
		}
		frames = append(frames, frame)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := display.EncodeGIF(f, frames, delay); err != nil {
		f.Close()
		return fmt.Errorf("encode gif: %w", err)
	}
	return f.Close()
}
