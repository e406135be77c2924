package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"

	"github.com/aretw0/contagion"
	"github.com/aretw0/contagion/internal/presentation/tui"
)

// RunWatch plays the simulation live in the terminal on the alternate
// screen, one frame per step. It returns when all steps have run or ctx is
// cancelled (Ctrl-C), restoring the screen either way.
func RunWatch(ctx context.Context, sim *contagion.Simulation, steps int, delay time.Duration) error {
	width, height := sim.Size()
	if !tui.FitsTerminal(width, height) {
		return fmt.Errorf("grid %dx%d does not fit the terminal; use a smaller grid or the headless runner", width, height)
	}

	out := termenv.NewOutput(os.Stdout)
	renderer := tui.NewGridRenderer()

	out.AltScreen()
	out.HideCursor()
	defer func() {
		out.ShowCursor()
		out.ExitAltScreen()
	}()

	draw := func() {
		out.MoveCursor(1, 1)
		out.WriteString(renderer.Frame(sim.Snapshot()))
	}

	draw()
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			sim.Step()
			draw()
		}
	}
	return nil
}
