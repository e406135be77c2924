package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/contagion"
	"github.com/aretw0/contagion/internal/cli"
	"github.com/aretw0/contagion/internal/logging"
	"github.com/aretw0/contagion/pkg/scenario"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation scenario",
	Long: `Runs a scenario to completion. By default the per-step census is written
to stdout as CSV; --watch plays the grid live in the terminal and --gif
writes the run as an animated GIF instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(cmd, args)
		if err != nil {
			return err
		}

		steps := sc.Steps
		if cmd.Flags().Changed("steps") {
			steps, _ = cmd.Flags().GetInt("steps")
		}
		watch, _ := cmd.Flags().GetBool("watch")
		gifPath, _ := cmd.Flags().GetString("gif")
		if watch && gifPath != "" {
			return fmt.Errorf("--watch and --gif cannot be used together")
		}

		level, _ := cmd.Flags().GetString("log-level")
		sim, err := cli.BuildSimulation(sc, contagion.WithLogger(logging.New(logging.ParseLevel(level))))
		if err != nil {
			return err
		}

		switch {
		case watch:
			delayMS, _ := cmd.Flags().GetInt("delay")
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return cli.RunWatch(ctx, sim, steps, time.Duration(delayMS)*time.Millisecond)
		case gifPath != "":
			every, _ := cmd.Flags().GetInt("every")
			scale, _ := cmd.Flags().GetInt("scale")
			delay, _ := cmd.Flags().GetInt("gif-delay")
			if err := cli.RunGIF(sim, steps, every, scale, delay, gifPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "GIF saved to %s\n", gifPath)
			return nil
		default:
			return cli.RunHeadless(sim, steps, cmd.OutOrStdout())
		}
	},
}

func loadScenario(cmd *cobra.Command, args []string) (scenario.Scenario, error) {
	path, _ := cmd.Flags().GetString("scenario")
	if path == "" && len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return scenario.Scenario{}, fmt.Errorf("a scenario file or preset name is required (one of: %s)",
			strings.Join(scenario.PresetNames(), ", "))
	}
	if sc, ok := scenario.Preset(path); ok {
		return sc, nil
	}
	return scenario.Load(path)
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("steps", 0, "Override the scenario's step count")
	runCmd.Flags().BoolP("watch", "w", false, "Play the grid live in the terminal")
	runCmd.Flags().Int("delay", 100, "Frame delay in milliseconds for --watch")
	runCmd.Flags().String("gif", "", "Write the run as an animated GIF to this path")
	runCmd.Flags().Int("every", 1, "Capture every Nth step as a GIF frame")
	runCmd.Flags().Int("scale", 4, "Pixels per cell in GIF frames")
	runCmd.Flags().Int("gif-delay", 5, "GIF inter-frame delay in 1/100s")
}
