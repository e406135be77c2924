package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/contagion/internal/presentation/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show a scenario's parameters and description",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(cmd, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Scenario:    %s\n", sc.Name)
		fmt.Fprintf(out, "Grid:        %dx%d\n", sc.Grid.Width, sc.Grid.Height)
		fmt.Fprintf(out, "Rates:       infect=%.3f symptom=%.3f recover=%.3f move=%.3f\n",
			sc.Rates.Infect, sc.Rates.Symptom, sc.Rates.Recover, sc.Rates.Move)
		fmt.Fprintf(out, "Seed:        ratio=%.3f state=%s\n", sc.Seed.Ratio, sc.Seed.State)
		fmt.Fprintf(out, "Steps:       %d\n", sc.Steps)
		if sc.RandomSeed != 0 {
			fmt.Fprintf(out, "Random seed: %d\n", sc.RandomSeed)
		}

		if sc.Description != "" {
			render := tui.NewMarkdownRenderer()
			text, err := render(sc.Description)
			if err != nil {
				// Fall back to the raw markdown rather than failing the command.
				text = "\n" + sc.Description
			}
			fmt.Fprint(out, text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
