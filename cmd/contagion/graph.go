package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/contagion/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the disease progression as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph LR) of the scenario's disease states
and the per-step transition probabilities between them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(sc.Params()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
