package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/contagion"
	"github.com/aretw0/contagion/internal/cli"
	"github.com/aretw0/contagion/internal/logging"
	mcpAdapter "github.com/aretw0/contagion/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose a simulation as an MCP server on stdio",
	Long: `Builds the scenario's simulation and serves it over the Model Context
Protocol, so agent hosts can seed the grid, step the simulation and read
snapshots as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(cmd, args)
		if err != nil {
			return err
		}
		level, _ := cmd.Flags().GetString("log-level")

		sim, err := cli.BuildSimulation(sc, contagion.WithLogger(logging.New(logging.ParseLevel(level))))
		if err != nil {
			return err
		}
		return mcpAdapter.NewServer(sim).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
