package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contagion",
	Short: "Contagion is a lattice epidemic simulation kernel",
	Long:  `Contagion simulates the spatial spread of an infectious disease on a 2D lattice, driven by per-step stochastic transition rules and random position exchanges.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("scenario", "s", "", "Scenario YAML file or built-in preset name")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
