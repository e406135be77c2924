package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/contagion"
	"github.com/aretw0/contagion/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of contagion",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(contagion.Version)
		fmt.Printf("contagion version %s\n", contagion.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
