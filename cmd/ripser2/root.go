package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homology2/internal/xlog"
)

var rootCmd = &cobra.Command{
	Use:   "ripser2",
	Short: "Persistent homology over F2 for simplicial complexes.",
	Long:  "ripser2 computes persistence pairs and essential cycles for a simplicial complex, and can render Vietoris-Rips filtrations to SVG.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		xlog.Init(verbose)
	},
}

// Execute runs the root command. It is called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.AddCommand(homologyCmd)
	rootCmd.AddCommand(persistenceCmd)
	rootCmd.AddCommand(vietorisRipsCmd)
}
