// Package main provides the chess CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flag values, bound in init.
var (
	configFile string
	flagAddr   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chess",
	Short: "Chess move generation and validation tools",
	Long: `Chess provides move generation and validation for standard chess
positions. It can list the moves available to a piece, check a single
move for legality, analyze batches of positions in parallel, and serve
games over HTTP.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: chess.yaml in the working directory)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}
