// Command pomdp-parity synthesizes an almost-sure winning strategy for a
// POMDP against a parity or LTL objective, per the pipeline documented in
// this repository's root packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is stamped at release time; "dev" is the default for local
// builds, matching the teacher's own unstamped cmd binaries.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pomdp-parity",
	Short: "Synthesize almost-sure winning strategies for POMDPs against parity/LTL objectives",
	Long: `pomdp-parity builds the product of a POMDP and a parity automaton, derives
its belief-support MDP, and solves for the almost-sure winning region and a
memoryless witness strategy.`,
}

func main() {
	rootCmd.AddCommand(solveCmd(), versionCmd())
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, classify(err))
		os.Exit(exitCodeFor(err))
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
