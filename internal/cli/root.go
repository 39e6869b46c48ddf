// Package cli implements the command-line interface for joice.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

var rootCmd = &cobra.Command{
	Use:   "joice",
	Short: "Build a meal in three steps: base, protein, topping",
	Long: `Joice walks you through composing a meal: pick a base, then a protein
that goes with it, then a topping. Each step only offers what the previous
pick allows, and the running total is shown as you go.

Without a subcommand joice starts the interactive wizard, same as "joice start".`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runStart,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	registerStartFlags(rootCmd)

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(logsCmd)
}
