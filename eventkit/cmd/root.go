// Package cmd provides the command-line interface for eventkit.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eventkit",
		Short: "Run discrete-event simulation experiments.",
		Long: `eventkit runs replications of a multi-server queueing model ` +
			`described in a YAML file, records per-replication statistics ` +
			`to SQLite and prints the random number streams it uses.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newStreamsCmd())
	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}

// Execute runs the command line and exits. Exit handlers registered with
// atexit, such as recorder flushes, run before the process ends.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
