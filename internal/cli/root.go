// Package cli assembles the scanner, book, formatter, synthetic generator
// and metrics packages into a cobra command tree: a NewRootCmd constructor
// taking a logger as an explicit value, never a package-level global, with
// subcommands attached via AddCommand.
package cli

import (
	"cosmossdk.io/log"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the lobcore command tree. logger is threaded as an
// explicit value into every subcommand rather than stored globally.
func NewRootCmd(logger log.Logger) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "lobcore",
		Short: "A single-instrument limit order book core",
		Long: `lobcore scans a line-oriented feed of Add/Modify/Cancel/Trade events,
maintains a price-ordered, time-prioritized order book, and reports
top-of-book, full depth, and last-trade summaries.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error (accepted but not applied; the logger passed to NewRootCmd keeps its own level)")

	root.AddCommand(
		newScanCmd(logger),
		newDemoCmd(logger),
		newReplayCmd(logger),
	)
	return root
}
