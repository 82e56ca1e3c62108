package cli

import (
	"fmt"
	"strings"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/akshitanchan/lob-core/internal/feed"
	"github.com/akshitanchan/lob-core/internal/feedgen"
	"github.com/akshitanchan/lob-core/internal/format"
	"github.com/akshitanchan/lob-core/internal/orderbook"
)

func newDemoCmd(logger log.Logger) *cobra.Command {
	var seed int64
	var lines int
	var snapshotEvery uint64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a synthetic feed and scan it through a fresh book",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := feedgen.DefaultConfig(seed, lines)
			genLines := feedgen.New(cfg).Lines()

			book := orderbook.New()
			opts := feed.Options{
				SnapshotEvery: snapshotEvery,
				Snapshot: func(lineNo uint64) {
					fmt.Fprintf(cmd.OutOrStdout(), "=== snapshot after %d lines ===\n", lineNo)
					format.Snapshot(cmd.OutOrStdout(), book)
				},
			}

			n, err := feed.Scan(cmd.Context(), logger, strings.NewReader(strings.Join(genLines, "\n")), book, opts)
			if err != nil {
				return fmt.Errorf("demo scan: %w", err)
			}

			logger.Info("demo complete", "lines", n, "seed", seed)
			fmt.Fprintln(cmd.OutOrStdout(), "=== final snapshot ===")
			format.Snapshot(cmd.OutOrStdout(), book)
			format.Stats(cmd.OutOrStdout(), book.Stats)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "synthetic feed generator seed")
	cmd.Flags().IntVar(&lines, "lines", 500, "number of generated lines beyond the initial book seeding")
	cmd.Flags().Uint64Var(&snapshotEvery, "snapshot-every", 0, "print a snapshot every N processed lines (0 disables)")
	return cmd
}
