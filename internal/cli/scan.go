package cli

import (
	"fmt"
	"net/http"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/akshitanchan/lob-core/internal/feed"
	"github.com/akshitanchan/lob-core/internal/format"
	"github.com/akshitanchan/lob-core/internal/metrics"
	"github.com/akshitanchan/lob-core/internal/orderbook"
)

func newScanCmd(logger log.Logger) *cobra.Command {
	var snapshotEvery uint64
	var metricsAddr string
	var debugAssert bool

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Scan a feed file, printing a snapshot every N lines and a final summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open feed file: %w", err)
			}
			defer f.Close()

			book := orderbook.New()

			var collector *metrics.Collector
			if metricsAddr != "" {
				collector = metrics.New()
				srv := &http.Server{Addr: metricsAddr, Handler: collector.Handler()}
				go func() {
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						logger.Error("metrics server stopped", "error", err)
					}
				}()
				logger.Info("metrics endpoint listening", "addr", metricsAddr)
			}

			opts := feed.Options{
				SnapshotEvery: snapshotEvery,
				Snapshot: func(lineNo uint64) {
					if debugAssert {
						book.AssertInvariants()
					}
					if collector != nil {
						collector.Observe(book)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "=== snapshot after %d lines ===\n", lineNo)
					format.Snapshot(cmd.OutOrStdout(), book)
				},
			}

			n, err := feed.Scan(cmd.Context(), logger, f, book, opts)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			logger.Info("scan complete", "lines", n)
			fmt.Fprintln(cmd.OutOrStdout(), "=== final snapshot ===")
			format.Snapshot(cmd.OutOrStdout(), book)
			format.Stats(cmd.OutOrStdout(), book.Stats)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&snapshotEvery, "snapshot-every", 10, "print a snapshot every N processed lines")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().BoolVar(&debugAssert, "debug-assert", false, "run AssertInvariants at every snapshot boundary")
	return cmd
}
