// Package feed reads a line-oriented event source and drives the parser and
// the book in arrival order. It owns no counters of its own: every
// classification the parser returns is folded directly into the book's
// InvalidStats rather than being split across the scanner.
package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"cosmossdk.io/log"

	"github.com/akshitanchan/lob-core/internal/domain"
	"github.com/akshitanchan/lob-core/internal/orderbook"
	"github.com/akshitanchan/lob-core/internal/parser"
)

// SnapshotFunc is called after every SnapshotEvery processed lines (and
// never if SnapshotEvery <= 0), for a periodic depth dump. lineNo is
// 1-indexed.
type SnapshotFunc func(lineNo uint64)

// Options configures a Scan call.
type Options struct {
	// SnapshotEvery triggers Snapshot every N processed lines. Zero or
	// negative disables periodic snapshots.
	SnapshotEvery uint64
	Snapshot      SnapshotFunc
}

// Scan reads r line by line, parses each line, and applies it to book. It
// returns the number of lines processed and the first I/O error
// encountered (not a parse error -- those are tallied, never fatal). The
// context is consulted between lines only, since no single operation here
// ever blocks or suspends; cancellation simply stops the scan before the
// next line.
func Scan(ctx context.Context, logger log.Logger, r io.Reader, book *orderbook.Book, opts Options) (uint64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lineNo uint64
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return lineNo, ctx.Err()
		default:
		}

		lineNo++
		applyLine(logger, book, scanner.Text())

		if opts.SnapshotEvery > 0 && opts.Snapshot != nil && lineNo%opts.SnapshotEvery == 0 {
			opts.Snapshot(lineNo)
		}
	}

	if err := scanner.Err(); err != nil {
		return lineNo, fmt.Errorf("scan feed: %w", err)
	}
	return lineNo, nil
}

// applyLine parses a single line and either mutates book or folds the
// parser's classification into book.Stats. This is the one place the feed
// reader and message parser collaborator contracts meet the book.
func applyLine(logger log.Logger, book *orderbook.Book, line string) {
	ev, class := parser.Parse(line)
	switch class {
	case parser.ClassCorrupted:
		book.Stats.NumCorruptedMsg++
		return
	case parser.ClassInvalidNeg:
		book.Stats.NumInvalidNeg++
		return
	}

	switch ev.Kind {
	case domain.EventAdd:
		book.AddOrder(ev.ID, ev.Side, ev.Qty, ev.Price)
	case domain.EventModify:
		book.AmendOrder(ev.ID, ev.Side, ev.Qty, ev.Price)
	case domain.EventCancel:
		if !book.CancelOrder(ev.ID) {
			logger.Debug("cancel of unknown order id", "order_id", ev.ID)
		}
	case domain.EventTrade:
		book.ObserveTrade(ev.Qty, ev.Price)
	}
}
