// Package format renders OrderBook snapshots and InvalidStats tallies to a
// writer. It is the sole consumer of orderbook's iteration primitives for
// textual layout purposes; the core itself fixes no display format.
package format

import (
	"fmt"
	"io"
	"math"

	"github.com/akshitanchan/lob-core/internal/domain"
	"github.com/akshitanchan/lob-core/internal/orderbook"
)

// Snapshot writes a full depth dump of both sides, the mid-quote (or an
// empty-side marker), and the last trade line, matching the reference
// layout from the external interfaces section.
func Snapshot(w io.Writer, book *orderbook.Book) {
	fmt.Fprintln(w, "--- BID ---")
	writeSide(w, book, domain.Bid)
	fmt.Fprintln(w, "--- ASK ---")
	writeSide(w, book, domain.Ask)
	writeMidQuote(w, book)
	writeLastTrade(w, book)
}

func writeSide(w io.Writer, book *orderbook.Book, side domain.Side) {
	any := false
	book.WalkSide(side, func(l *orderbook.PriceLevel) bool {
		any = true
		fmt.Fprintf(w, "%d @ %.4f - [", l.TotalQty(), domain.PriceToFloat(l.GetPrice()))
		first := true
		orderbook.WalkLevel(l, func(o *orderbook.Order) bool {
			if !first {
				fmt.Fprint(w, ", ")
			}
			first = false
			fmt.Fprintf(w, "(%d, %d)", o.ID(), o.Qty())
			return true
		})
		fmt.Fprintln(w, "]")
		return true
	})
	if !any {
		fmt.Fprintln(w, "* EMPTY *")
	}
}

func writeMidQuote(w io.Writer, book *orderbook.Book) {
	bid := book.TopOfBook(domain.Bid)
	ask := book.TopOfBook(domain.Ask)
	if math.IsNaN(bid) || math.IsNaN(ask) {
		fmt.Fprintln(w, "* EMPTY *")
		return
	}
	fmt.Fprintf(w, "%.4f\n", (bid+ask)/2)
}

func writeLastTrade(w io.Writer, book *orderbook.Book) {
	if !book.LastTrade.Set {
		return
	}
	fmt.Fprintf(w, "*** Last trade -> %d @ %.4f\n", book.LastTrade.Qty, domain.PriceToFloat(book.LastTrade.Price))
}

// Stats writes the final stats line enumerating all six InvalidStats
// counters by name.
func Stats(w io.Writer, stats orderbook.InvalidStats) {
	fmt.Fprintf(w,
		"num_corrupted_msg=%d num_duplicate_order=%d num_unknown_trade=%d num_unknown_mod=%d num_crossed=%d num_invalid_neg=%d\n",
		stats.NumCorruptedMsg, stats.NumDuplicateOrder, stats.NumUnknownTrade,
		stats.NumUnknownMod, stats.NumCrossed, stats.NumInvalidNeg)
}
