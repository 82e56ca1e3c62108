package test

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"

	"github.com/akshitanchan/lob-core/internal/domain"
	"github.com/akshitanchan/lob-core/internal/feed"
	"github.com/akshitanchan/lob-core/internal/feedgen"
	"github.com/akshitanchan/lob-core/internal/format"
	"github.com/akshitanchan/lob-core/internal/metrics"
	"github.com/akshitanchan/lob-core/internal/orderbook"
)

// TestIntegrationGeneratedFeedEndToEnd scans a synthetic feed through the
// whole pipeline (generator -> scanner -> book -> formatter -> metrics) and
// checks the result is internally consistent.
func TestIntegrationGeneratedFeedEndToEnd(t *testing.T) {
	cfg := feedgen.DefaultConfig(7, 3000)
	lines := feedgen.New(cfg).Lines()

	book := orderbook.New()
	logger := log.NewTestLogger(t)
	n, err := feed.Scan(context.Background(), logger, strings.NewReader(strings.Join(lines, "\n")), book, feed.Options{})
	require.NoError(t, err)
	require.EqualValues(t, len(lines), n)

	book.AssertInvariants()

	require.Greater(t, book.Stats.NumCorruptedMsg+book.Stats.NumInvalidNeg, uint64(0),
		"malformed-line injection should have tripped at least one counter")

	var buf bytes.Buffer
	format.Snapshot(&buf, book)
	format.Stats(&buf, book.Stats)
	out := buf.String()
	require.Contains(t, out, "num_corrupted_msg=")
	require.Contains(t, out, "num_crossed=")

	collector := metrics.New()
	require.NotPanics(t, func() { collector.Observe(book) })
}

// TestIntegrationReferenceScenario walks a reference-grammar example line
// by line, checking the book's observable state after each line the way a
// real feed would be consumed by the formatter.
func TestIntegrationReferenceScenario(t *testing.T) {
	book := orderbook.New()
	logger := log.NewTestLogger(t)

	apply := func(line string) {
		_, err := feed.Scan(context.Background(), logger, strings.NewReader(line), book, feed.Options{})
		require.NoError(t, err)
	}

	apply("A,1,B,10,99.0")
	require.Equal(t, 99.0, book.TopOfBook(domain.Bid))
	require.True(t, math.IsNaN(book.TopOfBook(domain.Ask)))

	apply("A,2,S,5,100.0")
	require.Equal(t, 100.0, book.TopOfBook(domain.Ask))

	apply("M,1,B,20,99.0")
	o, ok := book.OrderByID(1)
	require.True(t, ok)
	require.EqualValues(t, 20, o.Qty())

	apply("X,2")
	require.True(t, math.IsNaN(book.TopOfBook(domain.Ask)))

	apply("T,5,99.0")
	apply("T,3,99.0")
	require.EqualValues(t, 8, book.LastTrade.Qty)
	require.Equal(t, domain.FloatToPrice(99.0), book.LastTrade.Price)

	before := book.Stats.NumUnknownMod
	apply("X,999")
	require.Equal(t, before+1, book.Stats.NumUnknownMod)

	book.AssertInvariants()
}
