package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akshitanchan/lob-core/internal/domain"
	"github.com/akshitanchan/lob-core/internal/orderbook"
)

func TestSnapshotEmptyBook(t *testing.T) {
	b := orderbook.New()
	var buf bytes.Buffer
	Snapshot(&buf, b)

	out := buf.String()
	if strings.Count(out, "* EMPTY *") != 3 {
		t.Fatalf("expected 3 empty markers (bid, ask, mid-quote), got:\n%s", out)
	}
}

func TestSnapshotWithOrdersAndTrade(t *testing.T) {
	b := orderbook.New()
	b.AddOrder(1, domain.Bid, 10, domain.FloatToPrice(99.0))
	b.AddOrder(2, domain.Ask, 5, domain.FloatToPrice(100.0))
	b.ObserveTrade(3, domain.FloatToPrice(99.5))

	var buf bytes.Buffer
	Snapshot(&buf, b)
	out := buf.String()

	if !strings.Contains(out, "10 @ 99.0000 - [(1, 10)]") {
		t.Fatalf("missing bid depth line:\n%s", out)
	}
	if !strings.Contains(out, "5 @ 100.0000 - [(2, 5)]") {
		t.Fatalf("missing ask depth line:\n%s", out)
	}
	if !strings.Contains(out, "99.5000") {
		t.Fatalf("missing mid-quote line:\n%s", out)
	}
	if !strings.Contains(out, "*** Last trade -> 3 @ 99.5000") {
		t.Fatalf("missing last trade line:\n%s", out)
	}
}

func TestStatsLine(t *testing.T) {
	var buf bytes.Buffer
	Stats(&buf, orderbook.InvalidStats{NumCorruptedMsg: 2, NumCrossed: 1})
	out := buf.String()
	if !strings.Contains(out, "num_corrupted_msg=2") || !strings.Contains(out, "num_crossed=1") {
		t.Fatalf("unexpected stats line: %s", out)
	}
}
