package feedgen

import (
	"context"
	"strings"
	"testing"

	"cosmossdk.io/log"

	"github.com/akshitanchan/lob-core/internal/feed"
	"github.com/akshitanchan/lob-core/internal/orderbook"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	cfg := DefaultConfig(42, 200)
	a := New(cfg).Lines()
	b := New(cfg).Lines()

	if len(a) != len(b) {
		t.Fatalf("line counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("line %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestGeneratedFeedIsWellFormedOrClassified(t *testing.T) {
	cfg := DefaultConfig(7, 500)
	lines := New(cfg).Lines()

	book := orderbook.New()
	r := strings.NewReader(strings.Join(lines, "\n"))
	n, err := feed.Scan(context.Background(), log.NewNopLogger(), r, book, feed.Options{})
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if int(n) != len(lines) {
		t.Fatalf("scanned %d lines, want %d", n, len(lines))
	}
	book.AssertInvariants()

	total := book.Stats.NumCorruptedMsg + book.Stats.NumInvalidNeg
	if total == 0 {
		t.Fatal("expected the malformed-line injection to trip at least one counter")
	}
}
