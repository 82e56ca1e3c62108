package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akshitanchan/lob-core/internal/domain"
	"github.com/akshitanchan/lob-core/internal/orderbook"
)

func TestObserveAndScrape(t *testing.T) {
	book := orderbook.New()
	book.AddOrder(1, domain.Bid, 10, domain.FloatToPrice(99.0))
	book.AddOrder(2, domain.Ask, 5, domain.FloatToPrice(100.0))
	book.CancelOrder(999) // bumps NumUnknownMod

	c := New()
	c.Observe(book)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `lobcore_book_invalid_events_total{class="unknown_mod"} 1`) {
		t.Fatalf("missing unknown_mod counter in scrape:\n%s", body)
	}
	if !strings.Contains(body, `lobcore_book_price_levels{side="bid"} 1`) {
		t.Fatalf("missing bid depth gauge in scrape:\n%s", body)
	}
	if !strings.Contains(body, "lobcore_book_resting_orders 2") {
		t.Fatalf("missing resting orders gauge in scrape:\n%s", body)
	}
}

func TestObserveIsIdempotentForCounters(t *testing.T) {
	book := orderbook.New()
	book.CancelOrder(1) // unknown id, bumps NumUnknownMod once

	c := New()
	c.Observe(book)
	c.Observe(book) // no new events; counter must not double-count

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `lobcore_book_invalid_events_total{class="unknown_mod"} 1`) {
		t.Fatalf("expected counter to stay at 1 across repeated Observe calls:\n%s", body)
	}
}
