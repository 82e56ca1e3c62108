// Package metrics republishes the book's InvalidStats tally and basic depth
// gauges as Prometheus instruments. This is ambient observability only: the
// orderbook package itself never imports prometheus; only this layer reads
// the book's counters on each Observe call (the scan command makes one at
// every snapshot boundary) and republishes them, using a private registry,
// CounterVec/GaugeVec instruments, and a promhttp handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akshitanchan/lob-core/internal/domain"
	"github.com/akshitanchan/lob-core/internal/orderbook"
)

// classes lists the InvalidStats counter names in the order the final
// stats line enumerates them, used as the "class" label on invalidTotal.
var classes = [...]string{
	"corrupted_msg", "duplicate_order", "unknown_trade",
	"unknown_mod", "crossed", "invalid_neg",
}

// Collector holds the Prometheus instruments this core publishes, plus the
// last value pushed per counter so repeated Observe calls against
// monotonic InvalidStats totals only ever Add the delta.
type Collector struct {
	registry *prometheus.Registry

	invalidTotal *prometheus.CounterVec
	bookDepth    *prometheus.GaugeVec
	restingCount prometheus.Gauge

	lastValue [len(classes)]uint64
}

// New creates a Collector registered against its own private registry, so
// multiple Collectors (e.g. one per test) never collide on the global
// default registerer.
func New() *Collector {
	c := &Collector{registry: prometheus.NewRegistry()}

	c.invalidTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lobcore",
			Subsystem: "book",
			Name:      "invalid_events_total",
			Help:      "Total events tallied into InvalidStats, by class.",
		},
		[]string{"class"},
	)

	c.bookDepth = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "lobcore",
			Subsystem: "book",
			Name:      "price_levels",
			Help:      "Number of live price levels per side.",
		},
		[]string{"side"},
	)

	c.restingCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lobcore",
			Subsystem: "book",
			Name:      "resting_orders",
			Help:      "Number of currently resting orders across both sides.",
		},
	)

	c.registry.MustRegister(c.invalidTotal, c.bookDepth, c.restingCount)
	return c
}

// Observe republishes book's current InvalidStats and depth. Call it after
// every processed line, or on whatever cadence the caller prefers.
func (c *Collector) Observe(book *orderbook.Book) {
	stats := book.Stats
	totals := [len(classes)]uint64{
		stats.NumCorruptedMsg, stats.NumDuplicateOrder, stats.NumUnknownTrade,
		stats.NumUnknownMod, stats.NumCrossed, stats.NumInvalidNeg,
	}
	for i, class := range classes {
		if delta := totals[i] - c.lastValue[i]; delta > 0 {
			c.invalidTotal.WithLabelValues(class).Add(float64(delta))
			c.lastValue[i] = totals[i]
		}
	}

	var bidLevels, askLevels, resting int
	book.WalkSide(domain.Bid, func(l *orderbook.PriceLevel) bool {
		bidLevels++
		orderbook.WalkLevel(l, func(*orderbook.Order) bool { resting++; return true })
		return true
	})
	book.WalkSide(domain.Ask, func(l *orderbook.PriceLevel) bool {
		askLevels++
		orderbook.WalkLevel(l, func(*orderbook.Order) bool { resting++; return true })
		return true
	})
	c.bookDepth.WithLabelValues("bid").Set(float64(bidLevels))
	c.bookDepth.WithLabelValues("ask").Set(float64(askLevels))
	c.restingCount.Set(float64(resting))
}

// Handler returns the Prometheus HTTP handler for this Collector's private
// registry, to be mounted by the CLI's --metrics-addr server.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
