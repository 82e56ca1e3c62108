// Package orderbook implements the core limit order book: a two-sided,
// price-ordered, time-prioritized structure that observes Add/Modify/Cancel
// and Trade events. It holds no matching or execution state of its own —
// trades are absorbed as a reported summary, never matched against resting
// orders.
package orderbook

import (
	"math"

	"github.com/akshitanchan/lob-core/internal/domain"
	"github.com/akshitanchan/lob-core/internal/pool"
)

// LastTrade is the (price, qty) tuple absorbed from observed Trade events.
type LastTrade struct {
	Price domain.Ticks
	Qty   uint32
	Set   bool
}

// Book is the façade tying the two sides together: two PriceBooks plus an
// order-id index, backed by pooled Order/PriceLevel allocation.
type Book struct {
	sides     [2]*priceBook
	orders    map[uint32]*Order
	orderPool *pool.Pool[Order]

	Stats     InvalidStats
	LastTrade LastTrade
}

// New creates an empty book with pools sized for typical resting-order and
// price-level counts.
func New() *Book {
	b := &Book{
		orders:    make(map[uint32]*Order, 8192),
		orderPool: pool.New[Order](8192),
	}
	b.sides[domain.Bid] = newPriceBook(domain.Bid, pool.New[PriceLevel](128))
	b.sides[domain.Ask] = newPriceBook(domain.Ask, pool.New[PriceLevel](128))
	return b
}

// side returns the PriceBook for s.
func (b *Book) side(s domain.Side) *priceBook { return b.sides[s] }

// IsCross reports whether the book is currently crossed: both sides
// non-empty and the top bid is at or above the top ask.
func (b *Book) IsCross() bool {
	bidTop, bidOK := b.sides[domain.Bid].TopOfBook()
	askTop, askOK := b.sides[domain.Ask].TopOfBook()
	if !bidOK || !askOK {
		return false
	}
	return bidTop >= askTop
}

// AddOrder inserts a new resting order. Returns false (and bumps
// NumDuplicateOrder) if id is already resident; no other state changes in
// that case. The cross observation is sampled against pre-event state.
func (b *Book) AddOrder(id uint32, side domain.Side, qty uint32, price domain.Ticks) bool {
	if b.IsCross() {
		b.Stats.NumCrossed++
	}

	if _, exists := b.orders[id]; exists {
		b.Stats.NumDuplicateOrder++
		return false
	}

	o := b.orderPool.Construct()
	o.id = id
	o.side = side
	o.qty = qty
	o.price = price
	b.orders[id] = o

	b.side(side).AddOrder(o)
	return true
}

// AmendOrder changes an existing order's side/qty/price. Returns false (and
// bumps NumUnknownMod) if id has no resting order. A side or price change
// forfeits time priority; a qty-only change mutates in place.
func (b *Book) AmendOrder(id uint32, side domain.Side, qty uint32, price domain.Ticks) bool {
	if b.IsCross() {
		b.Stats.NumCrossed++
	}

	o, ok := b.orders[id]
	if !ok {
		b.Stats.NumUnknownMod++
		return false
	}

	if o.side == side && o.price == price {
		if o.qty == qty {
			return true // no change
		}
		o.level.totalQty += qty - o.qty
		o.qty = qty
		return true
	}

	b.side(o.side).CancelOrder(o)
	o.side = side
	o.qty = qty
	o.price = price
	b.side(side).AddOrder(o)
	return true
}

// CancelOrder removes a resting order and returns it to the pool. Returns
// false (and bumps NumUnknownMod) if id has no resting order.
func (b *Book) CancelOrder(id uint32) bool {
	o, ok := b.orders[id]
	if !ok {
		b.Stats.NumUnknownMod++
		return false
	}

	b.side(o.side).CancelOrder(o)
	delete(b.orders, id)
	b.orderPool.Destroy(o)
	return true
}

// ObserveTrade absorbs a Trade event into LastTrade: quantities accumulate
// when the incoming price matches the stored price, otherwise both fields
// are replaced. Resting orders are never touched.
func (b *Book) ObserveTrade(qty uint32, price domain.Ticks) {
	if b.LastTrade.Set && b.LastTrade.Price == price {
		b.LastTrade.Qty += qty
		return
	}
	b.LastTrade = LastTrade{Price: price, Qty: qty, Set: true}
}

// TopOfBook returns the best price on s as a float64, or NaN if that side
// is empty.
func (b *Book) TopOfBook(s domain.Side) float64 {
	top, ok := b.side(s).TopOfBook()
	if !ok {
		return math.NaN()
	}
	return domain.PriceToFloat(top)
}

// OrderByID exposes the resting order for id, for the formatter and tests.
func (b *Book) OrderByID(id uint32) (*Order, bool) {
	o, ok := b.orders[id]
	return o, ok
}

// WalkSide visits s's levels from best to worst, stopping early if fn
// returns false. This is the sole depth-iteration primitive the core
// exposes; textual layout belongs to the format package.
func (b *Book) WalkSide(s domain.Side, fn func(*PriceLevel) bool) {
	b.side(s).walk(fn)
}

// WalkLevel visits a level's resting orders head-to-tail, stopping early if
// fn returns false.
func WalkLevel(l *PriceLevel, fn func(*Order) bool) {
	for o := l.head; o != nil; o = orderNode(o).Next() {
		if !fn(o) {
			return
		}
	}
}

// ID, Side, Qty and Price expose an Order's fields read-only to callers
// outside the package (the format package, tests, and the metrics layer).
func (o *Order) ID() uint32          { return o.id }
func (o *Order) Side() domain.Side   { return o.side }
func (o *Order) Qty() uint32         { return o.qty }
func (o *Order) Price() domain.Ticks { return o.price }

// AssertInvariants walks the whole book and panics on the first structural
// violation it finds. Intended for tests and an optional --debug-assert
// CLI mode, never the hot path.
func (b *Book) AssertInvariants() {
	for _, s := range [...]domain.Side{domain.Bid, domain.Ask} {
		pb := b.side(s)
		var prev *PriceLevel
		seen := make(map[domain.Ticks]*PriceLevel, len(pb.byPrice))

		for lvl := pb.top; lvl != nil; lvl = priceLevelNode(lvl).Next() {
			if lvl.Empty() {
				panic("orderbook: empty level retained in book")
			}
			if prev != nil {
				switch s {
				case domain.Bid:
					if !(prev.GetPrice() > lvl.GetPrice()) {
						panic("orderbook: bid levels not strictly decreasing")
					}
				case domain.Ask:
					if !(prev.GetPrice() < lvl.GetPrice()) {
						panic("orderbook: ask levels not strictly increasing")
					}
				}
			}
			seen[lvl.mapKey] = lvl

			var sum uint32
			for o := lvl.head; o != nil; o = orderNode(o).Next() {
				if o.level != lvl {
					panic("orderbook: order's level back-reference inconsistent")
				}
				if o.price != lvl.GetPrice() {
					panic("orderbook: order price does not match its level")
				}
				sum += o.qty
			}
			if sum != lvl.totalQty {
				panic("orderbook: level totalQty does not match FIFO sum")
			}
			prev = lvl
		}

		if len(seen) != len(pb.byPrice) {
			panic("orderbook: price->level map has stale or missing entries")
		}
		for price, lvl := range pb.byPrice {
			if seen[price] != lvl {
				panic("orderbook: price->level map entry does not match live level")
			}
		}
	}

	for id, o := range b.orders {
		if o.id != id {
			panic("orderbook: order-id map key does not match order id")
		}
		if o.level == nil {
			panic("orderbook: resting order has nil level")
		}
	}
}
