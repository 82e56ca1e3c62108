package orderbook

import (
	"github.com/akshitanchan/lob-core/internal/domain"
	"github.com/akshitanchan/lob-core/internal/intrusive"
	"github.com/akshitanchan/lob-core/internal/pool"
)

// priceBook is the price-ordered list of levels for one side, plus the
// price->level index that lets AddOrder short-circuit the common
// same-price case.
type priceBook struct {
	side domain.Side
	top  *PriceLevel
	last *PriceLevel

	byPrice map[domain.Ticks]*PriceLevel
	levels  *pool.Pool[PriceLevel]
}

func newPriceBook(side domain.Side, levels *pool.Pool[PriceLevel]) *priceBook {
	return &priceBook{
		side:    side,
		byPrice: make(map[domain.Ticks]*PriceLevel, 128),
		levels:  levels,
	}
}

// AddOrder files o into the level for its price, creating that level if
// this is the first order seen at that price.
func (b *priceBook) AddOrder(o *Order) {
	level := b.getOrCreateLevel(o.price)
	level.AddOrder(o)
}

// getOrCreateLevel implements the insertion-ordering algorithm: map lookup
// first, then a linear scan from top for the correct splice point, falling
// back to appending at the tail.
func (b *priceBook) getOrCreateLevel(price domain.Ticks) *PriceLevel {
	if lvl, ok := b.byPrice[price]; ok {
		return lvl
	}

	newLevel := b.levels.Construct()
	newLevel.mapKey = price

	if b.top == nil {
		b.top = newLevel
		b.last = newLevel
		b.byPrice[price] = newLevel
		return newLevel
	}

	for iter := b.top; iter != nil; iter = priceLevelNode(iter).Next() {
		var worse bool
		if b.side == domain.Bid {
			worse = iter.GetPrice() < price
		} else {
			worse = iter.GetPrice() > price
		}
		if !worse {
			continue
		}

		intrusive.InsertBefore(newLevel, iter, priceLevelNode)
		if priceLevelNode(newLevel).Prev() == nil {
			b.top = newLevel
		}
		b.byPrice[price] = newLevel
		return newLevel
	}

	intrusive.InsertAfter(newLevel, b.last, priceLevelNode)
	b.last = newLevel
	b.byPrice[price] = newLevel
	return newLevel
}

// CancelOrder removes o from its level, and frees the level itself (and its
// map entry) if that was the last order resting there.
func (b *priceBook) CancelOrder(o *Order) {
	level := o.level
	level.CancelOrder(o)
	if !level.Empty() {
		return
	}

	if b.top == level {
		b.top = priceLevelNode(level).Next()
	}
	if b.last == level {
		b.last = priceLevelNode(level).Prev()
	}

	intrusive.Detach(level, priceLevelNode)
	delete(b.byPrice, level.mapKey)
	b.levels.Destroy(level)
}

// TopOfBook returns the best price and true, or (0, false) if the side is
// empty.
func (b *priceBook) TopOfBook() (domain.Ticks, bool) {
	if b.top == nil {
		return 0, false
	}
	return b.top.GetPrice(), true
}

func (b *priceBook) Empty() bool { return b.top == nil }

// walk visits levels from best to worst, stopping early if fn returns
// false.
func (b *priceBook) walk(fn func(*PriceLevel) bool) {
	for lvl := b.top; lvl != nil; lvl = priceLevelNode(lvl).Next() {
		if !fn(lvl) {
			return
		}
	}
}
