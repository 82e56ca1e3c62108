package orderbook

import (
	"github.com/akshitanchan/lob-core/internal/domain"
	"github.com/akshitanchan/lob-core/internal/intrusive"
)

// PriceLevel aggregates every resting order at one price on one side. It
// has no stored price field of its own; its price is defined by head's
// price, matching the construction order in PriceBook.AddOrder where a
// fresh level is created and linked into the side's list before any order
// has been placed into it.
type PriceLevel struct {
	node intrusive.Node[PriceLevel]

	totalQty uint32
	head     *Order
	tail     *Order

	// mapKey is the price this level was filed under in its PriceBook's
	// price->level map, kept so the level can erase its own entry in O(1)
	// without scanning the map for its own pointer.
	mapKey domain.Ticks
}

func priceLevelNode(l *PriceLevel) *intrusive.Node[PriceLevel] { return &l.node }

// AddOrder appends o to the FIFO tail and folds its quantity into the
// running total.
func (l *PriceLevel) AddOrder(o *Order) {
	o.level = l
	l.totalQty += o.qty

	if l.tail == nil {
		l.head = o
		l.tail = o
		return
	}

	intrusive.InsertAfter(o, l.tail, orderNode)
	l.tail = o
}

// CancelOrder detaches o from the FIFO, advancing head/tail if o was an
// endpoint. It does not decide whether the level itself should now be
// freed; that is PriceBook.CancelOrder's responsibility.
func (l *PriceLevel) CancelOrder(o *Order) {
	on := orderNode(o)
	if l.head == o {
		l.head = on.Next()
	}
	if l.tail == o {
		l.tail = on.Prev()
	}

	l.totalQty -= o.qty
	intrusive.Detach(o, orderNode)
}

// Empty reports whether the level has no resting orders left.
func (l *PriceLevel) Empty() bool {
	return l.head == nil
}

// GetPrice returns the level's price. Precondition: non-empty.
func (l *PriceLevel) GetPrice() domain.Ticks {
	return l.head.price
}

// TotalQty returns the running sum of resident order quantities.
func (l *PriceLevel) TotalQty() uint32 {
	return l.totalQty
}
