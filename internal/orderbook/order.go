package orderbook

import (
	"github.com/akshitanchan/lob-core/internal/domain"
	"github.com/akshitanchan/lob-core/internal/intrusive"
)

// Order is a single resting instruction, allocated from the book's order
// pool and linked into exactly one PriceLevel's FIFO at a time.
type Order struct {
	node intrusive.Node[Order]

	id    uint32
	side  domain.Side
	qty   uint32
	price domain.Ticks
	level *PriceLevel
}

func orderNode(o *Order) *intrusive.Node[Order] { return &o.node }
