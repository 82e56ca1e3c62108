// Package domain holds the value types shared across the book core, the
// line parser, and the CLI: sides, fixed-point prices, and the typed event
// union the parser hands to the order book.
package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of ticks per unit price. Prices arrive as decimal
// literals and are quantized to integer ticks immediately on parse, so the
// book never keys a map on a float64 and never compares prices for bitwise
// float equality.
const PriceScale = 10_000

// Ticks is a price expressed as an integer multiple of 1/PriceScale.
type Ticks int64

// PriceToFloat converts ticks back to a float64 for display and for the
// book's float64 top-of-book query.
func PriceToFloat(t Ticks) float64 {
	return float64(t) / float64(PriceScale)
}

// FloatToPrice quantizes a float64 price to ticks. Prefer TicksFromDecimal
// when the price originates from parsed text, since it avoids a float
// round-trip entirely.
func FloatToPrice(f float64) Ticks {
	return Ticks(math.Round(f * PriceScale))
}

// TicksFromDecimal quantizes a decimal price to ticks without ever routing
// the value through float64.
func TicksFromDecimal(d decimal.Decimal) Ticks {
	scaled := d.Mul(decimal.NewFromInt(PriceScale)).Round(0)
	return Ticks(scaled.IntPart())
}

// Decimal renders ticks back as an exact decimal.Decimal, for formatting
// without float artifacts.
func (t Ticks) Decimal() decimal.Decimal {
	return decimal.New(int64(t), 0).Div(decimal.NewFromInt(PriceScale))
}

// Side is one of Bid or Ask.
type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	switch s {
	case Bid:
		return "B"
	case Ask:
		return "S"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

// ParseSide maps the reference grammar's side character to a Side.
func ParseSide(c byte) (Side, bool) {
	switch c {
	case 'B':
		return Bid, true
	case 'S':
		return Ask, true
	default:
		return 0, false
	}
}

// EventKind tags the variant of Event carried over the wire.
type EventKind int

const (
	EventAdd EventKind = iota
	EventModify
	EventCancel
	EventTrade
)

// Event is the typed union the line parser produces and the book consumes.
// Not every field is meaningful for every Kind: Cancel only uses ID; Trade
// only uses Qty and Price.
type Event struct {
	Kind  EventKind
	ID    uint32
	Side  Side
	Qty   uint32
	Price Ticks
}
