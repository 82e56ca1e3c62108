// Package feedgen produces reference-grammar feed lines for round-trip
// tests and demo/soak runs: a seeded math/rand source, a monotonically
// increasing order-id allocator, and a roll-based mix of event kinds,
// emitting raw "<Type>,<payload>" lines, some of them deliberately
// malformed or carrying a non-positive price.
package feedgen

import (
	"fmt"
	"math/rand"

	"github.com/akshitanchan/lob-core/internal/domain"
)

// Config parameterizes a generated run, narrowed to what a line generator
// (rather than a full simulation) needs.
type Config struct {
	Seed int64

	// Lines is the total number of feed lines to emit after the initial
	// seeding phase.
	Lines int

	InitialMidPrice float64 // plain price, quantized internally
	InitialSpread   float64
	PriceTickSize   float64
	MaxPriceLevels  int
	DepthPerLevel   int

	MinOrderSize uint32
	MaxOrderSize uint32

	CancelRate    float64 // probability an iteration emits a Cancel
	TradeRate     float64 // probability an iteration emits a Trade
	MalformedRate float64 // probability an iteration emits a deliberately invalid line
}

// DefaultConfig returns reasonable defaults for a demo run.
func DefaultConfig(seed int64, lines int) Config {
	return Config{
		Seed:            seed,
		Lines:           lines,
		InitialMidPrice: 100.0,
		InitialSpread:   0.04,
		PriceTickSize:   0.01,
		MaxPriceLevels:  5,
		DepthPerLevel:   3,
		MinOrderSize:    1,
		MaxOrderSize:    20,
		CancelRate:      0.20,
		TradeRate:       0.10,
		MalformedRate:   0.03,
	}
}

// Generator emits a deterministic stream of reference-grammar lines: a
// seeding phase of Adds populating both sides around the configured
// mid-price, followed by a mix of Add/Cancel/Trade lines, with a small
// chance per iteration of a deliberately malformed or invalid line. No
// Modify lines are generated. The invalid lines trip only NumCorruptedMsg
// and NumInvalidNeg: ids are never reused and every cancelled id is
// resting, so the duplicate and unknown-mod counters stay at zero, and with
// a positive InitialSpread bids are always priced below asks, so the book
// never crosses.
type Generator struct {
	cfg        Config
	rng        *rand.Rand
	nextID     uint32
	restingIDs []uint32
}

// New creates a Generator for cfg.
func New(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (g *Generator) nextOrderID() uint32 {
	g.nextID++
	return g.nextID
}

func (g *Generator) randQty() uint32 {
	if g.cfg.MaxOrderSize <= g.cfg.MinOrderSize {
		return g.cfg.MinOrderSize
	}
	span := g.cfg.MaxOrderSize - g.cfg.MinOrderSize + 1
	return g.cfg.MinOrderSize + uint32(g.rng.Int63n(int64(span)))
}

func (g *Generator) randSide() domain.Side {
	if g.rng.Float64() < 0.5 {
		return domain.Bid
	}
	return domain.Ask
}

// Lines returns the full generated feed as reference-grammar lines.
func (g *Generator) Lines() []string {
	var out []string
	out = append(out, g.seedBook()...)

	for i := 0; i < g.cfg.Lines; i++ {
		roll := g.rng.Float64()
		switch {
		case roll < g.cfg.MalformedRate:
			out = append(out, g.malformedLine())
		case roll < g.cfg.MalformedRate+g.cfg.CancelRate && len(g.restingIDs) > 0:
			idx := g.rng.Intn(len(g.restingIDs))
			id := g.restingIDs[idx]
			g.restingIDs = append(g.restingIDs[:idx], g.restingIDs[idx+1:]...)
			out = append(out, fmt.Sprintf("X,%d", id))
		case roll < g.cfg.MalformedRate+g.cfg.CancelRate+g.cfg.TradeRate:
			price := g.cfg.InitialMidPrice + g.cfg.PriceTickSize*float64(g.rng.Intn(3)-1)
			out = append(out, fmt.Sprintf("T,%d,%.4f", g.randQty(), price))
		default:
			out = append(out, g.limitLine())
		}
	}
	return out
}

// seedBook emits MaxPriceLevels*DepthPerLevel Adds on each side, fanning
// out from the configured spread around the mid-price.
func (g *Generator) seedBook() []string {
	var out []string
	halfSpread := g.cfg.InitialSpread / 2
	bestBid := g.cfg.InitialMidPrice - halfSpread
	bestAsk := g.cfg.InitialMidPrice + halfSpread

	for lvl := 0; lvl < g.cfg.MaxPriceLevels; lvl++ {
		bidPrice := bestBid - float64(lvl)*g.cfg.PriceTickSize
		askPrice := bestAsk + float64(lvl)*g.cfg.PriceTickSize
		for i := 0; i < g.cfg.DepthPerLevel; i++ {
			id := g.nextOrderID()
			out = append(out, fmt.Sprintf("A,%d,B,%d,%.4f", id, g.randQty(), bidPrice))
			g.restingIDs = append(g.restingIDs, id)

			id = g.nextOrderID()
			out = append(out, fmt.Sprintf("A,%d,S,%d,%.4f", id, g.randQty(), askPrice))
			g.restingIDs = append(g.restingIDs, id)
		}
	}
	return out
}

func (g *Generator) limitLine() string {
	id := g.nextOrderID()
	side := g.randSide()
	offset := float64(g.rng.Intn(g.cfg.MaxPriceLevels)) * g.cfg.PriceTickSize
	var price float64
	if side == domain.Bid {
		price = g.cfg.InitialMidPrice - g.cfg.InitialSpread/2 - offset
	} else {
		price = g.cfg.InitialMidPrice + g.cfg.InitialSpread/2 + offset
	}
	g.restingIDs = append(g.restingIDs, id)
	return fmt.Sprintf("A,%d,%s,%d,%.4f", id, side, g.randQty(), price)
}

// malformedLine emits one of the deliberately invalid shapes: zero id, zero
// qty, bad side char, non-positive price, or a truncated payload. The
// non-positive price counts as NumInvalidNeg, the others as
// NumCorruptedMsg.
func (g *Generator) malformedLine() string {
	switch g.rng.Intn(5) {
	case 0:
		return fmt.Sprintf("A,0,B,%d,%.4f", g.randQty(), g.cfg.InitialMidPrice)
	case 1:
		return fmt.Sprintf("A,%d,B,0,%.4f", g.nextOrderID(), g.cfg.InitialMidPrice)
	case 2:
		return fmt.Sprintf("A,%d,Q,%d,%.4f", g.nextOrderID(), g.randQty(), g.cfg.InitialMidPrice)
	case 3:
		return fmt.Sprintf("A,%d,B,%d,-%.4f", g.nextOrderID(), g.randQty(), g.cfg.InitialMidPrice)
	default:
		return fmt.Sprintf("A,%d,B,%d", g.nextOrderID(), g.randQty())
	}
}
