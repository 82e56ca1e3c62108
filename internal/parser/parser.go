// Package parser converts a single raw feed line into a typed domain.Event,
// or classifies why it could not be converted. It never touches the book;
// the classification it returns is the caller's to fold into
// orderbook.InvalidStats.
package parser

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/akshitanchan/lob-core/internal/domain"
)

// Classification names the InvalidStats bucket a rejected line belongs to.
// It is meaningless when Parse succeeds.
type Classification int

const (
	// ClassNone means parsing succeeded; no counter should be bumped.
	ClassNone Classification = iota
	// ClassCorrupted covers structurally malformed lines and fields that
	// fail basic sanity: zero id, zero qty, unknown side, unparseable
	// number, unknown message type.
	ClassCorrupted
	// ClassInvalidNeg covers a price that parsed but is <= 0.
	ClassInvalidNeg
)

// Parse splits "<TypeChar>,<payload>" on the first comma and dispatches on
// TypeChar with a two-stage discipline: parse every field fully, then
// validate. Fields are sanity-checked left to right, so a non-positive
// price is only reported as ClassInvalidNeg once every earlier integer
// field has already passed its own check.
func Parse(line string) (domain.Event, Classification) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 3 || line[1] != ',' {
		return domain.Event{}, ClassCorrupted
	}

	typeChar := line[0]
	payload := line[2:]

	switch typeChar {
	case 'A':
		return parseOrderMsg(domain.EventAdd, payload)
	case 'M':
		return parseOrderMsg(domain.EventModify, payload)
	case 'X':
		return parseOrderMsg(domain.EventCancel, payload)
	case 'T':
		return parseTrade(payload)
	default:
		return domain.Event{}, ClassCorrupted
	}
}

// parseOrderMsg parses the shared 4-field Add/Modify/Cancel payload:
// <id>,<side>,<qty>,<price>. A Cancel may also carry the id alone
// ("X,<id>"); when it carries all four fields they are scanned and
// validated like any other, and the feed scanner passes only the id on to
// orderbook.Book.CancelOrder.
func parseOrderMsg(kind domain.EventKind, payload string) (domain.Event, Classification) {
	fields := strings.Split(payload, ",")
	if kind == domain.EventCancel && len(fields) == 1 {
		id, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil || id == 0 {
			return domain.Event{}, ClassCorrupted
		}
		return domain.Event{Kind: kind, ID: uint32(id)}, ClassNone
	}
	if len(fields) != 4 {
		return domain.Event{}, ClassCorrupted
	}

	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil || id == 0 {
		return domain.Event{}, ClassCorrupted
	}

	side, ok := domain.ParseSide(sideByte(fields[1]))
	if !ok {
		return domain.Event{}, ClassCorrupted
	}

	qty, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil || qty == 0 {
		return domain.Event{}, ClassCorrupted
	}

	price, class := parsePrice(fields[3])
	if class != ClassNone {
		return domain.Event{}, class
	}

	return domain.Event{
		Kind:  kind,
		ID:    uint32(id),
		Side:  side,
		Qty:   uint32(qty),
		Price: price,
	}, ClassNone
}

// parseTrade parses the 2-field Trade payload: <qty>,<price>. A trade's qty
// is not constrained to be non-zero, so only a parse failure is corrupted;
// price still goes through the same sign check as every other event.
func parseTrade(payload string) (domain.Event, Classification) {
	fields := strings.Split(payload, ",")
	if len(fields) != 2 {
		return domain.Event{}, ClassCorrupted
	}

	qty, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return domain.Event{}, ClassCorrupted
	}

	price, class := parsePrice(fields[1])
	if class != ClassNone {
		return domain.Event{}, class
	}

	return domain.Event{
		Kind:  domain.EventTrade,
		Qty:   uint32(qty),
		Price: price,
	}, ClassNone
}

// parsePrice parses a decimal literal with shopspring/decimal, avoiding
// float round-trip edge cases, and quantizes to ticks. A price that fails
// to parse at all is corrupted; one that parses but is <= 0 is
// ClassInvalidNeg.
func parsePrice(field string) (domain.Ticks, Classification) {
	d, err := decimal.NewFromString(field)
	if err != nil {
		return 0, ClassCorrupted
	}
	if !d.IsPositive() {
		return 0, ClassInvalidNeg
	}
	return domain.TicksFromDecimal(d), ClassNone
}

func sideByte(field string) byte {
	if len(field) != 1 {
		return 0
	}
	return field[0]
}
