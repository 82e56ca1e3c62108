package orderbook

// InvalidStats tallies the six classes of anomalous event this core
// recognizes. Every counter is monotonically non-decreasing for the
// lifetime of a Book; none is ever reset.
type InvalidStats struct {
	// NumCorruptedMsg counts structurally malformed lines and fields that
	// fail basic sanity (zero id, zero qty, unknown side, unparseable
	// number). Bumped by the feed scanner from the line parser's
	// classification, not by the book itself.
	NumCorruptedMsg uint64

	// NumDuplicateOrder counts Add events whose id is already resident.
	NumDuplicateOrder uint64

	// NumUnknownTrade is declared for symmetry with the counter taxonomy
	// this core was handed, but is never incremented: no trade-side
	// validation (e.g. a trade price matching neither top) is defined here,
	// and none is invented. Left dead deliberately.
	NumUnknownTrade uint64

	// NumUnknownMod counts Modify or Cancel events targeting an id with no
	// resting order. Shared between the two operations, not split.
	NumUnknownMod uint64

	// NumCrossed counts Add/Modify events observed while the book was
	// already crossed, evaluated against pre-event state only.
	NumCrossed uint64

	// NumInvalidNeg counts events whose price parsed successfully but is
	// <= 0.
	NumInvalidNeg uint64
}
