package colony

// indexOpt is a niche-encoded optional slot index. Rather than a separate
// boolean, absence is encoded with the sentinel value noIndex, matching Go's
// own "not found" convention (see strings.Index) rather than a MaxInt-style
// sentinel — see DESIGN.md for why this simplification is permitted by
// spec.md §9.
type indexOpt int

const noIndex indexOpt = -1

// someIndex wraps a concrete slot index. The caller guarantees v >= 0.
func someIndex(v int) indexOpt {
	return indexOpt(v)
}

// get reports the wrapped index and whether one is present.
func (o indexOpt) get() (int, bool) {
	if o == noIndex {
		return 0, false
	}
	return int(o), true
}
