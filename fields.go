package bolt12

import "github.com/lightningnetwork/lnd/bolt12/tlv"

// classifyEntries validates that entries are in strictly ascending type
// order with no duplicates, then splits them into the subset whose type is
// in defined (returned as a type-keyed map for the caller's field-by-field
// lookup) and the unknown odd types, which are passed through unchanged so
// a later Encode can reproduce them (spec §9, "preserve original
// encounter order" - for a valid ascending stream, encounter order and
// type order coincide, so re-sorting by type on re-encode reproduces it).
// An unknown even type is a parse error (spec §3, §9's Open Question,
// decided in DESIGN.md).
func classifyEntries(
	entries []tlv.Entry, defined map[uint64]bool) (
	map[uint64]tlv.Entry, []tlv.Entry, error) {

	byType := make(map[uint64]tlv.Entry, len(entries))
	var extra []tlv.Entry

	var lastType uint64
	for i, e := range entries {
		if i > 0 {
			if e.Type == lastType {
				return nil, nil, ErrDuplicateType
			}
			if e.Type < lastType {
				return nil, nil, ErrNotAscending
			}
		}
		lastType = e.Type

		switch {
		case defined[e.Type]:
			byType[e.Type] = e
		case isOdd(e.Type):
			extra = append(extra, e)
		default:
			return nil, nil, ErrUnknownEvenType
		}
	}

	return byType, extra, nil
}

// mergeExtra combines entries with extra (unknown odd passthrough
// entries) and sorts the result by ascending type, ready for tlv.Encode.
func mergeExtra(entries []tlv.Entry, extra []tlv.Entry) []tlv.Entry {
	all := make([]tlv.Entry, 0, len(entries)+len(extra))
	all = append(all, entries...)
	all = append(all, extra...)
	return tlv.SortEntries(all)
}
