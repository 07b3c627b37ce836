// Package tlv implements the BOLT 12 TLV stream: a sequence of
// type-length-value records framed with BigSize, carrying opaque byte
// values. Ordering, duplicate detection, and range-based accept/reject
// rules are the caller's responsibility (see the bolt12 package's message
// adapters); this package only frames and unframes entries.
package tlv

import (
	"errors"
	"io"
	"sort"

	"github.com/lightningnetwork/lnd/bolt12/bigsize"
)

// Entry is a single TLV record: an unsigned type, and its raw value. The
// length field is implicit in len(Value) and is never carried separately.
type Entry struct {
	Type  uint64
	Value []byte
}

// SerializedLen returns the number of bytes Serialize will write for e.
func (e Entry) SerializedLen() int {
	return bigsize.SizeBigSize(e.Type) +
		bigsize.SizeBigSize(uint64(len(e.Value))) + len(e.Value)
}

// Serialize writes BigSize(type) || BigSize(length) || value to w.
func (e Entry) Serialize(w io.Writer) error {
	var buf [8]byte

	if err := bigsize.EncodeBigSize(w, e.Type, &buf); err != nil {
		return err
	}
	if err := bigsize.EncodeBigSize(w, uint64(len(e.Value)), &buf); err != nil {
		return err
	}
	_, err := w.Write(e.Value)
	return err
}

// SortEntries sorts entries by ascending type, in place, and also returns
// the slice for convenience. Encode does not sort on its own; callers
// assemble entries in whatever order is convenient and must sort (or
// build in order) before calling Encode.
func SortEntries(entries []Entry) []Entry {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Type < entries[j].Type
	})
	return entries
}

// Encode writes entries to w in the order given. The caller is
// responsible for ensuring entries are sorted by ascending type; Encode
// performs no reordering or validation of its own.
func Encode(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if err := e.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads entries from r until EOF. A clean end of stream (no bytes
// left where a new entry's type would start) ends decoding successfully;
// running out of bytes in the middle of a type, length, or value is
// ErrTruncated. Decode preserves encounter order; it does not sort, dedupe,
// or validate type ranges - those are the message adapter's job, since
// the rules differ per message kind and per the even/odd "it's OK to be
// odd" convention.
func Decode(r io.Reader) ([]Entry, error) {
	var (
		entries []Entry
		buf     [8]byte
	)

	for {
		var first [1]byte
		n, err := io.ReadFull(r, first[:])
		if err != nil && n == 0 {
			break
		}
		if err != nil {
			return nil, ErrTruncated
		}

		typ, err := bigsize.ContinueBigSize(first[0], r, &buf)
		if errors.Is(err, bigsize.ErrTruncated) {
			return nil, ErrTruncated
		}
		if err != nil {
			return nil, err
		}

		length, err := bigsize.DecodeBigSize(r, &buf)
		if errors.Is(err, bigsize.ErrTruncated) {
			return nil, ErrTruncated
		}
		if err != nil {
			return nil, err
		}

		value := make([]byte, length)
		if _, err := io.ReadFull(r, value); err != nil {
			return nil, ErrTruncated
		}

		entries = append(entries, Entry{Type: typ, Value: value})
	}

	return entries, nil
}
