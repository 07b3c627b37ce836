package tlv

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestStreamRoundTrip(t *testing.T) {
	entries := []Entry{
		{Type: 1, Value: []byte("a")},
		{Type: 3, Value: []byte{}},
		{Type: 1000, Value: bytes.Repeat([]byte{0x42}, 300)},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, entries); err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	for i := range entries {
		if got[i].Type != entries[i].Type {
			t.Fatalf("entry %d type = %d, want %d", i, got[i].Type,
				entries[i].Type)
		}
		if !bytes.Equal(got[i].Value, entries[i].Value) &&
			!(len(got[i].Value) == 0 && len(entries[i].Value) == 0) {
			t.Fatalf("entry %d value mismatch", i)
		}
	}
}

func TestStreamPreservesEncounterOrder(t *testing.T) {
	// Unknown odd types are passed through by the decoder in whatever
	// order they were written, even if that isn't ascending - ordering
	// enforcement belongs to the message adapter, not this package.
	entries := []Entry{
		{Type: 5, Value: []byte("b")},
		{Type: 1, Value: []byte("a")},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, entries); err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []uint64{5, 1}
	for i, e := range got {
		if e.Type != want[i] {
			t.Fatalf("entry %d type = %d, want %d", i, e.Type,
				want[i])
		}
	}
}

func TestStreamEmpty(t *testing.T) {
	got, err := Decode(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %v", got)
	}
}

func TestStreamTruncatedValue(t *testing.T) {
	// type=1 (1 byte), length=10 (1 byte), but only 2 value bytes follow.
	data := []byte{0x01, 0x0a, 0xaa, 0xbb}

	_, err := Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestStreamTruncatedMidType(t *testing.T) {
	// 0xfd signals a 2-byte type follows, but the stream ends there.
	data := []byte{0xfd, 0x01}

	_, err := Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestSortEntries(t *testing.T) {
	entries := []Entry{
		{Type: 5, Value: nil},
		{Type: 1, Value: nil},
		{Type: 3, Value: nil},
	}

	SortEntries(entries)

	want := []uint64{1, 3, 5}
	var got []uint64
	for _, e := range entries {
		got = append(got, e.Type)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
