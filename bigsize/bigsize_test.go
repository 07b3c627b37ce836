package bigsize

import (
	"bytes"
	"errors"
	"testing"
)

func TestBigSizeRoundTrip(t *testing.T) {
	tests := []uint64{
		0, 0xfc, 0xfd, 0xffff, 0x10000, 0xffffffff, 0x100000000,
		0xffffffffffffffff,
	}

	var buf [8]byte
	for _, v := range tests {
		var out bytes.Buffer
		if err := EncodeBigSize(&out, v, &buf); err != nil {
			t.Fatalf("encode %d: %v", v, err)
		}

		if n := SizeBigSize(v); n != out.Len() {
			t.Fatalf("SizeBigSize(%d) = %d, wrote %d", v, n,
				out.Len())
		}

		got, err := DecodeBigSize(&out, &buf)
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip %d got %d", v, got)
		}
	}
}

func TestBigSizeNonMinimal(t *testing.T) {
	var buf [8]byte

	cases := []struct {
		name string
		data []byte
	}{
		{"0xfc under 0xfd prefix", []byte{0xfd, 0x00, 0xfc}},
		{"0xffff under 0xfe prefix", []byte{0xfe, 0x00, 0x00, 0xff, 0xff}},
		{
			"0xffffffff under 0xff prefix",
			[]byte{0xff, 0, 0, 0, 0, 0xff, 0xff, 0xff, 0xff},
		},
	}

	for _, c := range cases {
		_, err := DecodeBigSize(bytes.NewReader(c.data), &buf)
		if !errors.Is(err, ErrNonMinimal) {
			t.Fatalf("%s: expected ErrNonMinimal, got %v", c.name,
				err)
		}
	}
}

func TestBigSizeTruncated(t *testing.T) {
	var buf [8]byte

	cases := [][]byte{
		{},
		{0xfd},
		{0xfd, 0x01},
		{0xfe, 0x00, 0x01, 0x00},
		{0xff, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00},
	}

	for _, c := range cases {
		_, err := DecodeBigSize(bytes.NewReader(c), &buf)
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("data %x: expected ErrTruncated, got %v", c,
				err)
		}
	}
}

func TestTU64ZeroIsEmpty(t *testing.T) {
	var buf [8]byte
	var out bytes.Buffer

	if err := EncodeTU64(&out, 0, &buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected empty encoding of 0, got %x", out.Bytes())
	}
}

func TestTU64TooLong(t *testing.T) {
	var buf [8]byte
	data := bytes.Repeat([]byte{0x01}, 9)

	_, err := DecodeTU64(bytes.NewReader(data), 9, &buf)
	if !errors.Is(err, ErrTu64TooLong) {
		t.Fatalf("expected ErrTu64TooLong, got %v", err)
	}
}

func TestTU64RoundTrip(t *testing.T) {
	var buf [8]byte

	values := []uint64{0, 1, 0xff, 0x100, 0xffffffffffffffff}
	for _, v := range values {
		var out bytes.Buffer
		if err := EncodeTU64(&out, v, &buf); err != nil {
			t.Fatalf("encode %d: %v", v, err)
		}

		got, err := DecodeTU64(&out, SizeTU64(v), &buf)
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip %d got %d", v, got)
		}
	}
}

func TestTU64TolerantOfLeadingZeroes(t *testing.T) {
	var buf [8]byte
	data := []byte{0x00, 0x00, 0x01}

	got, err := DecodeTU64(bytes.NewReader(data), len(data), &buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}
