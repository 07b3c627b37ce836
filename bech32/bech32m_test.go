package bech32

import (
	"bytes"
	"testing"
)

func TestBech32mRoundTrip(t *testing.T) {
	tests := [][]byte{
		{0x00},
		{0x01, 0x02, 0x03},
		bytes.Repeat([]byte{0xff}, 64),
	}

	for _, data := range tests {
		s, err := EncodeM("lno", data)
		if err != nil {
			t.Fatalf("encode %x: %v", data, err)
		}

		hrp, got, err := DecodeM(s)
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if hrp != "lno" {
			t.Fatalf("hrp = %q, want lno", hrp)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("round trip %x got %x", data, got)
		}
	}
}

func TestBech32mDecodeRejectsChecksumlessEnvelope(t *testing.T) {
	// Encode("lno", ...) below is this package's checksum-less envelope,
	// not a real bech32 string, so DecodeM (which requires a genuine
	// bech32m checksum) must reject it.
	s, err := Encode("lno", []byte("hello"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, _, err := DecodeM(s); err == nil {
		t.Fatalf("DecodeM(%q) succeeded, want error", s)
	}
}
