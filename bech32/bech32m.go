package bech32

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// EncodeM encodes hrp and data as a standard checksummed bech32m string.
// This is a companion to the checksum-less BOLT 12 envelope in envelope.go, useful
// for test vectors and interop with tooling that expects a real bech32m
// checksum; it is not used anywhere in the BOLT 12 encode/decode path.
func EncodeM(hrp string, data []byte) (string, error) {
	words, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.EncodeM(hrp, words)
}

// DecodeM decodes a standard checksummed bech32m string, the companion to
// EncodeM.
func DecodeM(s string) (string, []byte, error) {
	hrp, words, encoding, err := bech32.DecodeGeneric(s)
	if err != nil {
		return "", nil, err
	}
	if encoding != bech32.Bech32m {
		return "", nil, ErrWrongEncoding
	}

	data, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, data, nil
}
