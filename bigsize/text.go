package bigsize

import (
	"encoding/hex"
	"unicode/utf8"
)

// EncodeHex returns the lowercase hex encoding of b, for diagnostics and
// test vectors. It is a thin wrapper: BOLT 12 has no wire use for hex, but
// implementers routinely need it to compare against spec test vectors.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex decodes a hex string back into bytes.
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// ValidUTF8 reports whether b is a well-formed UTF-8 string, as required of
// every string-valued TLV field (descriptions, issuers, payer notes, ...).
func ValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}
