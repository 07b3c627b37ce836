// Package bech32 implements the BOLT 12 textual envelope: a bech32-derived
// encoding of a human-readable prefix and an arbitrary byte string that
// deliberately omits bech32's checksum and admits a continuation marker so
// that wrapped text can be reassembled before decoding.
//
// This is not bech32: there is no checksum, and the separator-finding rule
// differs (see Decode). A companion standard bech32/bech32m codec is
// exposed in bech32m.go purely as a test utility; BOLT 12 messages never
// use it.
package bech32

import "strings"

// charset is the bech32 5-bit alphabet.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// charsetRev maps an ASCII byte to its 5-bit value, or -1 if the byte is
// not part of the alphabet.
var charsetRev = func() [256]int8 {
	var rev [256]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(charset); i++ {
		rev[charset[i]] = int8(i)
	}
	return rev
}()

// DefaultMaxLength is the default upper bound on an envelope's total
// length, applied unless overridden with WithMaxLength. Spec §5 calls 64
// KiB "a reasonable default" for the text envelope.
const DefaultMaxLength = 64 * 1024

// decodeOptions holds the configurable limits for Decode.
type decodeOptions struct {
	maxLength int
}

// DecodeOption configures the behavior of Decode.
type DecodeOption func(*decodeOptions)

// WithMaxLength overrides DefaultMaxLength, the maximum accepted envelope
// length (after stripping continuation markers, before the '1' separator
// check).
func WithMaxLength(n int) DecodeOption {
	return func(o *decodeOptions) {
		o.maxLength = n
	}
}

// isValidHRP reports whether hrp is 3 or 4 lowercase ASCII letters, the
// form BOLT 12 prefixes (lno, lnr, lni) and any future prefix must take.
func isValidHRP(hrp string) bool {
	if len(hrp) < 3 || len(hrp) > 4 {
		return false
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 'a' || hrp[i] > 'z' {
			return false
		}
	}
	return true
}

// StripContinuations removes every occurrence of '+' followed by a run of
// ASCII whitespace from s. This is the wire-format line-wrapping marker:
// "+\n  " joins two halves of a message split across lines. Exported so
// callers that need to inspect a prefix of the raw string (before a full
// Decode) can normalize it the same way Decode does.
func StripContinuations(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '+' {
			b.WriteByte(s[i])
			continue
		}

		j := i + 1
		for j < len(s) && isASCIISpace(s[j]) {
			j++
		}
		if j == i+1 {
			// '+' not followed by whitespace; not a continuation
			// marker, keep it as-is.
			b.WriteByte(s[i])
			continue
		}

		// Skip the '+' and the whitespace run.
		i = j - 1
	}

	return b.String()
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// Encode regroups data into 5-bit words, zero-padding the final partial
// word, and emits "prefix1" followed by one character per word. hrp must
// be 3-4 lowercase ASCII letters. No checksum is appended.
func Encode(hrp string, data []byte) (string, error) {
	if !isValidHRP(hrp) {
		return "", ErrInvalidHRP
	}

	words, err := ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(hrp) + 1 + len(words))
	b.WriteString(hrp)
	b.WriteByte('1')
	for _, w := range words {
		b.WriteByte(charset[w])
	}

	return b.String(), nil
}

// Decode parses a BOLT 12 textual envelope, returning the human-readable
// prefix and the decoded byte payload. It strips continuation markers
// first, rejects mixed-case input, locates the separator, maps payload
// characters through the bech32 alphabet, and regroups from 5 to 8 bits
// with strict (non-padded) trailing-bit checking.
func Decode(raw string, opts ...DecodeOption) (string, []byte, error) {
	options := decodeOptions{maxLength: DefaultMaxLength}
	for _, opt := range opts {
		opt(&options)
	}

	s := StripContinuations(raw)
	if len(s) > options.maxLength {
		return "", nil, ErrTooLong
	}

	hasLower := strings.ToLower(s) != s
	hasUpper := strings.ToUpper(s) != s
	if hasLower && hasUpper {
		return "", nil, ErrMixedCase
	}
	s = strings.ToLower(s)

	sep := strings.IndexByte(s, '1')
	if sep < 0 {
		return "", nil, ErrNoSeparator
	}

	hrp := s[:sep]
	payload := s[sep+1:]
	if !isValidHRP(hrp) {
		return "", nil, ErrInvalidHRP
	}
	if len(payload) == 0 {
		return "", nil, ErrEmptyPayload
	}

	words := make([]byte, len(payload))
	for i := 0; i < len(payload); i++ {
		v := charsetRev[payload[i]]
		if v < 0 {
			return "", nil, ErrInvalidCharacter
		}
		words[i] = byte(v)
	}

	data, err := ConvertBits(words, 5, 8, false)
	if err != nil {
		return "", nil, err
	}

	return hrp, data, nil
}

// ConvertBits regroups a sequence of fromBits-wide words into a sequence of
// toBits-wide words. When pad is true, a final partial output word is
// emitted zero-padded (used on encode). When pad is false, any leftover
// input bits must be all zero and must not amount to a full input word;
// otherwise ErrInvalidPadding is returned (used on decode).
func ConvertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	var (
		acc    uint32
		bits   uint
		ret    []byte
		maxVal = uint32(1<<toBits) - 1
	)

	for _, value := range data {
		if uint32(value)>>fromBits != 0 {
			return nil, ErrInvalidCharacter
		}

		acc = (acc << fromBits) | uint32(value)
		bits += fromBits

		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte((acc>>bits)&maxVal))
		}
	}

	if pad {
		if bits > 0 {
			ret = append(ret, byte((acc<<(toBits-bits))&maxVal))
		}
		return ret, nil
	}

	if bits >= fromBits {
		return nil, ErrInvalidPadding
	}
	if (acc<<(toBits-bits))&maxVal != 0 {
		return nil, ErrInvalidPadding
	}

	return ret, nil
}
