package bech32

import "errors"

// ErrMixedCase is returned when a textual envelope mixes upper and lower
// case characters. The envelope must be either all-upper or all-lower.
var ErrMixedCase = errors.New("bech32: string contains mixed case")

// ErrNoSeparator is returned when no '1' separator can be found between the
// human-readable prefix and the payload.
var ErrNoSeparator = errors.New("bech32: missing separator '1'")

// ErrEmptyPayload is returned when the payload following the separator is
// empty.
var ErrEmptyPayload = errors.New("bech32: empty payload")

// ErrInvalidCharacter is returned when a payload character is not a member
// of the bech32 alphabet.
var ErrInvalidCharacter = errors.New("bech32: invalid character")

// ErrInvalidPadding is returned when the final partial 8-bit group left
// over from 5-to-8 bit regrouping is non-zero, or spans a full input word.
var ErrInvalidPadding = errors.New("bech32: invalid padding")

// ErrInvalidHRP is returned when the human-readable prefix does not match
// the expected 3-4 lowercase ASCII letter form.
var ErrInvalidHRP = errors.New("bech32: invalid human-readable prefix")

// ErrTooLong is returned when a decoded envelope exceeds the configured
// maximum length.
var ErrTooLong = errors.New("bech32: envelope exceeds maximum length")

// ErrWrongEncoding is returned by the bech32m companion codec (DecodeM) when
// a string checksums as plain bech32 rather than bech32m.
var ErrWrongEncoding = errors.New("bech32: wrong checksum variant")
