package tlv

import "errors"

// ErrTruncated is returned when a TLV stream ends in the middle of an
// entry's type, length, or value.
var ErrTruncated = errors.New("tlv: truncated stream")

// ErrTrailingGarbage is reserved for callers that want to treat leftover
// unconsumed bytes after a bounded TLV stream as an error. Decode itself
// consumes its reader to EOF and never returns this; it exists for callers
// decoding a TLV stream embedded in a larger framing.
var ErrTrailingGarbage = errors.New("tlv: trailing garbage after stream")
