package bigsize

import "errors"

// ErrTruncated is returned when a BigSize or tu64 value is cut short by the
// end of the input.
var ErrTruncated = errors.New("bigsize: truncated")

// ErrNonMinimal is returned when a BigSize prefix byte is used to encode a
// value that fits in a shorter form. BigSize requires the shortest possible
// encoding for a given value.
var ErrNonMinimal = errors.New("bigsize: non-minimal encoding")

// ErrTu64TooLong is returned when decoding a tu64 from more than 8 bytes.
var ErrTu64TooLong = errors.New("bigsize: tu64 value longer than 8 bytes")

// ErrOverflow is returned when encoding a fixed-width value that does not
// fit in the requested width.
var ErrOverflow = errors.New("bigsize: value overflows fixed width")
