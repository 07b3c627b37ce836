package bigsize

import (
	"encoding/binary"
	"io"
)

// SizeTU64 returns the number of bytes EncodeTU64 will write for v: the
// big-endian encoding of v with leading zero bytes stripped. Zero encodes
// to zero bytes.
func SizeTU64(v uint64) int {
	var full [8]byte
	binary.BigEndian.PutUint64(full[:], v)

	i := 0
	for i < 8 && full[i] == 0 {
		i++
	}
	return 8 - i
}

// EncodeTU64 writes v to w as a truncated big-endian integer: leading zero
// bytes are stripped, and zero is written as no bytes at all.
func EncodeTU64(w io.Writer, v uint64, buf *[8]byte) error {
	binary.BigEndian.PutUint64(buf[:], v)

	i := 0
	for i < 8 && buf[i] == 0 {
		i++
	}
	if i == 8 {
		return nil
	}
	_, err := w.Write(buf[i:8])
	return err
}

// DecodeTU64 reads n bytes from r and interprets them as a truncated
// big-endian unsigned integer. n must be between 0 and 8 inclusive; longer
// values cannot be represented by a uint64 and are a parse error. Leading
// zero bytes in the input are tolerated; the spec does not require a
// minimality check on decode, unlike BigSize.
func DecodeTU64(r io.Reader, n int, buf *[8]byte) (uint64, error) {
	if n > 8 {
		return 0, ErrTu64TooLong
	}
	if n == 0 {
		return 0, nil
	}

	if _, err := io.ReadFull(r, buf[:n]); err != nil {
		return 0, ErrTruncated
	}

	var v uint64
	for _, b := range buf[:n] {
		v = v<<8 | uint64(b)
	}
	return v, nil
}
