// Package bigsize implements the primitive integer encodings used by the
// BOLT 12 wire format: BigSize (a self-delimiting minimal unsigned integer
// encoding used for TLV types and lengths) and tu64 (a truncated, leading
// zero stripped big-endian unsigned integer used for TLV values).
package bigsize

import (
	"encoding/binary"
	"io"
)

// Prefix bytes that switch BigSize into its wider forms. Values below
// prefix16 are encoded as a single byte equal to the value itself.
const (
	prefix16 = 0xfd
	prefix32 = 0xfe
	prefix64 = 0xff
)

// SizeBigSize returns the number of bytes EncodeBigSize will write for v.
func SizeBigSize(v uint64) int {
	switch {
	case v < prefix16:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// EncodeBigSize writes v to w using the shortest possible BigSize form. buf
// is scratch space supplied by the caller so that repeated calls across a
// TLV stream need not allocate.
func EncodeBigSize(w io.Writer, v uint64, buf *[8]byte) error {
	switch {
	case v < prefix16:
		buf[0] = byte(v)
		_, err := w.Write(buf[:1])
		return err

	case v <= 0xffff:
		buf[0] = prefix16
		binary.BigEndian.PutUint16(buf[1:3], uint16(v))
		_, err := w.Write(buf[:3])
		return err

	case v <= 0xffffffff:
		buf[0] = prefix32
		binary.BigEndian.PutUint32(buf[1:5], uint32(v))
		_, err := w.Write(buf[:5])
		return err

	default:
		buf[0] = prefix64
		if _, err := w.Write(buf[:1]); err != nil {
			return err
		}
		binary.BigEndian.PutUint64(buf[:], v)
		_, err := w.Write(buf[:])
		return err
	}
}

// DecodeBigSize reads a BigSize-encoded value from r. It rejects truncated
// input and non-minimal encodings (a prefix byte used to encode a value
// that fits in a shorter form).
func DecodeBigSize(r io.Reader, buf *[8]byte) (uint64, error) {
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, ErrTruncated
	}
	return ContinueBigSize(buf[0], r, buf)
}

// ContinueBigSize finishes decoding a BigSize value whose first byte has
// already been read by the caller (first). This lets callers that need to
// distinguish "clean end of stream" from "truncated mid-value" - such as a
// TLV stream decoder reading consecutive entries - peek the first byte
// themselves before committing to reading the rest of the value.
func ContinueBigSize(first byte, r io.Reader, buf *[8]byte) (uint64, error) {
	switch {
	case first < prefix16:
		return uint64(first), nil

	case first == prefix16:
		if _, err := io.ReadFull(r, buf[:2]); err != nil {
			return 0, ErrTruncated
		}
		v := uint64(binary.BigEndian.Uint16(buf[:2]))
		if v < prefix16 {
			return 0, ErrNonMinimal
		}
		return v, nil

	case first == prefix32:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return 0, ErrTruncated
		}
		v := uint64(binary.BigEndian.Uint32(buf[:4]))
		if v <= 0xffff {
			return 0, ErrNonMinimal
		}
		return v, nil

	default: // prefix64
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return 0, ErrTruncated
		}
		v := binary.BigEndian.Uint64(buf[:8])
		if v <= 0xffffffff {
			return 0, ErrNonMinimal
		}
		return v, nil
	}
}
