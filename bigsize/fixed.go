package bigsize

import (
	"encoding/binary"
	"io"
	"math"
)

// EncodeUint16 writes v as a 2-byte big-endian value.
func EncodeUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// DecodeUint16 reads a 2-byte big-endian value from r.
func DecodeUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ErrTruncated
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// EncodeUint32 writes v as a 4-byte big-endian value.
func EncodeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// DecodeUint32 reads a 4-byte big-endian value from r.
func DecodeUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ErrTruncated
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// EncodeUint64 writes v as an 8-byte big-endian value.
func EncodeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// DecodeUint64 reads an 8-byte big-endian value from r.
func DecodeUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ErrTruncated
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// CheckUint16Bound returns ErrOverflow if v does not fit in 16 bits.
func CheckUint16Bound(v uint64) error {
	if v > math.MaxUint16 {
		return ErrOverflow
	}
	return nil
}
