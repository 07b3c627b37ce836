package bolt12

import "fmt"

// MilliSatoshi represents a thousandth of a satoshi, the unit every
// `_msat` TLV field in BOLT 12 is denominated in. It is adapted from
// lnwire.MilliSatoshi, which zpay32.Invoice already uses for the same
// purpose in BOLT 11.
type MilliSatoshi uint64

// String returns a human-readable representation of a MilliSatoshi
// amount.
func (m MilliSatoshi) String() string {
	return fmt.Sprintf("%d mSAT", uint64(m))
}
