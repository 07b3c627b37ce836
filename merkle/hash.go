// Package merkle implements the BOLT 12 signature engine: the tagged-hash
// Merkle tree built over a message's TLV entries, and the domain-separated
// BIP-340 Schnorr signature computed over its root.
package merkle

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/bolt12/bigsize"
	"github.com/lightningnetwork/lnd/bolt12/tlv"
)

// Domain tags for the three hash roles in the Merkle construction. Spec
// §4.5: H(t, m) = SHA256(SHA256(t) || SHA256(t) || m).
const (
	leafTag   = "LnLeaf"
	nonceTag  = "LnNonce"
	branchTag = "LnBranch"
)

// ReservedRangeStart and ReservedRangeEnd bound the signature TLV range
// (spec §3, §9): entries with a type in [240, 1000] are excised before
// computing the Merkle root, because that range is reserved for
// signature-like fields that must not self-sign.
const (
	ReservedRangeStart = 240
	ReservedRangeEnd   = 1000
)

// FilterReserved returns the subset of entries whose type lies strictly
// outside [ReservedRangeStart, ReservedRangeEnd]. It does not mutate
// entries.
func FilterReserved(entries []tlv.Entry) []tlv.Entry {
	out := make([]tlv.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Type < ReservedRangeStart || e.Type > ReservedRangeEnd {
			out = append(out, e)
		}
	}
	return out
}

// TaggedHash computes H(tag, msgs...) = SHA256(SHA256(tag) || SHA256(tag)
// || msgs...), BIP-340's domain-separated hash construction.
func TaggedHash(tag []byte, msgs ...[]byte) [32]byte {
	return *chainhash.TaggedHash(tag, msgs...)
}

// serializeEntry returns BigSize(type) || BigSize(length) || value for e.
func serializeEntry(e tlv.Entry) []byte {
	var buf bytes.Buffer
	// Serialize only fails if the underlying writer fails, and
	// bytes.Buffer never does.
	_ = e.Serialize(&buf)
	return buf.Bytes()
}

// leafHash computes leaf_i := H("LnLeaf", serialize(e_i)).
func leafHash(e tlv.Entry) [32]byte {
	return TaggedHash([]byte(leafTag), serializeEntry(e))
}

// nonceHash computes nonce_i := H("LnNonce" || E0, BigSize(e_i.type)),
// where the "LnNonce" tag is the literal bytes of that string concatenated
// with E0, the serialized form of the numerically smallest entry.
func nonceHash(e0 []byte, entryType uint64) [32]byte {
	tag := make([]byte, 0, len(nonceTag)+len(e0))
	tag = append(tag, nonceTag...)
	tag = append(tag, e0...)

	var buf [8]byte
	var typeBuf bytes.Buffer
	// EncodeBigSize only fails if the writer fails.
	_ = bigsize.EncodeBigSize(&typeBuf, entryType, &buf)

	return TaggedHash(tag, typeBuf.Bytes())
}

// Branch computes the position-independent parent of two hashes:
// H("LnBranch", min(a,b) || max(a,b)), ordered by lexicographic byte
// comparison so that the same pair always yields the same parent
// regardless of argument order.
func Branch(a, b [32]byte) [32]byte {
	lo, hi := a, b
	if bytes.Compare(a[:], b[:]) > 0 {
		lo, hi = b, a
	}
	return TaggedHash([]byte(branchTag), lo[:], hi[:])
}
