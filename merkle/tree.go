package merkle

import "github.com/lightningnetwork/lnd/bolt12/tlv"

// leaves builds the 2n-element leaf sequence for entries, sorted by
// ascending type first: leaf_0, nonce_0, leaf_1, nonce_1, ...
func leaves(entries []tlv.Entry) [][32]byte {
	sorted := make([]tlv.Entry, len(entries))
	copy(sorted, entries)
	tlv.SortEntries(sorted)

	e0 := serializeEntry(sorted[0])

	out := make([][32]byte, 0, 2*len(sorted))
	for _, e := range sorted {
		out = append(out, leafHash(e), nonceHash(e0, e.Type))
	}
	return out
}

// reduceOneLevel pairs adjacent hashes (0,1), (2,3), ... into their
// branch parent; an odd trailing hash is promoted unchanged.
func reduceOneLevel(level [][32]byte) [][32]byte {
	next := make([][32]byte, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i+1 < len(level) {
			next = append(next, Branch(level[i], level[i+1]))
		} else {
			next = append(next, level[i])
		}
	}
	return next
}

// MerkleRoot reduces entries' leaf sequence to a single 32-byte root. The
// result does not depend on the order entries were supplied in (they are
// sorted by type internally) or on repeated calls with the same entries.
// An empty entries slice is an error.
func MerkleRoot(entries []tlv.Entry) ([32]byte, error) {
	if len(entries) == 0 {
		return [32]byte{}, ErrEmptyInput
	}

	level := leaves(entries)
	for len(level) > 1 {
		level = reduceOneLevel(level)
	}
	return level[0], nil
}

// Proof is an inclusion proof for a single leaf in the Merkle tree: the
// sequence of sibling hashes needed to recompute the root from that leaf.
// Because Branch is position-independent (spec §4.5), a proof needs no
// left/right bits - just the ordered sibling list from bottom to top.
type Proof struct {
	// LeafIndex is the index of the proven hash within the 2n-element
	// leaf sequence (leaf_0, nonce_0, leaf_1, nonce_1, ...).
	LeafIndex int

	// Siblings is the ordered list of sibling hashes from the leaf's
	// level up to (but not including) the root.
	Siblings [][32]byte
}

// BuildProof computes the Merkle root over entries and an inclusion proof
// for the leaf at leafIndex in the sorted 2n-element leaf sequence.
func BuildProof(entries []tlv.Entry, leafIndex int) ([32]byte, Proof, error) {
	if len(entries) == 0 {
		return [32]byte{}, Proof{}, ErrEmptyInput
	}

	level := leaves(entries)
	if leafIndex < 0 || leafIndex >= len(level) {
		return [32]byte{}, Proof{}, ErrInvalidProofIndex
	}

	var siblings [][32]byte
	idx := leafIndex
	for len(level) > 1 {
		if partner := idx ^ 1; partner < len(level) {
			siblings = append(siblings, level[partner])
		}
		level = reduceOneLevel(level)
		idx /= 2
	}

	return level[0], Proof{LeafIndex: leafIndex, Siblings: siblings}, nil
}

// Verify recomputes the root from leaf by folding in each sibling hash in
// order and reports whether the result matches root.
func (p Proof) Verify(leaf [32]byte, root [32]byte) bool {
	cur := leaf
	for _, s := range p.Siblings {
		cur = Branch(cur, s)
	}
	return cur == root
}
