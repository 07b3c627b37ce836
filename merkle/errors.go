package merkle

import "errors"

// ErrEmptyInput is returned when MerkleRoot is asked to reduce zero
// entries. A signed message always has at least invreq_metadata or
// invreq_payer_id present, so this only fires on malformed input.
var ErrEmptyInput = errors.New("merkle: cannot reduce zero entries")

// ErrInvalidPubKeyLength is returned when a public key passed to Verify is
// neither 32 (x-only) nor 33 (compressed) bytes.
var ErrInvalidPubKeyLength = errors.New("merkle: public key must be 32 or 33 bytes")

// ErrInvalidSignatureLength is returned when a signature is not exactly 64
// bytes.
var ErrInvalidSignatureLength = errors.New("merkle: signature must be 64 bytes")

// ErrInvalidProofIndex is returned when BuildProof is asked to prove a
// leaf index outside the stream's leaf sequence.
var ErrInvalidProofIndex = errors.New("merkle: leaf index out of range")
