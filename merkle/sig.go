package merkle

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/lightningnetwork/lnd/bolt12/tlv"
)

// SignatureTag returns the domain-separation tag for a message kind's
// signature: "lightning" || messageName || "signature" (spec §4.5). The
// three message names that ever take this path are "offer" (unused, since
// offers are never signed), "invoice_request", and "invoice".
func SignatureTag(messageName string) []byte {
	return []byte("lightning" + messageName + "signature")
}

// Sign computes the Merkle root over entries with the reserved signature
// range excised, hashes it under messageName's signature tag, and returns
// a 64-byte BIP-340 Schnorr signature over that digest using sk.
func Sign(entries []tlv.Entry, messageName string, sk *btcec.PrivateKey) ([]byte, error) {
	root, err := MerkleRoot(FilterReserved(entries))
	if err != nil {
		return nil, err
	}

	msg := TaggedHash(SignatureTag(messageName), root[:])

	sig, err := schnorr.Sign(sk, msg[:])
	if err != nil {
		return nil, err
	}

	return sig.Serialize(), nil
}

// Verify reports whether sig is a valid BIP-340 Schnorr signature over the
// Merkle root of entries (reserved range excised) under messageName's
// signature tag, for the given public key. pubKey may be a 32-byte x-only
// key or a 33-byte compressed key; in the latter case the leading parity
// byte is stripped and no additional parity check is performed beyond
// what BIP-340 verification itself enforces. A malformed key or signature
// is an error; a well-formed but non-matching signature returns
// (false, nil), never an error.
func Verify(
	entries []tlv.Entry, messageName string, sig []byte,
	pubKey []byte) (bool, error) {

	xonly, err := parseXOnlyPubKey(pubKey)
	if err != nil {
		return false, err
	}

	if len(sig) != 64 {
		return false, ErrInvalidSignatureLength
	}
	parsedSig, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false, err
	}

	root, err := MerkleRoot(FilterReserved(entries))
	if err != nil {
		return false, err
	}
	msg := TaggedHash(SignatureTag(messageName), root[:])

	return parsedSig.Verify(msg[:], xonly), nil
}

// parseXOnlyPubKey accepts either a 32-byte x-only key or a 33-byte
// compressed key (stripping the leading parity byte) and returns the
// parsed x-only public key.
func parseXOnlyPubKey(pubKey []byte) (*btcec.PublicKey, error) {
	switch len(pubKey) {
	case 32:
		return schnorr.ParsePubKey(pubKey)
	case 33:
		return schnorr.ParsePubKey(pubKey[1:])
	default:
		return nil, ErrInvalidPubKeyLength
	}
}
