package bolt12

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/lightningnetwork/lnd/bolt12/bech32"
	"github.com/lightningnetwork/lnd/bolt12/bigsize"
	"github.com/lightningnetwork/lnd/bolt12/merkle"
	"github.com/lightningnetwork/lnd/bolt12/tlv"
)

// InvreqFields is the set of invreq_* TLV types an InvoiceRequest carries
// and an Invoice mirrors back from the request it settles (spec §3, §6).
type InvreqFields struct {
	Metadata   []byte
	Chain      *[32]byte
	AmountMsat *MilliSatoshi
	Features   []byte
	Quantity   *uint64
	PayerID    *[33]byte
	PayerNote  *string
	Paths      []BlindedPath
	Bip353Name *Bip353Name
}

// InvoiceRequest is a signed request for an Invoice against an Offer
// (spec §3, envelope prefix "lnr").
type InvoiceRequest struct {
	Offer  OfferFields
	Invreq InvreqFields

	// Signature is the BIP-340 signature over the Merkle root of every
	// TLV entry whose type lies outside the reserved signature range
	// [240, 1000] (spec §4.5).
	Signature [64]byte

	Extra []tlv.Entry
}

func encodeInvreqFields(f InvreqFields) []tlv.Entry {
	var entries []tlv.Entry
	var buf [8]byte

	if f.Metadata != nil {
		entries = append(entries, tlv.Entry{Type: TypeInvreqMetadata, Value: f.Metadata})
	}
	if f.Chain != nil {
		entries = append(entries, tlv.Entry{Type: TypeInvreqChain, Value: f.Chain[:]})
	}
	if f.AmountMsat != nil {
		var v bytes.Buffer
		bigsize.EncodeTU64(&v, uint64(*f.AmountMsat), &buf)
		entries = append(entries, tlv.Entry{Type: TypeInvreqAmount, Value: v.Bytes()})
	}
	if f.Features != nil {
		entries = append(entries, tlv.Entry{Type: TypeInvreqFeatures, Value: f.Features})
	}
	if f.Quantity != nil {
		var v bytes.Buffer
		bigsize.EncodeTU64(&v, *f.Quantity, &buf)
		entries = append(entries, tlv.Entry{Type: TypeInvreqQuantity, Value: v.Bytes()})
	}
	if f.PayerID != nil {
		entries = append(entries, tlv.Entry{Type: TypeInvreqPayerID, Value: f.PayerID[:]})
	}
	if f.PayerNote != nil {
		entries = append(entries, tlv.Entry{
			Type: TypeInvreqPayerNote, Value: []byte(*f.PayerNote),
		})
	}
	if len(f.Paths) > 0 {
		var v bytes.Buffer
		EncodeBlindedPaths(&v, f.Paths)
		entries = append(entries, tlv.Entry{Type: TypeInvreqPaths, Value: v.Bytes()})
	}
	if f.Bip353Name != nil {
		var v bytes.Buffer
		f.Bip353Name.Encode(&v)
		entries = append(entries, tlv.Entry{Type: TypeInvreqBip353Name, Value: v.Bytes()})
	}

	return entries
}

func decodeInvreqFields(byType map[uint64]tlv.Entry) (InvreqFields, error) {
	var f InvreqFields
	var buf [8]byte

	if e, ok := byType[TypeInvreqMetadata]; ok {
		f.Metadata = e.Value
	}
	if e, ok := byType[TypeInvreqChain]; ok {
		if len(e.Value) != 32 {
			return f, fmt.Errorf("invreq_chain: %w", ErrWrongFieldLength)
		}
		var c [32]byte
		copy(c[:], e.Value)
		f.Chain = &c
	}
	if e, ok := byType[TypeInvreqAmount]; ok {
		v, err := bigsize.DecodeTU64(bytes.NewReader(e.Value), len(e.Value), &buf)
		if err != nil {
			return f, err
		}
		amt := MilliSatoshi(v)
		f.AmountMsat = &amt
	}
	if e, ok := byType[TypeInvreqFeatures]; ok {
		f.Features = e.Value
	}
	if e, ok := byType[TypeInvreqQuantity]; ok {
		v, err := bigsize.DecodeTU64(bytes.NewReader(e.Value), len(e.Value), &buf)
		if err != nil {
			return f, err
		}
		f.Quantity = &v
	}
	if e, ok := byType[TypeInvreqPayerID]; ok {
		if len(e.Value) != 33 {
			return f, fmt.Errorf("invreq_payer_id: %w", ErrWrongFieldLength)
		}
		var id [33]byte
		copy(id[:], e.Value)
		f.PayerID = &id
	}
	if e, ok := byType[TypeInvreqPayerNote]; ok {
		s := string(e.Value)
		f.PayerNote = &s
	}
	if e, ok := byType[TypeInvreqPaths]; ok {
		paths, err := DecodeBlindedPaths(e.Value)
		if err != nil {
			return f, err
		}
		f.Paths = paths
	}
	if e, ok := byType[TypeInvreqBip353Name]; ok {
		name, err := DecodeBip353Name(e.Value)
		if err != nil {
			return f, err
		}
		f.Bip353Name = &name
	}

	return f, nil
}

// validateInvreq applies spec §8 scenario 4's rules: invreq_metadata and
// invreq_payer_id are always required.
func validateInvreq(f InvreqFields) error {
	if len(f.Metadata) == 0 {
		return ErrMissingInvreqMetadata
	}
	if f.PayerID == nil {
		return ErrMissingPayerID
	}
	return nil
}

func invreqEntries(offer OfferFields, invreq InvreqFields) []tlv.Entry {
	entries := encodeOfferFields(offer)
	entries = append(entries, encodeInvreqFields(invreq)...)
	return entries
}

// EncodeInvoiceRequest validates ir, computes its signature over the
// Merkle root of its unsigned fields using sk, and returns the resulting
// "lnr1..." envelope.
func EncodeInvoiceRequest(ir *InvoiceRequest, sk *btcec.PrivateKey) (string, error) {
	if err := validateOffer(ir.Offer); err != nil {
		return "", err
	}
	if err := validateInvreq(ir.Invreq); err != nil {
		return "", err
	}

	unsigned := mergeExtra(invreqEntries(ir.Offer, ir.Invreq), ir.Extra)

	sig, err := merkle.Sign(unsigned, KindInvoiceRequest.messageName(), sk)
	if err != nil {
		return "", err
	}
	copy(ir.Signature[:], sig)

	all := append(append([]tlv.Entry{}, unsigned...), tlv.Entry{
		Type: TypeSignature, Value: ir.Signature[:],
	})
	all = tlv.SortEntries(all)

	var payload bytes.Buffer
	if err := tlv.Encode(&payload, all); err != nil {
		return "", err
	}

	return bech32.Encode(string(KindInvoiceRequest), payload.Bytes())
}

// DecodeInvoiceRequest parses a textual "lnr1..." envelope into an
// InvoiceRequest. It does not verify the signature: callers should call
// VerifyInvoiceRequest explicitly with the request's invreq_payer_id.
func DecodeInvoiceRequest(s string, opts ...DecodeOption) (*InvoiceRequest, error) {
	hrp, data, err := bech32.Decode(s, opts...)
	if err != nil {
		return nil, err
	}
	if Kind(hrp) != KindInvoiceRequest {
		return nil, &UnknownPrefixError{Prefix: hrp}
	}

	entries, err := tlv.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	defined := make(map[uint64]bool, len(definedOfferEvenTypes)+len(definedInvreqTypes)+1)
	for t := range definedOfferEvenTypes {
		defined[t] = true
	}
	for t := range definedInvreqTypes {
		defined[t] = true
	}
	defined[TypeSignature] = true

	byType, extra, err := classifyEntries(entries, defined)
	if err != nil {
		return nil, err
	}

	sigEntry, ok := byType[TypeSignature]
	if !ok {
		return nil, ErrMissingSignature
	}
	if len(sigEntry.Value) != 64 {
		return nil, fmt.Errorf("signature: %w", ErrWrongFieldLength)
	}

	offerFields, err := decodeOfferFields(byType)
	if err != nil {
		return nil, err
	}
	invreqFields, err := decodeInvreqFields(byType)
	if err != nil {
		return nil, err
	}
	if err := validateOffer(offerFields); err != nil {
		return nil, err
	}
	if err := validateInvreq(invreqFields); err != nil {
		return nil, err
	}

	ir := &InvoiceRequest{Offer: offerFields, Invreq: invreqFields, Extra: extra}
	copy(ir.Signature[:], sigEntry.Value)

	return ir, nil
}

// VerifyInvoiceRequest reports whether ir's signature is a valid BIP-340
// signature under pubKey (typically invreq_payer_id) over the Merkle root
// of its unsigned fields.
func VerifyInvoiceRequest(ir *InvoiceRequest, pubKey []byte) (bool, error) {
	unsigned := mergeExtra(invreqEntries(ir.Offer, ir.Invreq), ir.Extra)
	return merkle.Verify(
		unsigned, KindInvoiceRequest.messageName(), ir.Signature[:], pubKey,
	)
}
