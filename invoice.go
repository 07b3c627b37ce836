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

// InvoiceFields is the set of TLV types 160-176 specific to an Invoice,
// on top of the mirrored OfferFields and InvreqFields (spec §3, §6).
type InvoiceFields struct {
	Paths          []BlindedPath
	BlindedPay     []BlindedPayInfo
	CreatedAt      uint64
	RelativeExpiry *uint64
	PaymentHash    [32]byte
	AmountMsat     MilliSatoshi
	Fallbacks      []FallbackAddress
	Features       []byte
	NodeID         [33]byte
}

// Invoice is a signed, payable BOLT 12 invoice: the offer it was issued
// against, the request it settles, and its own payment terms (spec §3,
// envelope prefix "lni").
type Invoice struct {
	Offer   OfferFields
	Invreq  InvreqFields
	Invoice InvoiceFields

	Signature [64]byte

	Extra []tlv.Entry
}

func encodeInvoiceFields(f InvoiceFields) []tlv.Entry {
	var entries []tlv.Entry
	var buf [8]byte

	if len(f.Paths) > 0 {
		var v bytes.Buffer
		EncodeBlindedPaths(&v, f.Paths)
		entries = append(entries, tlv.Entry{Type: TypeInvoicePaths, Value: v.Bytes()})
	}
	if len(f.BlindedPay) > 0 {
		var v bytes.Buffer
		EncodeBlindedPayInfos(&v, f.BlindedPay)
		entries = append(entries, tlv.Entry{Type: TypeInvoiceBlindedPay, Value: v.Bytes()})
	}

	var createdAt bytes.Buffer
	bigsize.EncodeTU64(&createdAt, f.CreatedAt, &buf)
	entries = append(entries, tlv.Entry{Type: TypeInvoiceCreatedAt, Value: createdAt.Bytes()})

	if f.RelativeExpiry != nil {
		var v bytes.Buffer
		bigsize.EncodeTU64(&v, *f.RelativeExpiry, &buf)
		entries = append(entries, tlv.Entry{Type: TypeInvoiceRelExpiry, Value: v.Bytes()})
	}

	entries = append(entries, tlv.Entry{
		Type: TypeInvoicePaymentHash, Value: f.PaymentHash[:],
	})

	var amt bytes.Buffer
	bigsize.EncodeTU64(&amt, uint64(f.AmountMsat), &buf)
	entries = append(entries, tlv.Entry{Type: TypeInvoiceAmount, Value: amt.Bytes()})

	if len(f.Fallbacks) > 0 {
		var v bytes.Buffer
		EncodeFallbackAddresses(&v, f.Fallbacks)
		entries = append(entries, tlv.Entry{Type: TypeInvoiceFallbacks, Value: v.Bytes()})
	}
	if f.Features != nil {
		entries = append(entries, tlv.Entry{Type: TypeInvoiceFeatures, Value: f.Features})
	}

	entries = append(entries, tlv.Entry{
		Type: TypeInvoiceNodeID, Value: f.NodeID[:],
	})

	return entries
}

func decodeInvoiceFields(byType map[uint64]tlv.Entry) (InvoiceFields, error) {
	var f InvoiceFields
	var buf [8]byte

	if e, ok := byType[TypeInvoicePaths]; ok {
		paths, err := DecodeBlindedPaths(e.Value)
		if err != nil {
			return f, err
		}
		f.Paths = paths
	}
	if e, ok := byType[TypeInvoiceBlindedPay]; ok {
		infos, err := DecodeBlindedPayInfos(e.Value)
		if err != nil {
			return f, err
		}
		f.BlindedPay = infos
	}

	createdAt, ok := byType[TypeInvoiceCreatedAt]
	if !ok {
		return f, ErrMissingCreatedAt
	}
	v, err := bigsize.DecodeTU64(bytes.NewReader(createdAt.Value), len(createdAt.Value), &buf)
	if err != nil {
		return f, err
	}
	f.CreatedAt = v

	if e, ok := byType[TypeInvoiceRelExpiry]; ok {
		rv, err := bigsize.DecodeTU64(bytes.NewReader(e.Value), len(e.Value), &buf)
		if err != nil {
			return f, err
		}
		f.RelativeExpiry = &rv
	}

	hashEntry, ok := byType[TypeInvoicePaymentHash]
	if !ok {
		return f, ErrMissingPaymentHash
	}
	if len(hashEntry.Value) != 32 {
		return f, fmt.Errorf("payment_hash: %w", ErrWrongFieldLength)
	}
	copy(f.PaymentHash[:], hashEntry.Value)

	amtEntry, ok := byType[TypeInvoiceAmount]
	if !ok {
		return f, ErrMissingAmountInvoice
	}
	amt, err := bigsize.DecodeTU64(bytes.NewReader(amtEntry.Value), len(amtEntry.Value), &buf)
	if err != nil {
		return f, err
	}
	f.AmountMsat = MilliSatoshi(amt)

	if e, ok := byType[TypeInvoiceFallbacks]; ok {
		addrs, err := DecodeFallbackAddresses(e.Value)
		if err != nil {
			return f, err
		}
		f.Fallbacks = addrs
	}
	if e, ok := byType[TypeInvoiceFeatures]; ok {
		f.Features = e.Value
	}

	nodeEntry, ok := byType[TypeInvoiceNodeID]
	if !ok {
		return f, ErrMissingNodeID
	}
	if len(nodeEntry.Value) != 33 {
		return f, fmt.Errorf("node_id: %w", ErrWrongFieldLength)
	}
	copy(f.NodeID[:], nodeEntry.Value)

	return f, nil
}

// validateInvoice applies spec §8 scenario 5's rules: the number of
// blinded pay-info entries must match the number of paths.
func validateInvoice(f InvoiceFields) error {
	if len(f.BlindedPay) != len(f.Paths) {
		return ErrPayInfoCountMismatch
	}
	return nil
}

func invoiceEntries(offer OfferFields, invreq InvreqFields, inv InvoiceFields) []tlv.Entry {
	entries := encodeOfferFields(offer)
	entries = append(entries, encodeInvreqFields(invreq)...)
	entries = append(entries, encodeInvoiceFields(inv)...)
	return entries
}

// EncodeInvoice validates inv, signs it with sk (the node operator's key,
// matching inv.Invoice.NodeID), and returns the resulting "lni1..."
// envelope.
func EncodeInvoice(inv *Invoice, sk *btcec.PrivateKey) (string, error) {
	if err := validateOffer(inv.Offer); err != nil {
		return "", err
	}
	if err := validateInvreq(inv.Invreq); err != nil {
		return "", err
	}
	if err := validateInvoice(inv.Invoice); err != nil {
		return "", err
	}

	unsigned := mergeExtra(
		invoiceEntries(inv.Offer, inv.Invreq, inv.Invoice), inv.Extra,
	)

	sig, err := merkle.Sign(unsigned, KindInvoice.messageName(), sk)
	if err != nil {
		return "", err
	}
	copy(inv.Signature[:], sig)

	all := append(append([]tlv.Entry{}, unsigned...), tlv.Entry{
		Type: TypeSignature, Value: inv.Signature[:],
	})
	all = tlv.SortEntries(all)

	var payload bytes.Buffer
	if err := tlv.Encode(&payload, all); err != nil {
		return "", err
	}

	return bech32.Encode(string(KindInvoice), payload.Bytes())
}

// DecodeInvoice parses a textual "lni1..." envelope into an Invoice. It
// does not verify the signature; callers should call VerifyInvoice
// explicitly using inv.Invoice.NodeID.
func DecodeInvoice(s string, opts ...DecodeOption) (*Invoice, error) {
	hrp, data, err := bech32.Decode(s, opts...)
	if err != nil {
		return nil, err
	}
	if Kind(hrp) != KindInvoice {
		return nil, &UnknownPrefixError{Prefix: hrp}
	}

	entries, err := tlv.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	defined := make(map[uint64]bool,
		len(definedOfferEvenTypes)+len(definedInvreqTypes)+
			len(definedInvoiceEvenTypes)+1)
	for t := range definedOfferEvenTypes {
		defined[t] = true
	}
	for t := range definedInvreqTypes {
		defined[t] = true
	}
	for t := range definedInvoiceEvenTypes {
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
	invoiceFields, err := decodeInvoiceFields(byType)
	if err != nil {
		return nil, err
	}

	if err := validateOffer(offerFields); err != nil {
		return nil, err
	}
	if err := validateInvreq(invreqFields); err != nil {
		return nil, err
	}
	if err := validateInvoice(invoiceFields); err != nil {
		return nil, err
	}

	inv := &Invoice{
		Offer: offerFields, Invreq: invreqFields, Invoice: invoiceFields,
		Extra: extra,
	}
	copy(inv.Signature[:], sigEntry.Value)

	return inv, nil
}

// VerifyInvoice reports whether inv's signature is a valid BIP-340
// signature under pubKey (typically inv.Invoice.NodeID) over the Merkle
// root of its unsigned fields.
func VerifyInvoice(inv *Invoice, pubKey []byte) (bool, error) {
	unsigned := mergeExtra(
		invoiceEntries(inv.Offer, inv.Invreq, inv.Invoice), inv.Extra,
	)
	return merkle.Verify(
		unsigned, KindInvoice.messageName(), inv.Signature[:], pubKey,
	)
}
