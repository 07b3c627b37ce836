package bolt12

import (
	"bytes"
	"fmt"

	"github.com/lightningnetwork/lnd/bolt12/bech32"
	"github.com/lightningnetwork/lnd/bolt12/bigsize"
	"github.com/lightningnetwork/lnd/bolt12/tlv"
)

// OfferFields is the set of TLV types 2-22 shared by an Offer and the
// mirrored copies InvoiceRequest and Invoice carry of the offer they
// respond to (spec §3, §6).
type OfferFields struct {
	Chains      [][32]byte
	Metadata    []byte
	Currency    string
	AmountMsat  *MilliSatoshi
	Description *string
	Features    []byte
	AbsoluteExpiry *uint64
	Paths       []BlindedPath
	Issuer      *string
	QuantityMax *uint64
	IssuerID    *[33]byte
}

// Offer is an unsigned BOLT 12 offer (spec §3, envelope prefix "lno").
type Offer struct {
	Fields OfferFields

	// Extra holds unrecognized odd-typed TLV entries encountered while
	// decoding, preserved so re-encoding reproduces them.
	Extra []tlv.Entry
}

func encodeOfferFields(f OfferFields) []tlv.Entry {
	var entries []tlv.Entry
	var buf [8]byte

	if len(f.Chains) > 0 {
		var v bytes.Buffer
		for _, c := range f.Chains {
			v.Write(c[:])
		}
		entries = append(entries, tlv.Entry{Type: TypeChains, Value: v.Bytes()})
	}
	if f.Metadata != nil {
		entries = append(entries, tlv.Entry{Type: TypeMetadata, Value: f.Metadata})
	}
	if f.Currency != "" {
		entries = append(entries, tlv.Entry{
			Type: TypeCurrency, Value: []byte(f.Currency),
		})
	}
	if f.AmountMsat != nil {
		var v bytes.Buffer
		bigsize.EncodeTU64(&v, uint64(*f.AmountMsat), &buf)
		entries = append(entries, tlv.Entry{Type: TypeAmount, Value: v.Bytes()})
	}
	if f.Description != nil {
		entries = append(entries, tlv.Entry{
			Type: TypeDescription, Value: []byte(*f.Description),
		})
	}
	if f.Features != nil {
		entries = append(entries, tlv.Entry{Type: TypeFeatures, Value: f.Features})
	}
	if f.AbsoluteExpiry != nil {
		var v bytes.Buffer
		bigsize.EncodeTU64(&v, *f.AbsoluteExpiry, &buf)
		entries = append(entries, tlv.Entry{Type: TypeAbsExpiry, Value: v.Bytes()})
	}
	if len(f.Paths) > 0 {
		var v bytes.Buffer
		EncodeBlindedPaths(&v, f.Paths)
		entries = append(entries, tlv.Entry{Type: TypePaths, Value: v.Bytes()})
	}
	if f.Issuer != nil {
		entries = append(entries, tlv.Entry{
			Type: TypeIssuer, Value: []byte(*f.Issuer),
		})
	}
	if f.QuantityMax != nil {
		var v bytes.Buffer
		bigsize.EncodeTU64(&v, *f.QuantityMax, &buf)
		entries = append(entries, tlv.Entry{Type: TypeQuantityMax, Value: v.Bytes()})
	}
	if f.IssuerID != nil {
		entries = append(entries, tlv.Entry{
			Type: TypeIssuerID, Value: f.IssuerID[:],
		})
	}

	return entries
}

func decodeOfferFields(byType map[uint64]tlv.Entry) (OfferFields, error) {
	var f OfferFields
	var buf [8]byte

	if e, ok := byType[TypeChains]; ok {
		if len(e.Value)%32 != 0 {
			return f, ErrChainsLengthNotMultipleOf32
		}
		for i := 0; i < len(e.Value); i += 32 {
			var c [32]byte
			copy(c[:], e.Value[i:i+32])
			f.Chains = append(f.Chains, c)
		}
	}
	if e, ok := byType[TypeMetadata]; ok {
		f.Metadata = e.Value
	}
	if e, ok := byType[TypeCurrency]; ok {
		f.Currency = string(e.Value)
	}
	if e, ok := byType[TypeAmount]; ok {
		v, err := bigsize.DecodeTU64(bytes.NewReader(e.Value), len(e.Value), &buf)
		if err != nil {
			return f, err
		}
		amt := MilliSatoshi(v)
		f.AmountMsat = &amt
	}
	if e, ok := byType[TypeDescription]; ok {
		s := string(e.Value)
		f.Description = &s
	}
	if e, ok := byType[TypeFeatures]; ok {
		f.Features = e.Value
	}
	if e, ok := byType[TypeAbsExpiry]; ok {
		v, err := bigsize.DecodeTU64(bytes.NewReader(e.Value), len(e.Value), &buf)
		if err != nil {
			return f, err
		}
		f.AbsoluteExpiry = &v
	}
	if e, ok := byType[TypePaths]; ok {
		paths, err := DecodeBlindedPaths(e.Value)
		if err != nil {
			return f, err
		}
		f.Paths = paths
	}
	if e, ok := byType[TypeIssuer]; ok {
		s := string(e.Value)
		f.Issuer = &s
	}
	if e, ok := byType[TypeQuantityMax]; ok {
		v, err := bigsize.DecodeTU64(bytes.NewReader(e.Value), len(e.Value), &buf)
		if err != nil {
			return f, err
		}
		f.QuantityMax = &v
	}
	if e, ok := byType[TypeIssuerID]; ok {
		if len(e.Value) != 33 {
			return f, fmt.Errorf("issuer_id: %w", ErrWrongFieldLength)
		}
		var id [33]byte
		copy(id[:], e.Value)
		f.IssuerID = &id
	}

	return f, nil
}

// validateOffer applies the cross-field rules spec §8 scenario 2
// describes: an amount requires a description, and a currency requires an
// amount.
func validateOffer(f OfferFields) error {
	if f.AmountMsat != nil && f.Description == nil {
		return ErrMissingDescription
	}
	if f.Currency != "" && f.AmountMsat == nil {
		return ErrMissingAmount
	}
	return nil
}

// EncodeOffer validates o and returns its bech32-style envelope encoding,
// with prefix "lno".
func EncodeOffer(o *Offer) (string, error) {
	if err := validateOffer(o.Fields); err != nil {
		return "", err
	}

	entries := mergeExtra(encodeOfferFields(o.Fields), o.Extra)

	var payload bytes.Buffer
	if err := tlv.Encode(&payload, entries); err != nil {
		return "", err
	}

	return bech32.Encode(string(KindOffer), payload.Bytes())
}

// DecodeOffer parses a textual "lno1..." envelope into an Offer.
func DecodeOffer(s string, opts ...DecodeOption) (*Offer, error) {
	hrp, data, err := bech32.Decode(s, opts...)
	if err != nil {
		return nil, err
	}
	if Kind(hrp) != KindOffer {
		return nil, &UnknownPrefixError{Prefix: hrp}
	}

	entries, err := tlv.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	byType, extra, err := classifyEntries(entries, definedOfferEvenTypes)
	if err != nil {
		return nil, err
	}

	fields, err := decodeOfferFields(byType)
	if err != nil {
		return nil, err
	}
	if err := validateOffer(fields); err != nil {
		return nil, err
	}

	return &Offer{Fields: fields, Extra: extra}, nil
}
