package bolt12

import (
	"fmt"

	"github.com/lightningnetwork/lnd/bolt12/bech32"
)

// Kind identifies one of the three enveloped BOLT 12 message types by its
// human-readable envelope prefix. This is adapted from lnwire.MessageType
// and the makeEmptyMessage dispatch switch in lnwire/message.go: there the
// wire carries a 2-byte type that selects a concrete struct to decode
// into, here the envelope's 3-4 letter prefix does the same job.
type Kind string

// The three bech32-style envelope prefixes BOLT 12 defines (spec §6).
// Invoice errors have no envelope and so no Kind prefix of their own.
const (
	KindOffer          Kind = "lno"
	KindInvoiceRequest Kind = "lnr"
	KindInvoice        Kind = "lni"
)

// messageName returns the name used in this message kind's signature tag
// (spec §4.5). Offers are never signed and have no entry here.
func (k Kind) messageName() string {
	switch k {
	case KindInvoiceRequest:
		return "invoice_request"
	case KindInvoice:
		return "invoice"
	default:
		return ""
	}
}

// UnknownPrefixError is returned by Parse when a string's envelope prefix
// does not match lno, lnr, or lni.
type UnknownPrefixError struct {
	Prefix string
}

// Error implements the error interface.
func (e *UnknownPrefixError) Error() string {
	return fmt.Sprintf("bolt12: unknown envelope prefix %q", e.Prefix)
}

// Unwrap allows errors.Is(err, ErrUnknownPrefix) to succeed.
func (e *UnknownPrefixError) Unwrap() error {
	return ErrUnknownPrefix
}

// Parse decodes s, whichever of the three enveloped message kinds it is,
// and returns the kind alongside the concrete decoded value (*Offer,
// *InvoiceRequest, or *Invoice) as an any. Callers who already know which
// kind to expect should prefer DecodeOffer/DecodeInvoiceRequest/
// DecodeInvoice directly.
func Parse(s string, opts ...DecodeOption) (Kind, any, error) {
	prefix, err := envelopePrefix(s)
	if err != nil {
		return "", nil, err
	}

	switch Kind(prefix) {
	case KindOffer:
		offer, err := DecodeOffer(s, opts...)
		return KindOffer, offer, err
	case KindInvoiceRequest:
		invreq, err := DecodeInvoiceRequest(s, opts...)
		return KindInvoiceRequest, invreq, err
	case KindInvoice:
		invoice, err := DecodeInvoice(s, opts...)
		return KindInvoice, invoice, err
	default:
		return "", nil, &UnknownPrefixError{Prefix: prefix}
	}
}

// envelopePrefix extracts the human-readable prefix from s without fully
// decoding the payload, so Parse can dispatch before committing to a
// concrete message type. s is stripped of continuation markers first, the
// same way bech32.Decode normalizes its input, so a "+"-plus-whitespace
// split landing inside the prefix itself doesn't hide the separator.
func envelopePrefix(s string) (string, error) {
	stripped := bech32.StripContinuations(s)

	var prefix []byte
	for i := 0; i < len(stripped); i++ {
		c := stripped[i]
		lower := c | 0x20
		if lower == '1' {
			return string(prefix), nil
		}
		if lower < 'a' || lower > 'z' {
			break
		}
		prefix = append(prefix, lower)
	}
	return "", &UnknownPrefixError{Prefix: s}
}
