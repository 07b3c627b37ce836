package bolt12

import "errors"

// Field-presence and cross-field validation errors (spec §7 "Field").
var (
	// ErrMissingDescription is returned when an offer has an amount
	// but no description.
	ErrMissingDescription = errors.New("bolt12: amount requires description")

	// ErrMissingAmount is returned when an offer specifies a currency
	// without an amount.
	ErrMissingAmount = errors.New("bolt12: currency requires amount")

	// ErrMissingInvreqMetadata is returned when an invoice request has
	// no invreq_metadata.
	ErrMissingInvreqMetadata = errors.New("bolt12: missing invreq_metadata")

	// ErrMissingPayerID is returned when an invoice request has no
	// invreq_payer_id.
	ErrMissingPayerID = errors.New("bolt12: missing invreq_payer_id")

	// ErrMissingPaymentHash is returned when an invoice has no
	// payment_hash.
	ErrMissingPaymentHash = errors.New("bolt12: missing payment_hash")

	// ErrMissingNodeID is returned when an invoice has no node_id.
	ErrMissingNodeID = errors.New("bolt12: missing node_id")

	// ErrMissingCreatedAt is returned when an invoice has no
	// created_at.
	ErrMissingCreatedAt = errors.New("bolt12: missing created_at")

	// ErrMissingAmountInvoice is returned when an invoice has no
	// amount.
	ErrMissingAmountInvoice = errors.New("bolt12: missing amount")

	// ErrMissingSignature is returned when decoding a signed message
	// that has no TLV in the reserved signature range.
	ErrMissingSignature = errors.New("bolt12: missing signature")

	// ErrMissingErrorMessage is returned when an invoice error has no
	// error field.
	ErrMissingErrorMessage = errors.New("bolt12: missing error message")

	// ErrSuggestedValueWithoutField is returned when an invoice error
	// carries suggested_value without erroneous_field.
	ErrSuggestedValueWithoutField = errors.New(
		"bolt12: suggested_value without erroneous_field")

	// ErrPayInfoCountMismatch is returned when an invoice's
	// blindedpay count does not match its paths count.
	ErrPayInfoCountMismatch = errors.New(
		"bolt12: blindedpay count does not match paths count")

	// ErrWrongFieldLength is returned when a fixed-length field (a
	// public key, a signature, a payment hash, a chain hash) has the
	// wrong byte length.
	ErrWrongFieldLength = errors.New("bolt12: field has wrong length")

	// ErrDuplicateType is returned when a decoded TLV stream carries
	// more than one entry for the same type.
	ErrDuplicateType = errors.New("bolt12: duplicate TLV type")

	// ErrNotAscending is returned when a decoded TLV stream's types are
	// not in strictly ascending order.
	ErrNotAscending = errors.New("bolt12: TLV types not in ascending order")

	// ErrUnknownEvenType is returned when a decoded TLV stream contains
	// an even type that this codec does not recognize. Per spec §9's
	// Open Question, this is surfaced as its own error kind so that
	// integrators who want to relax the rule can match on it with
	// errors.Is and ignore it explicitly, rather than the codec
	// silently accepting an unrecognized mandatory field.
	ErrUnknownEvenType = errors.New("bolt12: unknown even TLV type")

	// ErrChainsLengthNotMultipleOf32 is returned when an offer's
	// chains field is not a multiple of 32 bytes.
	ErrChainsLengthNotMultipleOf32 = errors.New(
		"bolt12: chains field length not a multiple of 32")

	// ErrUnknownPrefix is returned by Parse when the envelope's
	// human-readable prefix is not one of lno, lnr, lni.
	ErrUnknownPrefix = errors.New("bolt12: unknown envelope prefix")

	// ErrTruncatedComposite is returned when a blinded path, blinded
	// pay-info, or fallback-address entry is cut short (spec §7
	// "Composite").
	ErrTruncatedComposite = errors.New("bolt12: truncated composite value")

	// ErrInvalidBip353Character is returned when a BIP-353 name or
	// domain component contains a character outside
	// [0-9a-zA-Z._-] (spec §3, §7).
	ErrInvalidBip353Character = errors.New(
		"bolt12: disallowed character in bip_353_name")

	// ErrInvalidUTF8 is returned when a field required to be valid
	// UTF-8 (an invoice error's error message) is not.
	ErrInvalidUTF8 = errors.New("bolt12: field is not valid UTF-8")
)
