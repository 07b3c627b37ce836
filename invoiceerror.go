package bolt12

import (
	"bytes"

	"github.com/lightningnetwork/lnd/bolt12/bigsize"
	"github.com/lightningnetwork/lnd/bolt12/tlv"
)

// InvoiceError reports why an invoice request or invoice was rejected.
// Unlike the other three messages it has no bech32-style envelope: it is
// a bare TLV stream, typically carried as the payload of an onion-message
// reply (spec §3, §6).
type InvoiceError struct {
	// ErroneousField is the TLV type of the field that caused the
	// error, if the error can be attributed to a single field.
	ErroneousField *uint64

	// SuggestedValue is an alternative value for ErroneousField the
	// sender proposes the payer retry with. Only meaningful alongside
	// ErroneousField.
	SuggestedValue []byte

	// ErrorMessage is a human-readable, UTF-8 explanation. Always
	// present.
	ErrorMessage string

	Extra []tlv.Entry
}

var definedInvoiceErrorTypes = map[uint64]bool{
	TypeErrErroneousField: true, TypeErrSuggestedValue: true,
	TypeErrError: true,
}

func validateInvoiceError(e *InvoiceError) error {
	if e.SuggestedValue != nil && e.ErroneousField == nil {
		return ErrSuggestedValueWithoutField
	}
	if e.ErrorMessage == "" {
		return ErrMissingErrorMessage
	}
	if !bigsize.ValidUTF8([]byte(e.ErrorMessage)) {
		return ErrInvalidUTF8
	}
	return nil
}

// EncodeInvoiceError validates e and returns its bare TLV serialization.
func EncodeInvoiceError(e *InvoiceError) ([]byte, error) {
	if err := validateInvoiceError(e); err != nil {
		return nil, err
	}

	var buf [8]byte
	var entries []tlv.Entry

	if e.ErroneousField != nil {
		var v bytes.Buffer
		bigsize.EncodeTU64(&v, *e.ErroneousField, &buf)
		entries = append(entries, tlv.Entry{
			Type: TypeErrErroneousField, Value: v.Bytes(),
		})
	}
	if e.SuggestedValue != nil {
		entries = append(entries, tlv.Entry{
			Type: TypeErrSuggestedValue, Value: e.SuggestedValue,
		})
	}
	entries = append(entries, tlv.Entry{
		Type: TypeErrError, Value: []byte(e.ErrorMessage),
	})

	entries = mergeExtra(entries, e.Extra)

	var out bytes.Buffer
	if err := tlv.Encode(&out, entries); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// DecodeInvoiceError parses a bare TLV stream into an InvoiceError.
func DecodeInvoiceError(data []byte) (*InvoiceError, error) {
	entries, err := tlv.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	byType, extra, err := classifyEntries(entries, definedInvoiceErrorTypes)
	if err != nil {
		return nil, err
	}

	e := &InvoiceError{Extra: extra}
	var buf [8]byte

	if fieldEntry, ok := byType[TypeErrErroneousField]; ok {
		v, err := bigsize.DecodeTU64(
			bytes.NewReader(fieldEntry.Value), len(fieldEntry.Value), &buf,
		)
		if err != nil {
			return nil, err
		}
		e.ErroneousField = &v
	}
	if valEntry, ok := byType[TypeErrSuggestedValue]; ok {
		e.SuggestedValue = valEntry.Value
	}
	if msgEntry, ok := byType[TypeErrError]; ok {
		e.ErrorMessage = string(msgEntry.Value)
	}

	if err := validateInvoiceError(e); err != nil {
		return nil, err
	}

	return e, nil
}
