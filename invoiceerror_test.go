package bolt12_test

import (
	"testing"

	"github.com/lightningnetwork/lnd/bolt12"
	"github.com/stretchr/testify/require"
)

func TestInvoiceErrorRoundTrip(t *testing.T) {
	field := bolt12.TypeInvoiceAmount
	e := &bolt12.InvoiceError{
		ErroneousField: &field,
		SuggestedValue: []byte{0x01, 0x02},
		ErrorMessage:   "amount too low",
	}

	data, err := bolt12.EncodeInvoiceError(e)
	require.NoError(t, err)

	decoded, err := bolt12.DecodeInvoiceError(data)
	require.NoError(t, err)
	require.Equal(t, e.ErroneousField, decoded.ErroneousField)
	require.Equal(t, e.SuggestedValue, decoded.SuggestedValue)
	require.Equal(t, e.ErrorMessage, decoded.ErrorMessage)
}

func TestInvoiceErrorRequiresMessage(t *testing.T) {
	e := &bolt12.InvoiceError{}
	_, err := bolt12.EncodeInvoiceError(e)
	require.ErrorIs(t, err, bolt12.ErrMissingErrorMessage)
}

func TestInvoiceErrorSuggestedValueRequiresField(t *testing.T) {
	e := &bolt12.InvoiceError{
		SuggestedValue: []byte{0x01},
		ErrorMessage:   "bad",
	}
	_, err := bolt12.EncodeInvoiceError(e)
	require.ErrorIs(t, err, bolt12.ErrSuggestedValueWithoutField)
}

func TestInvoiceErrorWithoutSuggestedValue(t *testing.T) {
	e := &bolt12.InvoiceError{ErrorMessage: "generic failure"}

	data, err := bolt12.EncodeInvoiceError(e)
	require.NoError(t, err)

	decoded, err := bolt12.DecodeInvoiceError(data)
	require.NoError(t, err)
	require.Nil(t, decoded.ErroneousField)
	require.Nil(t, decoded.SuggestedValue)
	require.Equal(t, "generic failure", decoded.ErrorMessage)
}
