package bolt12_test

import (
	"bytes"
	"testing"

	"github.com/lightningnetwork/lnd/bolt12"
	"github.com/lightningnetwork/lnd/bolt12/bech32"
	"github.com/lightningnetwork/lnd/bolt12/tlv"
	"github.com/stretchr/testify/require"
)

// encodeRawOffer builds an "lno1..." envelope directly from entries,
// bypassing OfferFields so tests can construct TLV streams classifyEntries
// must reject that the structured encoder would never produce itself.
func encodeRawOffer(t *testing.T, entries []tlv.Entry) string {
	t.Helper()

	var payload bytes.Buffer
	require.NoError(t, tlv.Encode(&payload, entries))

	s, err := bech32.Encode(string(bolt12.KindOffer), payload.Bytes())
	require.NoError(t, err)
	return s
}

func TestDecodeOfferRejectsDuplicateType(t *testing.T) {
	entries := []tlv.Entry{
		{Type: bolt12.TypeDescription, Value: []byte("a")},
		{Type: bolt12.TypeDescription, Value: []byte("b")},
	}

	_, err := bolt12.DecodeOffer(encodeRawOffer(t, entries))
	require.ErrorIs(t, err, bolt12.ErrDuplicateType)
}

func TestDecodeOfferRejectsOutOfOrderTypes(t *testing.T) {
	entries := []tlv.Entry{
		{Type: bolt12.TypeIssuer, Value: []byte("a")},
		{Type: bolt12.TypeDescription, Value: []byte("b")},
	}

	_, err := bolt12.DecodeOffer(encodeRawOffer(t, entries))
	require.ErrorIs(t, err, bolt12.ErrNotAscending)
}

func TestDecodeOfferRejectsUnknownEvenType(t *testing.T) {
	entries := []tlv.Entry{
		{Type: bolt12.TypeDescription, Value: []byte("a")},
		{Type: 24, Value: []byte("b")},
	}

	_, err := bolt12.DecodeOffer(encodeRawOffer(t, entries))
	require.ErrorIs(t, err, bolt12.ErrUnknownEvenType)
}
