package bolt12_test

import (
	"strings"
	"testing"

	"github.com/lightningnetwork/lnd/bolt12"
	"github.com/stretchr/testify/require"
)

// TestEnvelopeConcatenationMarkerAcrossDecode exercises spec §8's
// concatenation property at the message level: splitting an encoded
// offer's body at an arbitrary point and rejoining the halves with a
// "+" continuation marker must decode identically to the unsplit string.
func TestEnvelopeConcatenationMarkerAcrossDecode(t *testing.T) {
	desc := "split across lines for a QR code or chat message"
	offer := &bolt12.Offer{Fields: bolt12.OfferFields{Description: &desc}}

	s, err := bolt12.EncodeOffer(offer)
	require.NoError(t, err)
	require.Greater(t, len(s), 10)

	mid := len(s) / 2
	split := s[:mid] + "+\n  " + s[mid:]

	decoded, err := bolt12.DecodeOffer(split)
	require.NoError(t, err)

	plain, err := bolt12.DecodeOffer(s)
	require.NoError(t, err)

	require.Equal(t, plain.Fields, decoded.Fields)
}

func TestEnvelopeUppercaseAndLowercaseAgree(t *testing.T) {
	desc := "case agreement"
	offer := &bolt12.Offer{Fields: bolt12.OfferFields{Description: &desc}}

	s, err := bolt12.EncodeOffer(offer)
	require.NoError(t, err)

	decodedLower, err := bolt12.DecodeOffer(s)
	require.NoError(t, err)

	decodedUpper, err := bolt12.DecodeOffer(strings.ToUpper(s))
	require.NoError(t, err)

	require.Equal(t, decodedLower.Fields, decodedUpper.Fields)
}
