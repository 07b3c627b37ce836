package bolt12_test

import (
	"strings"
	"testing"

	"github.com/lightningnetwork/lnd/bolt12"
	"github.com/stretchr/testify/require"
)

func TestWithMaxEnvelopeLengthRejectsOversizedInput(t *testing.T) {
	desc := strings.Repeat("d", 200)
	offer := &bolt12.Offer{Fields: bolt12.OfferFields{Description: &desc}}

	s, err := bolt12.EncodeOffer(offer)
	require.NoError(t, err)

	_, err = bolt12.DecodeOffer(s, bolt12.WithMaxEnvelopeLength(10))
	require.Error(t, err)

	_, err = bolt12.DecodeOffer(s)
	require.NoError(t, err)
}
