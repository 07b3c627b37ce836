package bolt12_test

import (
	"testing"

	"github.com/lightningnetwork/lnd/bolt12"
	"github.com/stretchr/testify/require"
)

func TestParseDispatchesOnPrefix(t *testing.T) {
	desc := "parse me"
	offer := &bolt12.Offer{Fields: bolt12.OfferFields{Description: &desc}}
	s, err := bolt12.EncodeOffer(offer)
	require.NoError(t, err)

	kind, msg, err := bolt12.Parse(s)
	require.NoError(t, err)
	require.Equal(t, bolt12.KindOffer, kind)
	require.IsType(t, &bolt12.Offer{}, msg)
}

func TestParseAcceptsUppercase(t *testing.T) {
	desc := "parse me"
	offer := &bolt12.Offer{Fields: bolt12.OfferFields{Description: &desc}}
	s, err := bolt12.EncodeOffer(offer)
	require.NoError(t, err)

	upper := ""
	for _, c := range s {
		if c >= 'a' && c <= 'z' {
			upper += string(c - 32)
		} else {
			upper += string(c)
		}
	}

	kind, _, err := bolt12.Parse(upper)
	require.NoError(t, err)
	require.Equal(t, bolt12.KindOffer, kind)
}

func TestParseRejectsUnknownPrefix(t *testing.T) {
	_, _, err := bolt12.Parse("lnx1qqqqq")
	var unknown *bolt12.UnknownPrefixError
	require.ErrorAs(t, err, &unknown)
	require.ErrorIs(t, err, bolt12.ErrUnknownPrefix)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, _, err := bolt12.Parse("not-a-bolt12-string")
	require.Error(t, err)
}

func TestParseHandlesContinuationInsidePrefix(t *testing.T) {
	desc := "parse me"
	offer := &bolt12.Offer{Fields: bolt12.OfferFields{Description: &desc}}
	s, err := bolt12.EncodeOffer(offer)
	require.NoError(t, err)

	// Split the envelope before its '1' separator, with a continuation
	// marker landing inside what would otherwise be the 3-letter prefix
	// (spec §8 scenario 6: "for any split of s at position k").
	split := s[:1] + "+\n  " + s[1:]

	kind, _, err := bolt12.Parse(split)
	require.NoError(t, err)
	require.Equal(t, bolt12.KindOffer, kind)
}
