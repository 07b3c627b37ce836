package bolt12_test

import (
	"testing"

	"github.com/lightningnetwork/lnd/bolt12"
	"github.com/lightningnetwork/lnd/bolt12/tlv"
	"github.com/stretchr/testify/require"
)

func sampleIssuerID() [33]byte {
	var id [33]byte
	id[0] = 0x02
	for i := 1; i < 33; i++ {
		id[i] = byte(i)
	}
	return id
}

func TestOfferRoundTrip(t *testing.T) {
	desc := "a minimal offer"
	issuerID := sampleIssuerID()

	offer := &bolt12.Offer{
		Fields: bolt12.OfferFields{
			Description: &desc,
			IssuerID:    &issuerID,
		},
	}

	s, err := bolt12.EncodeOffer(offer)
	require.NoError(t, err)
	require.Regexp(t, "^lno1", s)

	decoded, err := bolt12.DecodeOffer(s)
	require.NoError(t, err)
	require.Equal(t, offer.Fields, decoded.Fields)
}

func TestOfferAmountRequiresDescription(t *testing.T) {
	amt := bolt12.MilliSatoshi(1000)
	offer := &bolt12.Offer{
		Fields: bolt12.OfferFields{AmountMsat: &amt},
	}

	_, err := bolt12.EncodeOffer(offer)
	require.ErrorIs(t, err, bolt12.ErrMissingDescription)
}

func TestOfferCurrencyRequiresAmount(t *testing.T) {
	desc := "priced in fiat"
	offer := &bolt12.Offer{
		Fields: bolt12.OfferFields{
			Description: &desc,
			Currency:    "USD",
		},
	}

	_, err := bolt12.EncodeOffer(offer)
	require.ErrorIs(t, err, bolt12.ErrMissingAmount)
}

func TestOfferChainsRoundTrip(t *testing.T) {
	desc := "with chains"
	var chain [32]byte
	chain[0] = 0x01

	offer := &bolt12.Offer{
		Fields: bolt12.OfferFields{
			Description: &desc,
			Chains:      [][32]byte{chain},
		},
	}

	s, err := bolt12.EncodeOffer(offer)
	require.NoError(t, err)

	decoded, err := bolt12.DecodeOffer(s)
	require.NoError(t, err)
	require.Equal(t, offer.Fields.Chains, decoded.Fields.Chains)
}

func TestOfferRejectsWrongPrefix(t *testing.T) {
	_, err := bolt12.DecodeOffer("lnr1qqqqq")
	require.Error(t, err)
}

func TestOfferPreservesUnknownOddType(t *testing.T) {
	desc := "with extra"
	offer := &bolt12.Offer{
		Fields: bolt12.OfferFields{Description: &desc},
		Extra: []tlv.Entry{
			{Type: 21, Value: []byte("custom")},
		},
	}

	s, err := bolt12.EncodeOffer(offer)
	require.NoError(t, err)

	decoded, err := bolt12.DecodeOffer(s)
	require.NoError(t, err)
	require.Equal(t, offer.Extra, decoded.Extra)
}

func TestOfferRejectsUnknownEvenType(t *testing.T) {
	desc := "with bad extra"
	offer := &bolt12.Offer{
		Fields: bolt12.OfferFields{Description: &desc},
		Extra: []tlv.Entry{
			{Type: 24, Value: []byte("bad")},
		},
	}

	// An even type outside the offer's defined set is accepted by
	// EncodeOffer (it has no opinion on Extra's contents) but rejected
	// on the way back in.
	s, err := bolt12.EncodeOffer(offer)
	require.NoError(t, err)

	_, err = bolt12.DecodeOffer(s)
	require.ErrorIs(t, err, bolt12.ErrUnknownEvenType)
}
