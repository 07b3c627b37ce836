package bolt12

import "github.com/lightningnetwork/lnd/bolt12/bech32"

// DecodeOption configures limits applied while decoding a textual
// envelope. It mirrors zpay32's functional-options idiom (Amount,
// Destination, Expiry, ...), here applied to the one configuration
// surface spec §5 leaves open: the maximum accepted message size.
type DecodeOption = bech32.DecodeOption

// WithMaxEnvelopeLength overrides the default maximum accepted envelope
// length (bech32.DefaultMaxLength, 64 KiB per spec §5) for a single
// Decode call.
func WithMaxEnvelopeLength(n int) DecodeOption {
	return bech32.WithMaxLength(n)
}
