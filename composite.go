package bolt12

import (
	"bytes"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/lightningnetwork/lnd/bolt12/bigsize"
)

// BlindedHop is a single hop within a BlindedPath: an opaque node
// identifier and the opaque onion-message payload to carry to it. The
// codec never inspects payload contents; blinded-path construction is an
// external collaborator (spec §1 Non-goals).
type BlindedHop struct {
	NodeID  [33]byte
	Payload []byte
}

// BlindedPath is a privacy-preserving route: a blinding public key
// followed by its hops (spec §3). Neither Encode nor decoding requires at
// least one hop; a path with zero hops round-trips as such.
type BlindedPath struct {
	BlindingPubKey [33]byte
	Hops           []BlindedHop
}

// Encode writes p in its wire form: 33-byte blinding key, 1-byte hop
// count, then per hop a 33-byte node id, a 2-byte big-endian payload
// length, and the payload.
func (p BlindedPath) Encode(w io.Writer) error {
	if _, err := w.Write(p.BlindingPubKey[:]); err != nil {
		return err
	}
	if len(p.Hops) > 255 {
		return fmt.Errorf("blinded_path hops: %w", ErrWrongFieldLength)
	}
	if _, err := w.Write([]byte{byte(len(p.Hops))}); err != nil {
		return err
	}

	for _, hop := range p.Hops {
		if _, err := w.Write(hop.NodeID[:]); err != nil {
			return err
		}
		if err := bigsize.CheckUint16Bound(uint64(len(hop.Payload))); err != nil {
			return err
		}
		if err := bigsize.EncodeUint16(w, uint16(len(hop.Payload))); err != nil {
			return err
		}
		if _, err := w.Write(hop.Payload); err != nil {
			return err
		}
	}
	return nil
}

// decodeBlindedPath decodes a single BlindedPath from r, returning it.
// Truncation anywhere is ErrTruncatedComposite.
func decodeBlindedPath(r io.Reader) (BlindedPath, error) {
	var p BlindedPath
	if _, err := io.ReadFull(r, p.BlindingPubKey[:]); err != nil {
		return BlindedPath{}, ErrTruncatedComposite
	}

	var countBuf [1]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return BlindedPath{}, ErrTruncatedComposite
	}

	hops := make([]BlindedHop, countBuf[0])
	for i := range hops {
		if _, err := io.ReadFull(r, hops[i].NodeID[:]); err != nil {
			return BlindedPath{}, ErrTruncatedComposite
		}

		payloadLen, err := bigsize.DecodeUint16(r)
		if err != nil {
			return BlindedPath{}, ErrTruncatedComposite
		}

		hops[i].Payload = make([]byte, payloadLen)
		if _, err := io.ReadFull(r, hops[i].Payload); err != nil {
			return BlindedPath{}, ErrTruncatedComposite
		}
	}
	p.Hops = hops

	return p, nil
}

// DecodeBlindedPaths decodes a TLV value as a concatenation of zero or
// more BlindedPath entries, consuming the entire value (spec §4.4:
// "Blinded-path decoding consumes until end-of-value and yields zero or
// more paths").
func DecodeBlindedPaths(data []byte) ([]BlindedPath, error) {
	r := bytes.NewReader(data)

	var paths []BlindedPath
	for r.Len() > 0 {
		p, err := decodeBlindedPath(r)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// EncodeBlindedPaths serializes paths as their concatenation, with no
// leading count (spec §3).
func EncodeBlindedPaths(w io.Writer, paths []BlindedPath) error {
	for _, p := range paths {
		if err := p.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// BlindedPayInfo carries the fee and CLTV terms a blinded path's hops
// collectively impose (spec §3). Its field shape mirrors
// zpay32.ExtraRoutingInfo (PubKey/FeeBaseMsat/FeeProportionalMillionths/
// CltvExpDelta) extended with the HTLC bounds and feature bits BOLT 12
// blinded paths additionally carry.
type BlindedPayInfo struct {
	FeeBaseMsat               uint32
	FeeProportionalMillionths uint32
	CltvExpiryDelta           uint16
	HTLCMinimumMsat           uint64
	HTLCMaximumMsat           uint64
	Features                  []byte
}

// Encode writes info in its wire form.
func (info BlindedPayInfo) Encode(w io.Writer) error {
	if err := bigsize.EncodeUint32(w, info.FeeBaseMsat); err != nil {
		return err
	}
	if err := bigsize.EncodeUint32(w, info.FeeProportionalMillionths); err != nil {
		return err
	}
	if err := bigsize.EncodeUint16(w, info.CltvExpiryDelta); err != nil {
		return err
	}
	if err := bigsize.EncodeUint64(w, info.HTLCMinimumMsat); err != nil {
		return err
	}
	if err := bigsize.EncodeUint64(w, info.HTLCMaximumMsat); err != nil {
		return err
	}
	if err := bigsize.CheckUint16Bound(uint64(len(info.Features))); err != nil {
		return err
	}
	if err := bigsize.EncodeUint16(w, uint16(len(info.Features))); err != nil {
		return err
	}
	_, err := w.Write(info.Features)
	return err
}

func decodeBlindedPayInfo(r io.Reader) (BlindedPayInfo, error) {
	var info BlindedPayInfo

	feeBase, err := bigsize.DecodeUint32(r)
	if err != nil {
		return BlindedPayInfo{}, ErrTruncatedComposite
	}
	info.FeeBaseMsat = feeBase

	feeProp, err := bigsize.DecodeUint32(r)
	if err != nil {
		return BlindedPayInfo{}, ErrTruncatedComposite
	}
	info.FeeProportionalMillionths = feeProp

	cltv, err := bigsize.DecodeUint16(r)
	if err != nil {
		return BlindedPayInfo{}, ErrTruncatedComposite
	}
	info.CltvExpiryDelta = cltv

	htlcMin, err := bigsize.DecodeUint64(r)
	if err != nil {
		return BlindedPayInfo{}, ErrTruncatedComposite
	}
	info.HTLCMinimumMsat = htlcMin

	htlcMax, err := bigsize.DecodeUint64(r)
	if err != nil {
		return BlindedPayInfo{}, ErrTruncatedComposite
	}
	info.HTLCMaximumMsat = htlcMax

	featLen, err := bigsize.DecodeUint16(r)
	if err != nil {
		return BlindedPayInfo{}, ErrTruncatedComposite
	}

	info.Features = make([]byte, featLen)
	if _, err := io.ReadFull(r, info.Features); err != nil {
		return BlindedPayInfo{}, ErrTruncatedComposite
	}

	return info, nil
}

// DecodeBlindedPayInfos decodes a TLV value as a concatenation of zero or
// more BlindedPayInfo entries, with no leading count (spec §3: the count
// is inferred by consuming to end-of-value).
func DecodeBlindedPayInfos(data []byte) ([]BlindedPayInfo, error) {
	r := bytes.NewReader(data)

	var infos []BlindedPayInfo
	for r.Len() > 0 {
		info, err := decodeBlindedPayInfo(r)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// EncodeBlindedPayInfos serializes infos as their concatenation.
func EncodeBlindedPayInfos(w io.Writer, infos []BlindedPayInfo) error {
	for _, info := range infos {
		if err := info.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// FallbackAddress is an on-chain fallback address offered in case the
// Lightning payment fails: a witness version and opaque address bytes
// (spec §3). Address() decodes the opaque bytes into a structured
// btcutil.Address for display, mirroring zpay32.Invoice.FallbackAddr.
type FallbackAddress struct {
	WitnessVersion byte
	Address        []byte
}

// Encode writes a in its wire form: 1-byte witness version, 2-byte
// big-endian length, address bytes.
func (a FallbackAddress) Encode(w io.Writer) error {
	if _, err := w.Write([]byte{a.WitnessVersion}); err != nil {
		return err
	}
	if err := bigsize.CheckUint16Bound(uint64(len(a.Address))); err != nil {
		return err
	}
	if err := bigsize.EncodeUint16(w, uint16(len(a.Address))); err != nil {
		return err
	}
	_, err := w.Write(a.Address)
	return err
}

func decodeFallbackAddress(r io.Reader) (FallbackAddress, error) {
	var versionBuf [1]byte
	if _, err := io.ReadFull(r, versionBuf[:]); err != nil {
		return FallbackAddress{}, ErrTruncatedComposite
	}

	addrLen, err := bigsize.DecodeUint16(r)
	if err != nil {
		return FallbackAddress{}, ErrTruncatedComposite
	}

	addr := make([]byte, addrLen)
	if _, err := io.ReadFull(r, addr); err != nil {
		return FallbackAddress{}, ErrTruncatedComposite
	}

	return FallbackAddress{WitnessVersion: versionBuf[0], Address: addr}, nil
}

// DecodeFallbackAddresses decodes a TLV value as a concatenation of zero
// or more FallbackAddress entries.
func DecodeFallbackAddresses(data []byte) ([]FallbackAddress, error) {
	r := bytes.NewReader(data)

	var addrs []FallbackAddress
	for r.Len() > 0 {
		a, err := decodeFallbackAddress(r)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, a)
	}
	return addrs, nil
}

// EncodeFallbackAddresses serializes addrs as their concatenation.
func EncodeFallbackAddresses(w io.Writer, addrs []FallbackAddress) error {
	for _, a := range addrs {
		if err := a.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Address decodes a's opaque witness version and address bytes into a
// structured btcutil.Address for the given network, mirroring the
// witness-version switch zpay32's fallback-address parsing applies to a
// BOLT 11 invoice's "f" field: version 0 selects a native segwit address
// (P2WPKH for a 20-byte program, P2WSH for 32 bytes), 17 selects a legacy
// P2PKH, and 18 a legacy P2SH. Any other version is unsupported.
func (a FallbackAddress) Address(net *chaincfg.Params) (btcutil.Address, error) {
	switch a.WitnessVersion {
	case 0:
		switch len(a.Address) {
		case 20:
			return btcutil.NewAddressWitnessPubKeyHash(a.Address, net)
		case 32:
			return btcutil.NewAddressWitnessScriptHash(a.Address, net)
		default:
			return nil, fmt.Errorf(
				"bolt12: unknown witness program length: %d",
				len(a.Address))
		}
	case 17:
		return btcutil.NewAddressPubKeyHash(a.Address, net)
	case 18:
		return btcutil.NewAddressScriptHashFromHash(a.Address, net)
	default:
		return nil, fmt.Errorf(
			"bolt12: unsupported fallback witness version: %d",
			a.WitnessVersion)
	}
}

// Bip353Name is a human-readable payment name in the user@domain style
// BIP-353 defines (spec §3).
type Bip353Name struct {
	Name   string
	Domain string
}

// isBip353Char reports whether c is allowed in a BIP-353 name or domain
// component: digits, ASCII letters, '.', '_', '-'.
func isBip353Char(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c == '.' || c == '_' || c == '-':
		return true
	default:
		return false
	}
}

func validateBip353Component(s string) error {
	for i := 0; i < len(s); i++ {
		if !isBip353Char(s[i]) {
			return ErrInvalidBip353Character
		}
	}
	return nil
}

// Encode writes n in its wire form: 1-byte name length, name bytes,
// 1-byte domain length, domain bytes.
func (n Bip353Name) Encode(w io.Writer) error {
	if err := validateBip353Component(n.Name); err != nil {
		return err
	}
	if err := validateBip353Component(n.Domain); err != nil {
		return err
	}
	if len(n.Name) > 255 || len(n.Domain) > 255 {
		return fmt.Errorf("bip_353_name: %w", ErrWrongFieldLength)
	}

	if _, err := w.Write([]byte{byte(len(n.Name))}); err != nil {
		return err
	}
	if _, err := w.Write([]byte(n.Name)); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(len(n.Domain))}); err != nil {
		return err
	}
	_, err := w.Write([]byte(n.Domain))
	return err
}

// DecodeBip353Name decodes a single Bip353Name from a TLV value.
func DecodeBip353Name(data []byte) (Bip353Name, error) {
	r := bytes.NewReader(data)

	var nameLenBuf [1]byte
	if _, err := io.ReadFull(r, nameLenBuf[:]); err != nil {
		return Bip353Name{}, ErrTruncatedComposite
	}
	name := make([]byte, nameLenBuf[0])
	if _, err := io.ReadFull(r, name); err != nil {
		return Bip353Name{}, ErrTruncatedComposite
	}

	var domainLenBuf [1]byte
	if _, err := io.ReadFull(r, domainLenBuf[:]); err != nil {
		return Bip353Name{}, ErrTruncatedComposite
	}
	domain := make([]byte, domainLenBuf[0])
	if _, err := io.ReadFull(r, domain); err != nil {
		return Bip353Name{}, ErrTruncatedComposite
	}

	result := Bip353Name{Name: string(name), Domain: string(domain)}
	if err := validateBip353Component(result.Name); err != nil {
		return Bip353Name{}, err
	}
	if err := validateBip353Component(result.Domain); err != nil {
		return Bip353Name{}, err
	}

	return result, nil
}
