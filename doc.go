// Package bolt12 implements the BOLT 12 "offers" message codec: Offer,
// InvoiceRequest, and Invoice, each carried as a checksum-less
// bech32-derived textual envelope wrapping a TLV stream, plus the bare-TLV
// InvoiceError. Primitive encodings live in the bigsize subpackage, the
// envelope in bech32, TLV framing in tlv, and the BIP-340 Merkle
// signature engine in merkle; this package wires them into the four
// message adapters and their composite value types (blinded paths,
// blinded pay-info, fallback addresses, BIP-353 names).
//
// The codec is purely functional: every operation is a synchronous,
// allocation-bounded total function over its input, with no network I/O,
// persisted state, or concurrency of its own.
package bolt12
