package bolt12

// TLV types shared by Offer and mirrored into InvoiceRequest/Invoice
// (spec §6, "Offer / mirrored-offer").
const (
	TypeChains       uint64 = 2
	TypeMetadata     uint64 = 4
	TypeCurrency     uint64 = 6
	TypeAmount       uint64 = 8
	TypeDescription  uint64 = 10
	TypeFeatures     uint64 = 12
	TypeAbsExpiry    uint64 = 14
	TypePaths        uint64 = 16
	TypeIssuer       uint64 = 18
	TypeQuantityMax  uint64 = 20
	TypeIssuerID     uint64 = 22
)

// TLV types specific to InvoiceRequest (spec §6).
const (
	TypeInvreqMetadata uint64 = 0
	TypeInvreqChain    uint64 = 80
	TypeInvreqAmount   uint64 = 82
	TypeInvreqFeatures uint64 = 84
	TypeInvreqQuantity uint64 = 86
	TypeInvreqPayerID  uint64 = 88
	TypeInvreqPayerNote uint64 = 89
	TypeInvreqPaths    uint64 = 90
	TypeInvreqBip353Name uint64 = 91
)

// TLV types specific to Invoice (spec §6).
const (
	TypeInvoicePaths       uint64 = 160
	TypeInvoiceBlindedPay  uint64 = 162
	TypeInvoiceCreatedAt   uint64 = 164
	TypeInvoiceRelExpiry   uint64 = 166
	TypeInvoicePaymentHash uint64 = 168
	TypeInvoiceAmount      uint64 = 170
	TypeInvoiceFallbacks   uint64 = 172
	TypeInvoiceFeatures    uint64 = 174
	TypeInvoiceNodeID      uint64 = 176
)

// TypeSignature is the single TLV type in the reserved signature range
// [merkle.ReservedRangeStart, merkle.ReservedRangeEnd] that this codec
// emits and recognizes.
const TypeSignature uint64 = 240

// TLV types for the bare InvoiceError stream (spec §6).
const (
	TypeErrErroneousField uint64 = 1
	TypeErrSuggestedValue uint64 = 3
	TypeErrError          uint64 = 5
)

// definedOfferEvenTypes lists the even types this codec recognizes within
// the offer range (2-22). Any other even type in that range is an
// unknown-even-type parse error (spec §9's Open Question, resolved in
// DESIGN.md in favor of rejecting).
var definedOfferEvenTypes = map[uint64]bool{
	TypeChains: true, TypeMetadata: true, TypeCurrency: true,
	TypeAmount: true, TypeDescription: true, TypeFeatures: true,
	TypeAbsExpiry: true, TypePaths: true, TypeIssuer: true,
	TypeQuantityMax: true, TypeIssuerID: true,
}

// definedInvreqTypes lists every invreq_* type this codec decodes into a
// structured InvreqFields member, whether even (mandatory) or odd
// (optional) - classifyEntries only uses parity to decide the fate of
// types absent from this map.
var definedInvreqTypes = map[uint64]bool{
	TypeInvreqMetadata: true, TypeInvreqChain: true,
	TypeInvreqAmount: true, TypeInvreqFeatures: true,
	TypeInvreqQuantity: true, TypeInvreqPayerID: true,
	TypeInvreqPayerNote: true, TypeInvreqPaths: true,
	TypeInvreqBip353Name: true,
}

var definedInvoiceEvenTypes = map[uint64]bool{
	TypeInvoicePaths: true, TypeInvoiceBlindedPay: true,
	TypeInvoiceCreatedAt: true, TypeInvoiceRelExpiry: true,
	TypeInvoicePaymentHash: true, TypeInvoiceAmount: true,
	TypeInvoiceFallbacks: true, TypeInvoiceFeatures: true,
	TypeInvoiceNodeID: true,
}

// isOdd reports whether t is odd - the BOLT "it's OK to be odd" types
// that are ignored, rather than rejected, when unrecognized.
func isOdd(t uint64) bool {
	return t%2 == 1
}
