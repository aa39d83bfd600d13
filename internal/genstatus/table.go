// Package genstatus holds a curated symbol table mapping OPC UA status
// codes to their Part 5 symbolic names. The full table runs to roughly
// 1500 entries generated from the standard's own StatusCode.csv; this is
// a hand-picked subset covering the codes most services actually return,
// laid out the way a generated table would be so the real one can drop in
// without touching callers.
package genstatus

// symbols maps a status code's numeric value to its symbolic name.
var symbols = map[uint32]string{
	0x00000000: "Good",
	0x40920000: "Uncertain_InitialValue",
	0x80010000: "Bad_UnexpectedError",
	0x80020000: "Bad_InternalError",
	0x80030000: "Bad_OutOfMemory",
	0x80040000: "Bad_ResourceUnavailable",
	0x80050000: "Bad_CommunicationError",
	0x80060000: "Bad_EncodingError",
	0x80070000: "Bad_DecodingError",
	0x80080000: "Bad_EncodingLimitsExceeded",
	0x800A0000: "Bad_Timeout",
	0x800B0000: "Bad_ServiceUnsupported",
	0x800C0000: "Bad_Shutdown",
	0x800D0000: "Bad_ServerNotConnected",
	0x800E0000: "Bad_ServerHalted",
	0x80110000: "Bad_DataTypeIdUnknown",
	0x80120000: "Bad_CertificateInvalid",
	0x80130000: "Bad_SecurityChecksFailed",
	0x801A0000: "Bad_CertificateUntrusted",
	0x801D0000: "Bad_CertificateRevoked",
	0x801F0000: "Bad_UserAccessDenied",
	0x80200000: "Bad_IdentityTokenInvalid",
	0x80210000: "Bad_IdentityTokenRejected",
	0x80250000: "Bad_SessionIdInvalid",
	0x80260000: "Bad_SessionClosed",
	0x80270000: "Bad_SessionNotActivated",
	0x80280000: "Bad_SubscriptionIdInvalid",
	0x80330000: "Bad_NodeIdInvalid",
	0x80340000: "Bad_NodeIdUnknown",
	0x80350000: "Bad_AttributeIdInvalid",
	0x80360000: "Bad_IndexRangeInvalid",
	0x80370000: "Bad_IndexRangeNoData",
	0x80380000: "Bad_DataEncodingInvalid",
	0x80390000: "Bad_DataEncodingUnsupported",
	0x803A0000: "Bad_NotReadable",
	0x803B0000: "Bad_NotWritable",
	0x803C0000: "Bad_OutOfRange",
	0x803D0000: "Bad_NotSupported",
	0x803E0000: "Bad_NotFound",
	0x803F0000: "Bad_ObjectDeleted",
	0x80400000: "Bad_NotImplemented",
	0x80AB0000: "Bad_InvalidArgument",
}

// SymbolFor returns code's symbolic name, if the curated table has one.
func SymbolFor(code uint32) (string, bool) {
	name, ok := symbols[code]
	return name, ok
}
