package ua

// NoIndex is the sentinel value for a DiagnosticInfo index field that is
// absent. Negative values other than -1 are not meaningful but are
// treated the same as NoIndex by the encoder.
const NoIndex int32 = -1

// DiagnosticInfo carries additional detail about a service-call error: a
// set of indices into the string tables returned alongside a response,
// plus optional free text and a nested diagnostic for the inner status
// code. Index fields use NoIndex (-1) to mean "absent", following
// OPC UA Part 6's own sentinel rather than github.com/awcullen/opcua's
// pointer-based *int32 fields — the JSON encoding's own omission rule is
// phrased in terms of the sentinel, so the type mirrors that directly.
type DiagnosticInfo struct {
	SymbolicID          int32
	NamespaceURI        int32
	Locale              int32
	LocalizedText       int32
	AdditionalInfo      *string
	InnerStatusCode     *StatusCode
	InnerDiagnosticInfo *DiagnosticInfo
}

// NilDiagnosticInfo has every index field absent and no optional fields.
var NilDiagnosticInfo = DiagnosticInfo{
	SymbolicID:    NoIndex,
	NamespaceURI:  NoIndex,
	Locale:        NoIndex,
	LocalizedText: NoIndex,
}
