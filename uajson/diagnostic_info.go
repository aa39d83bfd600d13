package uajson

import "github.com/amine-amaach/opcua-json-codec/ua"

// WriteDiagnosticInfo emits a DiagnosticInfo: up to seven optional fields
// in declared order — SymbolicId, NamespaceUri, Locale, LocalizedText,
// AdditionalInfo, InnerStatusCode, InnerDiagnosticInfo. Index fields are
// included iff non-negative; AdditionalInfo is omitted when nil. Inner
// nodes recurse and participate in the same recursion-depth limit as
// every other nested emitter. A nil *DiagnosticInfo emits JSON null.
func (e *Encoder) WriteDiagnosticInfo(v *ua.DiagnosticInfo) error {
	if v == nil {
		return e.w.writeValueRaw("null")
	}
	if err := e.checkDepth(); err != nil {
		return err
	}
	if err := e.w.beginObject(); err != nil {
		return err
	}
	if v.SymbolicID >= 0 {
		if err := e.WriteInt32Field("SymbolicId", v.SymbolicID); err != nil {
			return err
		}
	}
	if v.NamespaceURI >= 0 {
		if err := e.WriteInt32Field("NamespaceUri", v.NamespaceURI); err != nil {
			return err
		}
	}
	if v.Locale >= 0 {
		if err := e.WriteInt32Field("Locale", v.Locale); err != nil {
			return err
		}
	}
	if v.LocalizedText >= 0 {
		if err := e.WriteInt32Field("LocalizedText", v.LocalizedText); err != nil {
			return err
		}
	}
	if v.AdditionalInfo != nil {
		if err := e.WriteStringField("AdditionalInfo", *v.AdditionalInfo); err != nil {
			return err
		}
	}
	if v.InnerStatusCode != nil {
		// Presence here is governed by the pointer, not by whether the
		// code is Good — WriteStatusCodeField's Good-omission shortcut
		// does not apply to this slot.
		if err := e.w.name("InnerStatusCode"); err != nil {
			return err
		}
		if err := e.writeStatusCodeValue(*v.InnerStatusCode); err != nil {
			return err
		}
	}
	if v.InnerDiagnosticInfo != nil {
		if err := e.w.name("InnerDiagnosticInfo"); err != nil {
			return err
		}
		if err := e.WriteDiagnosticInfo(v.InnerDiagnosticInfo); err != nil {
			return err
		}
	}
	return e.w.endObject()
}

// WriteDiagnosticInfoField emits a DiagnosticInfo as a keyed object field.
func (e *Encoder) WriteDiagnosticInfoField(key string, v *ua.DiagnosticInfo) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteDiagnosticInfo(v)
}
