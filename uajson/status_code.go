package uajson

import (
	"strconv"

	"github.com/amine-amaach/opcua-json-codec/internal/genstatus"
	"github.com/amine-amaach/opcua-json-codec/ua"
)

// WriteStatusCode emits a StatusCode. Reversible mode always writes the
// bare numeric code, including Good (0). Non-reversible mode omits Good
// entirely — writes nothing at all, the same "all-default" idiom
// WriteDataValue follows — and otherwise writes
// {"Code":<value>,"Symbol":<name>}, with Symbol present only when the
// code resolves in the status code table.
func (e *Encoder) WriteStatusCode(v ua.StatusCode) error {
	if !e.reversible && v == ua.Good {
		return nil
	}
	return e.writeStatusCodeValue(v)
}

// writeStatusCodeValue writes the StatusCode's value unconditionally —
// the bare ordinal in reversible mode, else {"Code":...,"Symbol":...} —
// with no Good-omission shortcut. Used by slots whose presence is
// governed by something other than the code's own Good-ness, such as
// DiagnosticInfo.InnerStatusCode, which is present iff its pointer is
// non-nil.
func (e *Encoder) writeStatusCodeValue(v ua.StatusCode) error {
	if e.reversible {
		return e.w.writeValueRaw(strconv.FormatUint(uint64(v), 10))
	}
	if err := e.w.beginObject(); err != nil {
		return err
	}
	if err := e.WriteUInt32Field("Code", uint32(v)); err != nil {
		return err
	}
	if name, ok := genstatus.SymbolFor(uint32(v)); ok {
		if err := e.WriteStringField("Symbol", name); err != nil {
			return err
		}
	}
	return e.w.endObject()
}

// WriteStatusCodeField emits a StatusCode as a keyed object field,
// omitting the field entirely in non-reversible mode when the value is
// Good.
func (e *Encoder) WriteStatusCodeField(key string, v ua.StatusCode) error {
	if !e.reversible && v == ua.Good {
		return nil
	}
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteStatusCode(v)
}
