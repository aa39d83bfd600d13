package uajson

import "github.com/amine-amaach/opcua-json-codec/ua"

// WriteDataValue emits a DataValue object with fields Value, Status,
// SourceTimestamp, SourcePicoseconds, ServerTimestamp, ServerPicoseconds,
// each independently omitted when absent. A picoseconds field has its own
// presence, separate from its paired timestamp: either may be present
// with the other absent.
//
// If every field is omitted, an unkeyed caller gets empty text rather
// than "{}"; WriteDataValueField skips the key entirely in that case.
func (e *Encoder) WriteDataValue(v ua.DataValue) error {
	hasValue := !v.Value.IsNull()
	hasStatus := v.Status != ua.Good
	hasSource := v.HasSourceTimestamp()
	hasSourcePico := v.HasSourcePicoseconds()
	hasServer := v.HasServerTimestamp()
	hasServerPico := v.HasServerPicoseconds()

	if !hasValue && !hasStatus && !hasSource && !hasSourcePico && !hasServer && !hasServerPico {
		return nil
	}

	if err := e.w.beginObject(); err != nil {
		return err
	}
	if hasValue {
		if err := e.WriteVariantField("Value", v.Value); err != nil {
			return err
		}
	}
	if hasStatus {
		if err := e.WriteStatusCodeField("Status", v.Status); err != nil {
			return err
		}
	}
	if hasSource {
		if err := e.WriteDateTimeField("SourceTimestamp", *v.SourceTimestamp); err != nil {
			return err
		}
	}
	if hasSourcePico {
		if err := e.WriteUInt16Field("SourcePicoseconds", *v.SourcePicoseconds); err != nil {
			return err
		}
	}
	if hasServer {
		if err := e.WriteDateTimeField("ServerTimestamp", *v.ServerTimestamp); err != nil {
			return err
		}
	}
	if hasServerPico {
		if err := e.WriteUInt16Field("ServerPicoseconds", *v.ServerPicoseconds); err != nil {
			return err
		}
	}
	return e.w.endObject()
}

// WriteDataValueField emits a DataValue as a keyed object field, omitting
// the key entirely when every field of v is absent.
func (e *Encoder) WriteDataValueField(key string, v ua.DataValue) error {
	if v.Value.IsNull() && v.Status == ua.Good && !v.HasSourceTimestamp() && !v.HasSourcePicoseconds() && !v.HasServerTimestamp() && !v.HasServerPicoseconds() {
		return nil
	}
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteDataValue(v)
}
