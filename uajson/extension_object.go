package uajson

import (
	"encoding/json"

	"github.com/amine-amaach/opcua-json-codec/ua"
)

// WriteExtensionObject emits an ExtensionObject. Reversible mode wraps the
// body with TypeId (and Encoding, for anything but a JSON body). Non-
// reversible mode emits the body alone. A nil ExtensionObject emits JSON
// null in both modes.
func (e *Encoder) WriteExtensionObject(v *ua.ExtensionObject) error {
	if v == nil {
		return e.w.writeValueRaw("null")
	}
	if !e.reversible {
		return e.writeExtensionObjectBody(v)
	}
	if err := e.w.beginObject(); err != nil {
		return err
	}
	if err := e.WriteNodeIDField("TypeId", v.TypeID.NodeID); err != nil {
		return err
	}
	if v.Encoding != ua.ExtensionObjectNone {
		if err := e.WriteByteField("Encoding", byte(v.Encoding)); err != nil {
			return err
		}
	}
	if err := e.w.name("Body"); err != nil {
		return err
	}
	if err := e.writeExtensionObjectBody(v); err != nil {
		return err
	}
	return e.w.endObject()
}

// WriteExtensionObjectField emits an ExtensionObject as a keyed object
// field.
func (e *Encoder) WriteExtensionObjectField(key string, v *ua.ExtensionObject) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteExtensionObject(v)
}

func (e *Encoder) writeExtensionObjectBody(v *ua.ExtensionObject) error {
	switch v.Encoding {
	case ua.ExtensionObjectXML:
		xml, _ := v.Body.(ua.XMLElement)
		return e.WriteXMLElement(xml)
	case ua.ExtensionObjectBinary:
		bs, _ := v.Body.(ua.ByteString)
		return e.WriteByteString(bs)
	default:
		return e.writeJSONBody(v.Body)
	}
}

// writeJSONBody embeds an already-encoded JSON body verbatim. A
// json.RawMessage (or nil) is written as-is; any other value is marshaled
// first, the same fallback encoding/json itself uses for json.RawMessage
// fields that arrive unset.
func (e *Encoder) writeJSONBody(body interface{}) error {
	var raw []byte
	switch b := body.(type) {
	case nil:
		raw = []byte("null")
	case json.RawMessage:
		raw = []byte(b)
		if len(raw) == 0 {
			raw = []byte("null")
		}
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return wrapError(InvalidState, err, "ExtensionObject JSON body does not marshal")
		}
		raw = encoded
	}
	if e.ctx.Options.ValidateExtensionObjectBodies && !json.Valid(raw) {
		return newError(InvalidState, "ExtensionObject JSON body is not well-formed JSON")
	}
	return e.w.writeValueRaw(string(raw))
}
