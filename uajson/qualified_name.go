package uajson

import "github.com/amine-amaach/opcua-json-codec/ua"

// WriteQualifiedName emits {"Name": <string>, "Uri": <value>}. Uri is
// omitted at namespace index 0; otherwise numeric in reversible mode, or
// resolved to a URI string in non-reversible mode when index > 1 and the
// namespace table has an entry for it.
func (e *Encoder) WriteQualifiedName(v ua.QualifiedName) error {
	if err := e.w.beginObject(); err != nil {
		return err
	}
	if v.Name != "" {
		if err := e.WriteStringField("Name", v.Name); err != nil {
			return err
		}
	}
	if err := e.writeQualifiedURIField(v.NamespaceIndex); err != nil {
		return err
	}
	return e.w.endObject()
}

// WriteQualifiedNameField emits a QualifiedName as a keyed object field.
func (e *Encoder) WriteQualifiedNameField(key string, v ua.QualifiedName) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteQualifiedName(v)
}

func (e *Encoder) writeQualifiedURIField(index uint16) error {
	if index == 0 {
		return nil
	}
	if !e.reversible && index > 1 {
		if uri, ok := e.ctx.Namespaces.URIAt(index); ok {
			return e.WriteStringField("Uri", uri)
		}
	}
	return e.WriteUInt16Field("Uri", index)
}
