package uajson

import "github.com/amine-amaach/opcua-json-codec/ua"

// namespaceIndexOf extracts NodeID's namespace index without exposing it
// as a public field on the upstream interface type.
func namespaceIndexOf(id ua.NodeID) uint16 {
	switch n := id.(type) {
	case ua.NodeIDNumeric:
		return n.NamespaceIndex
	case ua.NodeIDString:
		return n.NamespaceIndex
	case ua.NodeIDGUID:
		return n.NamespaceIndex
	case ua.NodeIDOpaque:
		return n.NamespaceIndex
	default:
		return 0
	}
}

// writeNamespaceField emits the "Namespace" field shared by NodeID and
// QualifiedName: omitted at index 0, always numeric in reversible mode,
// resolved to a URI string in non-reversible mode when index > 1 and the
// namespace table has an entry for it.
func (e *Encoder) writeNamespaceField(index uint16) error {
	if index == 0 {
		return nil
	}
	if !e.reversible && index > 1 {
		if uri, ok := e.ctx.Namespaces.URIAt(index); ok {
			return e.WriteStringField("Namespace", uri)
		}
	}
	return e.WriteUInt16Field("Namespace", index)
}

// writeNodeIDIdentifierFields emits IdType and Id, the portion of a
// NodeID shared verbatim by ExpandedNodeID (which writes an attached
// NamespaceURI in place of the Namespace field, and otherwise falls back
// to writeNamespaceField).
func (e *Encoder) writeNodeIDIdentifierFields(id ua.NodeID) error {
	switch n := id.(type) {
	case ua.NodeIDNumeric:
		return e.WriteUInt32Field("Id", n.ID)
	case ua.NodeIDString:
		if err := e.WriteByteField("IdType", 1); err != nil {
			return err
		}
		return e.WriteStringField("Id", n.ID)
	case ua.NodeIDGUID:
		if err := e.WriteByteField("IdType", 2); err != nil {
			return err
		}
		return e.WriteGUIDField("Id", n.ID)
	case ua.NodeIDOpaque:
		if err := e.WriteByteField("IdType", 3); err != nil {
			return err
		}
		return e.WriteByteStringField("Id", n.ID)
	default:
		return newError(UnknownType, "unrecognized NodeID implementation")
	}
}

func (e *Encoder) writeNodeIDFields(id ua.NodeID) error {
	if err := e.writeNodeIDIdentifierFields(id); err != nil {
		return err
	}
	return e.writeNamespaceField(namespaceIndexOf(id))
}

// WriteNodeID emits a NodeID as a JSON object: IdType, Id, Namespace, in
// that order, with IdType omitted for the default numeric kind and
// Namespace omitted at index 0.
func (e *Encoder) WriteNodeID(id ua.NodeID) error {
	if id == nil {
		return e.w.writeValueRaw("null")
	}
	if err := e.w.beginObject(); err != nil {
		return err
	}
	if err := e.writeNodeIDFields(id); err != nil {
		return err
	}
	return e.w.endObject()
}

// WriteNodeIDField emits a NodeID as a keyed object field.
func (e *Encoder) WriteNodeIDField(key string, id ua.NodeID) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteNodeID(id)
}
